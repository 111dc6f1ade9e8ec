/*
Package env is the read-only view of the process environment used by the
resolver.

Resolution only ever needs two ambient facts: environment variables and the
current working directory. Both are reached through the Lookup interface so
that callers (and tests) can substitute a fixed environment instead of
mutating the real process.

Basic Usage:

    import "github.com/arc-language/vcpkg-locate/pkg/env"

    // Real process environment
    e := env.OS()

    // Fixed environment
    e = env.Map{
        Vars: map[string]string{env.VcpkgRoot: "/opt/vcpkg/installed"},
        Dir:  "/src/project",
    }

    // Process environment with a few overrides
    e = env.Overlay(env.OS(), map[string]string{env.VcpkgDefaultTriplet: "x64-linux"})

    root, ok := env.Get(e, env.VcpkgRoot)

Variables:

A variable that is set to the empty string is treated exactly like an unset
variable by Get.
*/
package env
