package platform

import (
	"fmt"
	"strings"
)

// Linkage suffixes that decide how a triplet links. Variants such as
// "static-md" share the prefix.
const (
	LinkageStatic  = "static"
	LinkageDynamic = "dynamic"
)

// Triplet is a parsed vcpkg triplet such as "x64-windows-static"
type Triplet struct {
	Arch    string // x64, x86, arm64, ...
	OS      string // windows, linux, osx, ...
	Linkage string // Optional suffix: static, static-md, dynamic, ...
}

// ParseTriplet splits a triplet into its parts. Anything after the
// operating system is kept verbatim as the linkage suffix.
func ParseTriplet(s string) (Triplet, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Triplet{}, fmt.Errorf("invalid triplet %q: want arch-os[-linkage]", s)
	}

	t := Triplet{Arch: parts[0], OS: parts[1]}
	if len(parts) == 3 {
		if parts[2] == "" {
			return Triplet{}, fmt.Errorf("invalid triplet %q: empty linkage", s)
		}
		t.Linkage = parts[2]
	}
	return t, nil
}

// String returns the triplet in vcpkg's dash-separated form
func (t Triplet) String() string {
	if t.Linkage == "" {
		return t.Arch + "-" + t.OS
	}
	return t.Arch + "-" + t.OS + "-" + t.Linkage
}

// IsStatic reports whether libraries for this triplet are linked statically.
// Triplets without a suffix are static everywhere except on Windows.
func (t Triplet) IsStatic() bool {
	switch {
	case strings.HasPrefix(t.Linkage, LinkageStatic):
		return true
	case strings.HasPrefix(t.Linkage, LinkageDynamic):
		return false
	default:
		return t.OS != "windows"
	}
}

// Triplet returns the canonical vcpkg triplet for the platform.
// static is the requested runtime linkage; nil keeps the OS default
// (dynamic on Windows, static elsewhere).
func (p Platform) Triplet(static *bool) Triplet {
	t := Triplet{Arch: p.VcpkgArch(), OS: p.VcpkgOS()}

	if static == nil {
		return t
	}

	if t.OS == "windows" {
		if *static {
			t.Linkage = LinkageStatic
		}
	} else if !*static {
		t.Linkage = LinkageDynamic
	}
	return t
}
