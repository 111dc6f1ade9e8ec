package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Platform represents an OS/architecture pair in Go's naming (GOOS/GOARCH)
type Platform struct {
	OS   string // linux, darwin, windows, freebsd, ...
	Arch string // amd64, arm64, 386, arm, ...
}

// Detect returns the platform this process is running on
func Detect() Platform {
	return Platform{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}
}

// ParsePlatform parses a platform given either as "os/arch" in Go's naming
// or as a toolchain target triple such as "x86_64-pc-windows-msvc" or
// "aarch64-apple-darwin", where the architecture comes first.
func ParsePlatform(s string) (Platform, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if goos, goarch, ok := strings.Cut(s, "/"); ok {
		if goos == "" || goarch == "" {
			return Platform{}, fmt.Errorf("invalid platform %q: want os/arch", s)
		}
		return Platform{OS: goos, Arch: goarch}, nil
	}

	return parseTargetTriple(s)
}

// parseTargetTriple reads arch-vendor-os[-env]. The vendor is optional
// ("aarch64-linux-android") so the operating system is the last field
// naming a known system; "linux" is followed by "android" on Android.
func parseTargetTriple(s string) (Platform, error) {
	fields := strings.Split(s, "-")
	if len(fields) < 2 || fields[0] == "" {
		return Platform{}, fmt.Errorf("invalid platform %q: want os/arch or a target triple", s)
	}
	if _, ok := tripleOS[fields[0]]; ok {
		return Platform{}, fmt.Errorf("invalid target triple %q: starts with an operating system, want arch first", s)
	}

	goos := ""
	for _, f := range fields[1:] {
		if o, ok := tripleOS[f]; ok {
			goos = o
		}
	}
	if goos == "" {
		return Platform{}, fmt.Errorf("invalid target triple %q: no known operating system", s)
	}

	return Platform{OS: goos, Arch: fields[0]}, nil
}

// String returns the platform as "os/arch"
func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

// VcpkgArch maps the Go architecture to vcpkg's name for it.
// Unknown architectures are returned unchanged.
func (p Platform) VcpkgArch() string {
	if a, ok := vcpkgArch[p.Arch]; ok {
		return a
	}
	return p.Arch
}

// VcpkgOS maps the Go operating system to vcpkg's name for it.
// Unknown systems are returned unchanged.
func (p Platform) VcpkgOS() string {
	if o, ok := vcpkgOS[p.OS]; ok {
		return o
	}
	return p.OS
}

var vcpkgArch = map[string]string{
	"amd64":   "x64",
	"x86_64":  "x64",
	"386":     "x86",
	"i686":    "x86",
	"arm64":   "arm64",
	"aarch64": "arm64",
	"arm":     "arm",
	"wasm":    "wasm32",
	"ppc64le": "ppc64le",
	"s390x":   "s390x",
	"riscv64": "riscv64",

	// Target triple spellings
	"i586":        "x86",
	"armv7":       "arm",
	"thumbv7a":    "arm",
	"wasm32":      "wasm32",
	"powerpc64le": "ppc64le",
	"riscv64gc":   "riscv64",
}

var vcpkgOS = map[string]string{
	"darwin":  "osx",
	"macos":   "osx",
	"ios":     "ios",
	"windows": "windows",
	"linux":   "linux",
	"android": "android",
	"freebsd": "freebsd",
	"openbsd": "openbsd",
	"netbsd":  "netbsd",
	"js":      "emscripten",
	"wasip1":  "wasi",
}

// tripleOS maps the system field of a target triple to Go's name for it.
var tripleOS = map[string]string{
	"windows":    "windows",
	"darwin":     "darwin",
	"macos":      "darwin",
	"ios":        "ios",
	"linux":      "linux",
	"android":    "android",
	"freebsd":    "freebsd",
	"openbsd":    "openbsd",
	"netbsd":     "netbsd",
	"emscripten": "js",
	"wasi":       "wasip1",
}
