package layout

import "strings"

// Fixed subdirectories of a triplet's install tree
const (
	LibDir     = "lib"
	BinDir     = "bin"
	IncludeDir = "include"
)

// libraryExtensions returns file extensions to look for based on the
// operating system part of a triplet (not the host's). Longer extensions
// come first so "libz.dll.a" is not taken for a ".dll".
func libraryExtensions(triplet string) []string {
	switch tripletOS(triplet) {
	case "windows", "uwp", "mingw":
		return []string{".dll.a", ".lib", ".dll", ".a"}
	case "osx", "ios":
		return []string{".dylib", ".a"}
	default:
		return []string{".so", ".a"}
	}
}

// isStaticExtension reports whether ext names an archive rather than a
// shared object. Windows .lib files may be import libraries; they are
// reported as static because that is how the linker consumes them.
// MinGW ".dll.a" import libraries always front a DLL and are not.
func isStaticExtension(ext string) bool {
	return ext == ".a" || ext == ".lib"
}

func tripletOS(triplet string) string {
	parts := strings.SplitN(triplet, "-", 3)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
