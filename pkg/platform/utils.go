package platform

// contains checks if a string slice contains a value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// KnownOS reports whether os is an operating system name vcpkg ships triplets for
func KnownOS(os string) bool {
	return contains(knownOS, os)
}

var knownOS = []string{
	"windows", "uwp", "linux", "osx", "ios", "android",
	"freebsd", "openbsd", "netbsd", "mingw", "emscripten", "wasi",
}
