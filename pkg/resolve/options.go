package resolve

// Options carries everything a caller can pin for one resolution.
// Empty strings and a nil StaticCRT mean "not set". Relative directories
// are resolved against the environment lookup's working directory.
type Options struct {
	Name          string // Package name (required)
	Target        string // Target platform, "os/arch" or a target triple
	Host          string // Host platform, "os/arch" or a target triple
	OutDir        string // Build output directory; carried through only
	StaticCRT     *bool  // Static vs dynamic C runtime
	VcpkgRoot     string // vcpkg checkout; "installed" is appended
	InstalledDir  string // Install tree root, used as-is
	TargetTriplet string // Explicit target triplet
	HostTriplet   string // Explicit host triplet
}
