package layout

// Layout is the set of directories resolved for one package
type Layout struct {
	Name        string `json:"name" yaml:"name"`                                     // Package name, passed to the linker unmodified
	Root        string `json:"root" yaml:"root"`                                     // Install root (e.g., /src/app/vcpkg_installed)
	Triplet     string `json:"triplet" yaml:"triplet"`                               // Target triplet (e.g., x64-windows)
	HostTriplet string `json:"host_triplet,omitempty" yaml:"host_triplet,omitempty"` // Host triplet if one was configured
	Base        string `json:"base" yaml:"base"`                                     // Root joined with Triplet
	Lib         string `json:"lib" yaml:"lib"`                                       // Link search directory
	Bin         string `json:"bin" yaml:"bin"`                                       // Executables and DLLs
	Include     string `json:"include" yaml:"include"`                               // Header directory
	OutDir      string `json:"out_dir,omitempty" yaml:"out_dir,omitempty"`           // Build output directory, carried through
}

// Library represents a found library file
type Library struct {
	Name     string // Library name (e.g., "zlib")
	Path     string // Absolute path to library file
	Type     string // Extension: ".so", ".a", ".dylib", ".dll", ".dll.a", ".lib"
	IsStatic bool   // True for archives
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
}
