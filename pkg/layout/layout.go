package layout

import "path/filepath"

// New derives the layout of package name installed under root for triplet.
// Nothing is checked on disk.
func New(name, root, triplet string) *Layout {
	base := filepath.Join(root, triplet)

	return &Layout{
		Name:    name,
		Root:    root,
		Triplet: triplet,
		Base:    base,
		Lib:     filepath.Join(base, LibDir),
		Bin:     filepath.Join(base, BinDir),
		Include: filepath.Join(base, IncludeDir),
	}
}

// Flags returns the flags a C toolchain needs to build against the package
func (l *Layout) Flags() CompilerFlags {
	return CompilerFlags{
		IncludeFlags: []string{"-I" + l.Include},
		LibraryFlags: []string{"-L" + l.Lib},
		LinkFlags:    []string{"-l" + l.Name},
	}
}

// CFlags returns the preprocessor flags, suitable for CGO_CFLAGS
func (f CompilerFlags) CFlags() []string {
	return f.IncludeFlags
}

// LDFlags returns the linker flags, suitable for CGO_LDFLAGS
func (f CompilerFlags) LDFlags() []string {
	out := make([]string, 0, len(f.LibraryFlags)+len(f.LinkFlags))
	out = append(out, f.LibraryFlags...)
	return append(out, f.LinkFlags...)
}
