package layout

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindLibrary searches the lib directory for a library by name.
// Returns nil when no matching file exists.
func (l *Layout) FindLibrary(name string) *Library {
	for _, ext := range libraryExtensions(l.Triplet) {
		for _, filename := range []string{name + ext, "lib" + name + ext} {
			fullPath := filepath.Join(l.Lib, filename)
			if fileExists(fullPath) {
				return &Library{
					Name:     name,
					Path:     fullPath,
					Type:     ext,
					IsStatic: isStaticExtension(ext),
				}
			}
		}

		// Try versioned: lib{name}{ext}.* (e.g., libz.so.1)
		matches, _ := filepath.Glob(filepath.Join(l.Lib, "lib"+name+ext+".*"))
		if len(matches) > 0 {
			sort.Strings(matches)
			return &Library{
				Name:     name,
				Path:     matches[0],
				Type:     ext,
				IsStatic: isStaticExtension(ext),
			}
		}
	}

	return nil
}

// Libraries returns all library files in the lib directory, sorted by path.
// A missing directory yields an empty result.
func (l *Layout) Libraries() []*Library {
	entries, err := os.ReadDir(l.Lib)
	if err != nil {
		return nil
	}

	extensions := libraryExtensions(l.Triplet)
	var libraries []*Library

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		for _, ext := range extensions {
			if !strings.HasSuffix(name, ext) && !strings.Contains(name, ext+".") {
				continue
			}

			libraries = append(libraries, &Library{
				Name:     libraryName(name, ext),
				Path:     filepath.Join(l.Lib, name),
				Type:     ext,
				IsStatic: isStaticExtension(ext),
			})
			break
		}
	}

	sort.Slice(libraries, func(i, j int) bool {
		return libraries[i].Path < libraries[j].Path
	})
	return libraries
}

// HasLibrary checks if a library exists in the lib directory
func (l *Layout) HasLibrary(name string) bool {
	return l.FindLibrary(name) != nil
}

// libraryName strips the "lib" prefix (except on Windows import libraries),
// the extension, and any version suffix from a file name.
func libraryName(file, ext string) string {
	name := file
	if i := strings.Index(name, ext); i >= 0 {
		name = name[:i]
	}
	if ext != ".lib" && ext != ".dll" {
		name = strings.TrimPrefix(name, "lib")
	}
	return name
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
