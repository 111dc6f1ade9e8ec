package env

// Environment variables consulted during resolution.
const (
	// VcpkgRoot names an install tree to use as-is.
	VcpkgRoot = "VCPKG_ROOT"

	// VcpkgManifestDir is the last-resort install root, usually the
	// directory holding the project's vcpkg.json.
	VcpkgManifestDir = "VCPKG_MANIFEST_DIR"

	// VcpkgTargetTriplet pins the triplet for the current build target.
	VcpkgTargetTriplet = "VCPKG_TARGET_TRIPLET"

	// VcpkgDefaultTriplet is the ambient default triplet.
	VcpkgDefaultTriplet = "VCPKG_DEFAULT_TRIPLET"

	// VcpkgDefaultHostTriplet is the ambient default host triplet.
	VcpkgDefaultHostTriplet = "VCPKG_DEFAULT_HOST_TRIPLET"
)

// Names returns every variable the resolver may read, in lookup order.
func Names() []string {
	return []string{
		VcpkgRoot,
		VcpkgManifestDir,
		VcpkgTargetTriplet,
		VcpkgDefaultTriplet,
		VcpkgDefaultHostTriplet,
	}
}
