package resolve

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/vcpkg-locate/pkg/env"
	"github.com/arc-language/vcpkg-locate/pkg/layout"
	"github.com/arc-language/vcpkg-locate/pkg/platform"
)

// InstalledSubdir is appended to an explicit vcpkg root
const InstalledSubdir = "installed"

// ConventionalDir is the install tree vcpkg creates next to a manifest
const ConventionalDir = "vcpkg_installed"

// Candidate sources, in the order they are consulted
const (
	SourceInstalledDir  = "installed dir"
	SourceVcpkgRoot     = "vcpkg root"
	SourceEnvRoot       = "$" + env.VcpkgRoot
	SourceWorkingDir    = "working dir"
	SourceEnvManifest   = "$" + env.VcpkgManifestDir
	SourceTargetTriplet = "target triplet"
	SourceEnvTarget     = "$" + env.VcpkgTargetTriplet
	SourceEnvDefault    = "$" + env.VcpkgDefaultTriplet
	SourceHostTriplet   = "host triplet"
	SourceEnvHost       = "$" + env.VcpkgDefaultHostTriplet
)

const notSet = "not set"

// Resolver finds where vcpkg installed a package
type Resolver struct {
	env    env.Lookup
	logger *log.Logger
}

// New creates a Resolver. A nil lookup reads the process environment and a
// nil logger discards output.
func New(lookup env.Lookup, logger *log.Logger) *Resolver {
	if lookup == nil {
		lookup = env.OS()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resolver{env: lookup, logger: logger}
}

// Resolve runs both fallback chains and derives the package layout
func (r *Resolver) Resolve(opts Options) (*layout.Layout, error) {
	if strings.TrimSpace(opts.Name) == "" {
		return nil, fmt.Errorf("%w: package name is required", ErrInvalidPackage)
	}

	root, err := r.InstallRoot(opts)
	if err != nil {
		return nil, err
	}

	triplet, err := r.TargetTriplet(opts)
	if err != nil {
		return nil, err
	}

	l := layout.New(opts.Name, root, triplet)
	l.HostTriplet = r.HostTriplet(opts)
	l.OutDir = opts.OutDir

	r.logger.Debug("resolved package",
		"name", l.Name, "base", l.Base, "host_triplet", l.HostTriplet, "out_dir", l.OutDir)

	return l, nil
}

// InstallRoot returns the first install root candidate that is an
// existing directory.
//
// Priority:
// 1. Explicit install tree root
// 2. Explicit vcpkg root + "installed"
// 3. $VCPKG_ROOT
// 4. <working dir>/vcpkg_installed
// 5. $VCPKG_MANIFEST_DIR
func (r *Resolver) InstallRoot(opts Options) (string, error) {
	var tried []Candidate

	for _, c := range r.rootCandidates(opts) {
		if c.Reason == "" {
			c.Reason = checkDir(c.Value)
		}

		if c.Reason == "" {
			r.logger.Debug("install root", "source", c.Source, "path", c.Value)
			return c.Value, nil
		}

		r.logger.Debug("install root rejected", "source", c.Source, "path", c.Value, "reason", c.Reason)
		tried = append(tried, c)
	}

	return "", &CandidateError{
		Err:        ErrInstallRootNotFound,
		Candidates: tried,
		Hint:       fmt.Sprintf("set %s or run `vcpkg install` in the project directory", env.VcpkgRoot),
	}
}

// rootCandidates lists install root candidates in priority order.
// Unset sources come back with Reason already filled in. Relative paths
// are taken relative to the lookup's working directory, not the process's.
func (r *Resolver) rootCandidates(opts Options) []Candidate {
	wd, wdErr := r.env.Getwd()
	candidates := make([]Candidate, 0, 5)

	candidates = append(candidates, fromValue(SourceInstalledDir, opts.InstalledDir))

	if opts.VcpkgRoot != "" {
		candidates = append(candidates, Candidate{
			Source: SourceVcpkgRoot,
			Value:  filepath.Join(opts.VcpkgRoot, InstalledSubdir),
		})
	} else {
		candidates = append(candidates, Candidate{Source: SourceVcpkgRoot, Reason: notSet})
	}

	candidates = append(candidates, r.fromEnv(SourceEnvRoot, env.VcpkgRoot))

	if wdErr == nil {
		candidates = append(candidates, Candidate{
			Source: SourceWorkingDir,
			Value:  filepath.Join(wd, ConventionalDir),
		})
	} else {
		candidates = append(candidates, Candidate{Source: SourceWorkingDir, Reason: wdErr.Error()})
	}

	candidates = append(candidates, r.fromEnv(SourceEnvManifest, env.VcpkgManifestDir))

	if wdErr == nil {
		for i := range candidates {
			candidates[i].Value = relativeTo(wd, candidates[i].Value)
		}
	}
	return candidates
}

// relativeTo anchors a relative path at dir. Empty and absolute paths are
// returned unchanged.
func relativeTo(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// TargetTriplet returns the first triplet source that is set.
// Triplets are identifiers, so nothing is checked on disk.
//
// Priority:
// 1. Explicit target triplet
// 2. $VCPKG_TARGET_TRIPLET
// 3. $VCPKG_DEFAULT_TRIPLET
func (r *Resolver) TargetTriplet(opts Options) (string, error) {
	candidates := []Candidate{
		fromValue(SourceTargetTriplet, opts.TargetTriplet),
		r.fromEnv(SourceEnvTarget, env.VcpkgTargetTriplet),
		r.fromEnv(SourceEnvDefault, env.VcpkgDefaultTriplet),
	}

	if c, ok := first(candidates); ok {
		r.logger.Debug("target triplet", "source", c.Source, "triplet", c.Value)
		return c.Value, nil
	}

	return "", &CandidateError{
		Err:        ErrTripletNotDetermined,
		Candidates: candidates,
		Hint:       r.tripletHint(opts),
	}
}

// HostTriplet returns the explicit host triplet, then
// $VCPKG_DEFAULT_HOST_TRIPLET, or "" when neither is set.
func (r *Resolver) HostTriplet(opts Options) string {
	c, ok := first([]Candidate{
		fromValue(SourceHostTriplet, opts.HostTriplet),
		r.fromEnv(SourceEnvHost, env.VcpkgDefaultHostTriplet),
	})
	if !ok {
		return ""
	}
	r.logger.Debug("host triplet", "source", c.Source, "triplet", c.Value)
	return c.Value
}

func (r *Resolver) tripletHint(opts Options) string {
	t, err := platform.Suggest(opts.Target, opts.Host, opts.StaticCRT)
	if err != nil {
		return fmt.Sprintf("set %s", env.VcpkgDefaultTriplet)
	}
	return fmt.Sprintf("set %s (e.g. %s=%s)", env.VcpkgDefaultTriplet, env.VcpkgDefaultTriplet, t)
}

func (r *Resolver) fromEnv(source, key string) Candidate {
	v, _ := env.Get(r.env, key)
	return fromValue(source, v)
}

func fromValue(source, value string) Candidate {
	if value == "" {
		return Candidate{Source: source, Reason: notSet}
	}
	return Candidate{Source: source, Value: value}
}

// first returns the first candidate that is set
func first(candidates []Candidate) (Candidate, bool) {
	for _, c := range candidates {
		if c.Reason == "" {
			return c, true
		}
	}
	return Candidate{}, false
}

// checkDir returns "" if path is an existing directory, otherwise the reason it is not
func checkDir(path string) string {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return "does not exist"
	case err != nil:
		return err.Error()
	case !info.IsDir():
		return "not a directory"
	default:
		return ""
	}
}
