// Package vcpkg locates packages installed by vcpkg so a build can compile
// and link against them.
//
//	l, err := vcpkg.New("zlib").
//	    VcpkgTarget("x64-windows").
//	    Locate()
//
// Locate finds the install root, determines the triplet, and writes the
// link-library, link-search and include directives for the package.
package vcpkg

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/arc-language/vcpkg-locate/pkg/directive"
	"github.com/arc-language/vcpkg-locate/pkg/env"
	"github.com/arc-language/vcpkg-locate/pkg/layout"
	"github.com/arc-language/vcpkg-locate/pkg/resolve"
)

// Re-export types for convenience
type (
	Layout         = layout.Layout
	CompilerFlags  = layout.CompilerFlags
	Format         = directive.Format
	Candidate      = resolve.Candidate
	CandidateError = resolve.CandidateError
)

// Re-export output formats
const (
	FormatCargo = directive.FormatCargo
	FormatFlags = directive.FormatFlags
	FormatEnv   = directive.FormatEnv
	FormatJSON  = directive.FormatJSON
	FormatYAML  = directive.FormatYAML
)

// Config accumulates the settings for locating one package. Setters return
// the receiver for chaining and never validate; problems surface from
// Resolve or Locate, after which the Config is spent.
type Config struct {
	opts     resolve.Options
	env      env.Lookup
	logger   *log.Logger
	out      io.Writer
	format   Format
	consumed bool
}

// New creates a configuration for the named package
func New(name string) *Config {
	return &Config{
		opts: resolve.Options{Name: name},
	}
}

// Target sets the target platform ("os/arch")
func (c *Config) Target(target string) *Config {
	c.opts.Target = target
	return c
}

// Host sets the host platform ("os/arch")
func (c *Config) Host(host string) *Config {
	c.opts.Host = host
	return c
}

// OutDir sets the build output directory. It is carried through to the
// layout and does not affect resolution.
func (c *Config) OutDir(path string) *Config {
	c.opts.OutDir = path
	return c
}

// StaticCRT records whether the C runtime is linked statically
func (c *Config) StaticCRT(isStatic bool) *Config {
	c.opts.StaticCRT = &isStatic
	return c
}

// VcpkgRoot sets the vcpkg checkout; packages are looked up in its
// "installed" directory.
func (c *Config) VcpkgRoot(path string) *Config {
	c.opts.VcpkgRoot = path
	return c
}

// VcpkgHost sets the host triplet
func (c *Config) VcpkgHost(triplet string) *Config {
	c.opts.HostTriplet = triplet
	return c
}

// VcpkgTarget sets the target triplet
func (c *Config) VcpkgTarget(triplet string) *Config {
	c.opts.TargetTriplet = triplet
	return c
}

// InstalledDir sets the install tree root directly. It takes precedence
// over every other root source.
func (c *Config) InstalledDir(path string) *Config {
	c.opts.InstalledDir = path
	return c
}

// Env replaces the process environment used during resolution
func (c *Config) Env(lookup env.Lookup) *Config {
	c.env = lookup
	return c
}

// Logger sets the logger for resolution diagnostics
func (c *Config) Logger(logger *log.Logger) *Config {
	c.logger = logger
	return c
}

// Output sets where Locate writes directives (default: stdout)
func (c *Config) Output(w io.Writer) *Config {
	c.out = w
	return c
}

// Format sets how Locate writes directives (default: cargo)
func (c *Config) Format(format Format) *Config {
	c.format = format
	return c
}

// Resolve finds the package layout without writing any directives.
// The configuration cannot be used again afterwards.
func (c *Config) Resolve() (*Layout, error) {
	if c.consumed {
		return nil, &Error{Op: "resolve", Package: c.opts.Name, Err: ErrConfigConsumed}
	}
	c.consumed = true

	l, err := resolve.New(c.env, c.logger).Resolve(c.opts)
	if err != nil {
		return nil, &Error{Op: "resolve", Package: c.opts.Name, Err: err}
	}
	return l, nil
}

// Locate resolves the package and writes its directives.
// The configuration cannot be used again afterwards.
func (c *Config) Locate() (*Layout, error) {
	l, err := c.Resolve()
	if err != nil {
		return nil, err
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}

	if err := directive.Emit(out, c.format, l); err != nil {
		return nil, &Error{Op: "emit", Package: l.Name, Err: err}
	}
	return l, nil
}
