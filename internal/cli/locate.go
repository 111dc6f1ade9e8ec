package cli

import (
	"github.com/spf13/cobra"

	vcpkg "github.com/arc-language/vcpkg-locate"
	"github.com/arc-language/vcpkg-locate/pkg/directive"
	"github.com/arc-language/vcpkg-locate/pkg/resolve"
)

// locateFlags are the per-package overrides shared by locate and libs
type locateFlags struct {
	triplet      string
	hostTriplet  string
	vcpkgRoot    string
	installedDir string
	target       string
	host         string
	outDir       string
	staticCRT    bool
}

func (f *locateFlags) register(cmd *cobra.Command) {
	f.registerTriplet(cmd)

	flags := cmd.Flags()
	flags.StringVar(&f.hostTriplet, "host-triplet", "", "host triplet")
	flags.StringVar(&f.vcpkgRoot, "vcpkg-root", "", "vcpkg checkout; its installed/ directory is used")
	flags.StringVar(&f.installedDir, "installed-dir", "", "install tree root, used as-is")
	flags.StringVar(&f.outDir, "out-dir", "", "build output directory")
}

// registerTriplet adds only the flags that decide the target triplet
func (f *locateFlags) registerTriplet(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.triplet, "triplet", "", "target triplet (e.g. x64-windows)")
	flags.StringVar(&f.target, "target", "", "target platform (os/arch or a target triple)")
	flags.StringVar(&f.host, "host", "", "host platform (os/arch or a target triple)")
	flags.BoolVar(&f.staticCRT, "static-crt", false, "link the C runtime statically")
}

// options merges flags over the config file. Flags win when set.
func (f *locateFlags) options(cmd *cobra.Command, o *rootOptions, name string) resolve.Options {
	cfg := o.config

	opts := resolve.Options{
		Name:          name,
		Target:        pick(f.target, cfg.Target),
		Host:          pick(f.host, cfg.Host),
		OutDir:        f.outDir,
		VcpkgRoot:     pick(f.vcpkgRoot, cfg.VcpkgRoot),
		InstalledDir:  pick(f.installedDir, cfg.InstalledDir),
		TargetTriplet: pick(f.triplet, cfg.Triplet),
		HostTriplet:   pick(f.hostTriplet, cfg.HostTriplet),
		StaticCRT:     cfg.StaticCRT,
	}

	if cmd.Flags().Changed("static-crt") {
		static := f.staticCRT
		opts.StaticCRT = &static
	}
	return opts
}

// newConfig builds a vcpkg.Config from merged options
func (o *rootOptions) newConfig(cmd *cobra.Command, opts resolve.Options) *vcpkg.Config {
	cfg := vcpkg.New(opts.Name).
		Target(opts.Target).
		Host(opts.Host).
		OutDir(opts.OutDir).
		VcpkgRoot(opts.VcpkgRoot).
		InstalledDir(opts.InstalledDir).
		VcpkgTarget(opts.TargetTriplet).
		VcpkgHost(opts.HostTriplet).
		Env(o.lookup).
		Logger(loggerFromContext(cmd.Context())).
		Output(cmd.OutOrStdout())

	if opts.StaticCRT != nil {
		cfg = cfg.StaticCRT(*opts.StaticCRT)
	}
	return cfg
}

func newLocateCmd(o *rootOptions) *cobra.Command {
	var f locateFlags

	cmd := &cobra.Command{
		Use:   "locate [package]",
		Short: "Print build directives for an installed package",
		Long: `Resolve the vcpkg install root and triplet for a package and print the
link-library, link-search and include directives.

Install root, first existing directory wins:
  --installed-dir, --vcpkg-root/installed, $VCPKG_ROOT,
  ./vcpkg_installed, $VCPKG_MANIFEST_DIR

Triplet, first one set wins:
  --triplet, $VCPKG_TARGET_TRIPLET, $VCPKG_DEFAULT_TRIPLET

Examples:
  vcpkg-locate locate zlib --triplet x64-windows
  vcpkg-locate locate zlib --format env
  vcpkg-locate locate sqlite3 --vcpkg-root C:\vcpkg --static-crt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := directive.ParseFormat(o.config.Format)
			if err != nil {
				return err
			}

			opts := f.options(cmd, o, args[0])
			_, err = o.newConfig(cmd, opts).Format(format).Locate()
			return err
		},
	}

	f.register(cmd)
	return cmd
}

func pick(flag, file string) string {
	if flag != "" {
		return flag
	}
	return file
}
