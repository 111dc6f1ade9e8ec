package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arc-language/vcpkg-locate/pkg/core"
	"github.com/arc-language/vcpkg-locate/pkg/directive"
	"github.com/arc-language/vcpkg-locate/pkg/env"
)

// rootOptions holds the global flags and everything derived from them
type rootOptions struct {
	cfgFile string
	format  string
	debug   bool
	envVars []string

	config *core.Config
	lookup env.Lookup
}

// Execute executes the root command
func Execute() error {
	return newRootCmd(env.OS()).ExecuteContext(context.Background())
}

func newRootCmd(lookup env.Lookup) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "vcpkg-locate",
		Short: "Locate vcpkg-installed packages for native builds",
		Long: `vcpkg-locate - find where vcpkg installed a package

Resolves the vcpkg install root and triplet for a package and prints the
link-library, link-search and include directives a build needs.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd, lookup)
		},
	}

	// Global flags
	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/vcpkg-locate/config.yaml)")
	root.PersistentFlags().StringVar(&opts.format, "format", "", "output format ("+strings.Join(directive.Formats(), ", ")+")")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringArrayVar(&opts.envVars, "env", nil, "override an environment variable (KEY=VALUE, repeatable)")

	// Add commands
	root.AddCommand(newLocateCmd(opts))
	root.AddCommand(newTripletCmd(opts))
	root.AddCommand(newLibsCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// init loads the config file, applies flag overrides, and attaches the logger
func (o *rootOptions) init(cmd *cobra.Command, base env.Lookup) error {
	cfg, err := core.LoadConfig(o.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	if o.format != "" {
		cfg.Format = o.format
	}
	if o.debug {
		cfg.Debug = true
	}
	o.config = cfg

	vars, err := parseEnvVars(o.envVars)
	if err != nil {
		return err
	}
	o.lookup = env.Overlay(base, vars)

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	if o.cfgFile != "" {
		logger.Debug("loaded config", "path", o.cfgFile)
	}
	for _, name := range env.Names() {
		v, _ := env.Get(o.lookup, name)
		logger.Debug("environment", "var", name, "value", v)
	}
	return nil
}

// parseEnvVars turns KEY=VALUE pairs into a map
func parseEnvVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	vars := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --env %q: want KEY=VALUE", p)
		}
		vars[k] = v
	}
	return vars, nil
}
