package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/vcpkg-locate/pkg/platform"
	"github.com/arc-language/vcpkg-locate/pkg/resolve"
)

func newTripletCmd(o *rootOptions) *cobra.Command {
	var (
		f       locateFlags
		suggest bool
	)

	cmd := &cobra.Command{
		Use:   "triplet",
		Short: "Print the triplet a build would use",
		Long: `Print the target triplet resolved from --triplet, the config file,
$VCPKG_TARGET_TRIPLET and $VCPKG_DEFAULT_TRIPLET.

With --suggest, print the canonical vcpkg triplet for --target (or the
host platform) and --static-crt instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			opts := f.options(cmd, o, "")

			if suggest {
				t, err := platform.Suggest(opts.Target, opts.Host, opts.StaticCRT)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			}

			triplet, err := resolve.New(o.lookup, logger).TargetTriplet(opts)
			if err != nil {
				return err
			}

			if t, err := platform.ParseTriplet(triplet); err != nil {
				logger.Warn("triplet does not look like arch-os[-linkage]", "triplet", triplet)
			} else if !platform.KnownOS(t.OS) {
				logger.Warn("unknown triplet operating system", "triplet", triplet, "os", t.OS)
			}

			fmt.Fprintln(cmd.OutOrStdout(), triplet)
			return nil
		},
	}

	f.registerTriplet(cmd)
	cmd.Flags().BoolVar(&suggest, "suggest", false, "suggest a triplet from the target platform")
	return cmd
}
