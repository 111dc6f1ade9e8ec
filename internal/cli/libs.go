package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/vcpkg-locate/pkg/layout"
	"github.com/arc-language/vcpkg-locate/pkg/platform"
)

func newLibsCmd(o *rootOptions) *cobra.Command {
	var f locateFlags

	cmd := &cobra.Command{
		Use:   "libs [package]",
		Short: "List library files in a package's lib directory",
		Long: `Resolve a package like locate does, then list the library files found
in its lib directory. Nothing is printed as build directives.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			l, err := o.newConfig(cmd, f.options(cmd, o, args[0])).Resolve()
			if err != nil {
				return err
			}

			libs := l.Libraries()
			if len(libs) == 0 {
				logger.Warn("no libraries found", "dir", l.Lib)
				return nil
			}

			out := cmd.OutOrStdout()
			for _, lib := range libs {
				kind := "shared"
				if lib.IsStatic {
					kind = "static"
				}
				fmt.Fprintf(out, "%-8s %s\n", kind, lib.Path)
			}

			if !l.HasLibrary(l.Name) {
				logger.Warn("no library file matches the package name", "name", l.Name, "dir", l.Lib)
			}
			if t, err := platform.ParseTriplet(l.Triplet); err == nil && t.IsStatic() && !hasStatic(libs) {
				logger.Warn("static triplet but no static library found", "triplet", l.Triplet, "dir", l.Lib)
			}
			return nil
		},
	}

	f.register(cmd)
	return cmd
}

func hasStatic(libs []*layout.Library) bool {
	for _, lib := range libs {
		if lib.IsStatic {
			return true
		}
	}
	return false
}
