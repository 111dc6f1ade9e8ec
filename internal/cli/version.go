package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vcpkg-locate version %s\n", version)
			fmt.Fprintln(out, "https://github.com/arc-language/vcpkg-locate")
		},
	}
}
