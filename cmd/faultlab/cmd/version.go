package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/faultlab/pkg/core/version"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Get()
			if opts.app.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(info.String()))
			fmt.Fprintf(out, "  Catalog:    %s\n", info.Catalog)
			fmt.Fprintf(out, "  Cases:      %s\n", info.Cases)
			fmt.Fprintf(out, "  Foundation: %s\n", info.Foundation)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
			return nil
		},
	}
}
