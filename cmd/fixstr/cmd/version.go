package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/internal/render"
	"github.com/msto63/fixstr/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		if current != nil && current.out.Format() == render.FormatJSON {
			return current.out.Result(render.Result{Op: "version", Value: info})
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fixstr v%s\n", info.Version)
		fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go Version: %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:    %s\n", info.Platform)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
