package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/pkg/core/config"
)

var configPathOnly bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration after file, environment (FIXSTR_*) and flag
overrides are applied, in TOML. The output can be saved as fixstr.toml.`,
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if configPathOnly {
			source := current.cfg.Source
			if source == "" {
				source = "(defaults)"
			}
			_, err := fmt.Fprintln(out, source)
			return err
		}
		fmt.Fprintf(out, "# environment prefix: %s_\n", config.EnvPrefix)
		return current.cfg.WriteTOML(out)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configPathOnly, "path", false, "print only the file the configuration came from")
}
