package cmd

import (
	"github.com/spf13/cobra"
)

var concatCmd = &cobra.Command{
	Use:   "concat <a> [b ...]",
	Short: "Join strings into one",
	Args:  minArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("concat", args, func() (interface{}, error) {
			return current.eng.Concat(args...), nil
		})
	},
}

var hashCmd = &cobra.Command{
	Use:   "hash <string>",
	Short: "Print the 64-bit hash of a string",
	Long: `Prints the deterministic hash of <string>. Equal strings hash equally
at a given width; narrow and wide hashes of ASCII text agree.`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("hash", args, func() (interface{}, error) {
			return current.eng.Hash(args[0]), nil
		})
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <string>",
	Short: "Show the units, length and hash of a string",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("inspect", args, func() (interface{}, error) {
			return current.eng.Inspect(args[0]), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(concatCmd, hashCmd, inspectCmd)
}
