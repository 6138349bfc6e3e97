package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/internal/engine"
)

var compareLimit int

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "Compare two strings lexicographically",
	Long: `Prints -1, 0 or 1 as <a> sorts before, equal to, or after <b>.
A shorter string sorts before any longer string it is a prefix of.
With --limit only the first N units are compared; --limit 0 always prints 0.

Examples:
  fixstr compare abc abd           # -1
  fixstr compare abcX abcY --limit 3  # 0`,
	Args: exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("compare", args, func() (interface{}, error) {
			opts := engine.CompareOptions{
				Limit:    compareLimit,
				HasLimit: cmd.Flags().Changed("limit"),
			}
			return current.eng.Compare(args[0], args[1], opts), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().IntVarP(&compareLimit, "limit", "n", 0, "compare only the first N units")
}
