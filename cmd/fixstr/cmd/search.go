package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/internal/engine"
)

var (
	findFrom    int
	findNth     int
	findReverse bool
)

var findCmd = &cobra.Command{
	Use:   "find <string> <target>",
	Short: "Find a unit or substring",
	Long: `Prints the index of the first match of <target> in <string>, or
"not found". --nth skips earlier matches; --reverse searches backwards
from --from (default: the last position the target fits).

Examples:
  fixstr find abcabc b            # 1
  fixstr find abcabc b --from 2   # 4
  fixstr find abcabc bc --reverse # 4`,
	Args: exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := engine.FindOptions{
			From:    findFrom,
			HasFrom: cmd.Flags().Changed("from"),
			Nth:     findNth,
			Reverse: findReverse,
		}
		return run("find", args, func() (interface{}, error) {
			return current.eng.Find(args[0], args[1], opts), nil
		})
	},
}

var containsCmd = &cobra.Command{
	Use:   "contains <string> <target>",
	Short: "Report whether string contains target",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("contains", args, func() (interface{}, error) {
			return current.eng.Contains(args[0], args[1]), nil
		})
	},
}

var startsWithCmd = &cobra.Command{
	Use:   "starts-with <string> <prefix>",
	Short: "Report whether string begins with prefix",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("starts-with", args, func() (interface{}, error) {
			return current.eng.HasPrefix(args[0], args[1]), nil
		})
	},
}

var endsWithCmd = &cobra.Command{
	Use:   "ends-with <string> <suffix>",
	Short: "Report whether string ends with suffix",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("ends-with", args, func() (interface{}, error) {
			return current.eng.HasSuffix(args[0], args[1]), nil
		})
	},
}

var countCmd = &cobra.Command{
	Use:   "count <string> <unit>",
	Short: "Count occurrences of a single unit",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("count", args, func() (interface{}, error) {
			return current.eng.Count(args[0], args[1])
		})
	},
}

func init() {
	rootCmd.AddCommand(findCmd, containsCmd, startsWithCmd, endsWithCmd, countCmd)

	findCmd.Flags().IntVar(&findFrom, "from", 0, "index to start searching at")
	findCmd.Flags().IntVar(&findNth, "nth", 0, "number of earlier matches to skip")
	findCmd.Flags().BoolVarP(&findReverse, "reverse", "r", false, "search backwards")
}
