package cmd

import (
	"github.com/spf13/cobra"
)

var (
	splitAt    int
	splitDelim string
)

var substringCmd = &cobra.Command{
	Use:   "substring <string> <begin> <end>",
	Short: "Copy the units in [begin, end)",
	Long: `Prints the units of <string> from <begin> up to but not including <end>.
Bounds outside 0 <= begin <= end <= length fail with INVALID_BOUNDS.

Examples:
  fixstr substring "hello world" 6 11   # world`,
	Args: exactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		begin, err := intArg("begin", args[1])
		if err != nil {
			return err
		}
		end, err := intArg("end", args[2])
		if err != nil {
			return err
		}
		return run("substring", args, func() (interface{}, error) {
			return current.eng.Substring(args[0], begin, end)
		})
	},
}

var prefixCmd = &cobra.Command{
	Use:   "prefix <string> <end>",
	Short: "Copy the first <end> units",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		end, err := intArg("end", args[1])
		if err != nil {
			return err
		}
		return run("prefix", args, func() (interface{}, error) {
			return current.eng.Prefix(args[0], end)
		})
	},
}

var suffixCmd = &cobra.Command{
	Use:   "suffix <string> <begin>",
	Short: "Copy the units from <begin> to the end",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		begin, err := intArg("begin", args[1])
		if err != nil {
			return err
		}
		return run("suffix", args, func() (interface{}, error) {
			return current.eng.Suffix(args[0], begin)
		})
	},
}

var splitCmd = &cobra.Command{
	Use:   "split <string> (--at <index> | --delim <unit>)",
	Short: "Split around one index or at every delimiter",
	Long: `With --at the unit at <index> is dropped and the parts before and after
it are printed. With --delim the string is cut at every occurrence of
the one-unit delimiter.

Examples:
  fixstr split key=value --at 3    # key, value
  fixstr split a,b,c --delim ,     # a, b, c`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("at") {
			return run("split", args, func() (interface{}, error) {
				head, tail, err := current.eng.SplitAt(args[0], splitAt)
				if err != nil {
					return nil, err
				}
				return []string{head, tail}, nil
			})
		}
		return run("split", args, func() (interface{}, error) {
			return current.eng.SplitDelim(args[0], splitDelim)
		})
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse <string>",
	Short: "Reverse the units of a string",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("reverse", args, func() (interface{}, error) {
			return current.eng.Reverse(args[0]), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(substringCmd, prefixCmd, suffixCmd, splitCmd, reverseCmd)

	splitCmd.Flags().IntVar(&splitAt, "at", 0, "index of the unit to split around")
	splitCmd.Flags().StringVar(&splitDelim, "delim", "", "one-unit delimiter")
	splitCmd.MarkFlagsMutuallyExclusive("at", "delim")
	splitCmd.MarkFlagsOneRequired("at", "delim")
}
