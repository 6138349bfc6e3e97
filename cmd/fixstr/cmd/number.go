package cmd

import (
	"github.com/spf13/cobra"

	fxerror "github.com/msto63/fixstr/foundation/core/error"
	"github.com/msto63/fixstr/foundation/utils/fixstr"
)

var (
	numUnsigned bool
	atoiStrict  bool
)

var itoaCmd = &cobra.Command{
	Use:   "itoa <number>",
	Short: "Format an integer as a fixed string",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("itoa", args, func() (interface{}, error) {
			in := fixstr.Of(args[0])
			if numUnsigned {
				v, err := in.ParseUint()
				if err != nil {
					return nil, fxerror.Wrap(err, "itoa")
				}
				return current.eng.Utoa(v), nil
			}
			v, err := in.ParseInt()
			if err != nil {
				return nil, fxerror.Wrap(err, "itoa")
			}
			return current.eng.Itoa(v), nil
		})
	},
}

var atoiCmd = &cobra.Command{
	Use:   "atoi <string>",
	Short: "Convert a decimal string to an integer",
	Long: `Converts <string> to a 64-bit integer. Without --strict the conversion
is unchecked: non-digit units and overflow produce an unspecified value
instead of an error. --strict rejects both.

Examples:
  fixstr atoi -- -42
  fixstr atoi 12x --strict    # INVALID_FORMAT`,
	Args: exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run("atoi", args, func() (interface{}, error) {
			if numUnsigned {
				return current.eng.Atou(args[0], atoiStrict)
			}
			return current.eng.Atoi(args[0], atoiStrict)
		})
	},
}

func init() {
	rootCmd.AddCommand(itoaCmd, atoiCmd)

	itoaCmd.Flags().BoolVarP(&numUnsigned, "unsigned", "u", false, "treat the number as unsigned")
	atoiCmd.Flags().BoolVarP(&numUnsigned, "unsigned", "u", false, "convert to an unsigned integer")
	atoiCmd.Flags().BoolVar(&atoiStrict, "strict", false, "fail on malformed or overflowing input")
}
