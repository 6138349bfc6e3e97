package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/fixstr/internal/engine"
	"github.com/msto63/fixstr/internal/tui"
	"github.com/msto63/fixstr/pkg/core/cache"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [string] [target]",
	Short: "Explore operations interactively",
	Long: `Opens a terminal view with a string and a target input. Every search,
predicate and conversion is recomputed as you type. ctrl+w switches
between narrow and wide units.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var subject, target string
		if len(args) > 0 {
			subject = args[0]
		}
		if len(args) > 1 {
			target = args[1]
		}

		engines := map[engine.Mode]engine.Engine{
			engine.ModeNarrow: engine.New(engine.ModeNarrow, cache.DefaultConfig()),
			engine.ModeWide:   engine.New(engine.ModeWide, cache.DefaultConfig()),
		}
		engines[current.eng.Mode()] = current.eng

		current.log.Debug("starting explorer")
		return tui.Run(tui.NewModel(engines, current.eng.Mode(), subject, target))
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}
