package cmd

import (
	"os"

	"github.com/spf13/cobra"

	fxerror "github.com/msto63/fixstr/foundation/core/error"
	fxerrors "github.com/msto63/fixstr/foundation/core/errors"
	fxlog "github.com/msto63/fixstr/foundation/core/log"
	"github.com/msto63/fixstr/internal/engine"
	"github.com/msto63/fixstr/internal/render"
	"github.com/msto63/fixstr/pkg/core/cache"
	"github.com/msto63/fixstr/pkg/core/config"
	"github.com/msto63/fixstr/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	wide      bool
	outFormat string
)

// session holds what one invocation needs, built from config and flags
// before any command runs.
type session struct {
	cfg  *config.Config
	log  *fxlog.Logger
	eng  engine.Engine
	out  *render.Renderer
	errs *render.Renderer
}

var current *session

var rootCmd = &cobra.Command{
	Use:   "fixstr",
	Short: "fixstr - fixed-length immutable string operations",
	Long: `fixstr runs operations of the fixstr library on its arguments.

Strings are built from bytes by default; --wide builds them from runes.
Indexes count code units of the chosen width.

Examples:
  fixstr find abcabc b --from 2
  fixstr substring "hello world" 6 11
  fixstr --wide reverse "añb"
  fixstr --output json split key=value --at 3`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command line and returns the process exit status
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	errs := render.New(os.Stderr, render.FormatText, false)
	if current != nil {
		errs = current.errs
	}
	_ = errs.Error(err)
	return ExitCode(err)
}

// ExitCode maps err to a process exit status: 2 for invalid arguments,
// 3 for configuration problems, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if fe, ok := err.(*fxerror.Error); ok {
		return fe.Code().ExitCode()
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./fixstr.toml or the user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().BoolVarP(&wide, "wide", "w", false, "build strings from runes instead of bytes")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "output", "o", "text", "output format: text or json")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fxerrors.InvalidInput(fxerrors.ModuleCLI, "flags", err.Error(), cmd.UseLine())
	})
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("wide") {
		cfg.Output.Wide = wide
	}
	if flags.Changed("output") {
		cfg.Output.Format = outFormat
	}
	if verbose {
		cfg.General.LogLevel = "debug"
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	mode := engine.ModeNarrow
	if cfg.Output.Wide {
		mode = engine.ModeWide
	}

	logger := logging.NewLogger(logging.LoggerConfig{
		Name:         "fixstr",
		Level:        cfg.General.LogLevel,
		Format:       cfg.General.LogFormat,
		Output:       cmd.ErrOrStderr(),
		EnableCaller: cfg.General.LogCaller,
	})
	logger.Debug("configuration loaded", fxlog.Fields{
		"source": cfg.Source,
		"mode":   mode.String(),
		"output": cfg.Output.Format,
	}, fxlog.Bool("color", cfg.Output.Color))

	current = &session{
		cfg:  cfg,
		log:  logger,
		eng:  engine.New(mode, cache.DefaultConfig()),
		out:  render.New(cmd.OutOrStdout(), format, cfg.Output.Color),
		errs: render.New(cmd.ErrOrStderr(), format, cfg.Output.Color),
	}
	return nil
}
