package cmd

import (
	"github.com/spf13/cobra"

	fxerrors "github.com/msto63/fixstr/foundation/core/errors"
	fxlog "github.com/msto63/fixstr/foundation/core/log"
	"github.com/msto63/fixstr/foundation/utils/fixstr"
	"github.com/msto63/fixstr/internal/render"
)

// run times one operation, logs its failure and renders its result
func run(op string, args []string, fn func() (interface{}, error)) error {
	s := current
	s.log.Trace("running "+op, fxlog.Field("args", args))
	timer := s.log.StartTimer(op).WithField("mode", s.eng.Mode().String())

	value, err := fn()
	if err != nil {
		timer.Cancel()
		s.log.LogError(err, fxlog.String("command", op))
		return err
	}
	timer.Stop()

	return s.out.Result(render.Result{
		Op:    op,
		Mode:  s.eng.Mode().String(),
		Args:  args,
		Value: value,
	})
}

// exactArgs is cobra.ExactArgs reporting INVALID_INPUT
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fxerrors.InvalidInput(fxerrors.ModuleCLI, cmd.Name(), len(args), cmd.UseLine())
		}
		return nil
	}
}

// minArgs is cobra.MinimumNArgs reporting INVALID_INPUT
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fxerrors.InvalidInput(fxerrors.ModuleCLI, cmd.Name(), len(args), cmd.UseLine())
		}
		return nil
	}
}

// intArg parses a decimal index argument with the library's own checked parser
func intArg(name, s string) (int, error) {
	v, err := fixstr.Of(s).ParseInt()
	if err != nil {
		return 0, fxerrors.InvalidInput(fxerrors.ModuleCLI, name, s, "a decimal integer")
	}
	return int(v), nil
}
