package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/arc/comb"
	"github.com/dhamidi/arc/format"
	"github.com/dhamidi/arc/grammar"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var errParseFailed = errors.New("parse failed")

func newRunCmd(a *app) *cobra.Command {
	var grammarName string
	var outputFormat string
	var filename string
	var trace bool

	cmd := &cobra.Command{
		Use:   "run [input]",
		Short: "Parse input with a grammar and print the final state",
		Long: `Parse input with a grammar and print the final state.

The input is taken from the argument, from --file, or from standard input.
The command exits with a non-zero status when the parse fails.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if grammarName == "" {
				grammarName = a.cfg.Grammar
			}
			if outputFormat == "" {
				outputFormat = a.cfg.Format
			}

			p, ok := grammar.Lookup(grammarName)
			if !ok {
				return fmt.Errorf("unknown grammar: %s", grammarName)
			}
			if trace {
				a.configureLogging(traceVerbosity)
				p = p.Trace(commonlog.GetLogger("arc.run"))
			}

			input, err := readInput(cmd, args, filename)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			encoder, err := format.New(outputFormat, out, format.Options{
				Color: useColor(a.cfg.Color, out),
			})
			if err != nil {
				return err
			}

			state := comb.Run(p, input)
			if err := encoder.Encode(state); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if state.Failed {
				return errParseFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammarName, "grammar", "g", "", "grammar to run (see 'arc grammars')")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (json, yaml, text)")
	cmd.Flags().StringVar(&filename, "file", "", "read input from file")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every step of the grammar (raises verbosity to debug)")

	return cmd
}

func readInput(cmd *cobra.Command, args []string, filename string) (string, error) {
	switch {
	case len(args) == 1 && filename != "":
		return "", errors.New("give either an input argument or --file, not both")
	case len(args) == 1:
		return args[0], nil
	case filename != "":
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
