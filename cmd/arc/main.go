package main

import (
	"os"

	"github.com/dhamidi/arc/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    int
	verbosity  int
	cfg        *config.Config
}

// traceVerbosity is the lowest verbosity at which commonlog emits debug
// messages, which is where Parser.Trace logs.
const traceVerbosity = 2

var configureLog = commonlog.Configure

// configureLogging applies the configured verbosity, never lower than atLeast.
func (a *app) configureLogging(atLeast int) {
	if a.verbosity < atLeast {
		a.verbosity = atLeast
	}
	configureLog(a.verbosity, nil)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "arc",
		Short:   "Run parser-combinator grammars over text",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.verbosity = cfg.Verbosity
			if a.verbose > 0 {
				a.verbosity = a.verbose
			}
			a.configureLogging(0)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (default ./"+config.DefaultFile+" if present)")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newGrammarsCmd())
	rootCmd.AddCommand(newLSPCmd(a))
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
