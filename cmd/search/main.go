package main

import (
	"errors"
	"os"

	"github.com/fatih/color"
	"github.com/scottcagno/kmpsearch/pkg/logger"
	"github.com/spf13/cobra"
)

// errNoMatch makes the process exit with status 1, like grep, when a
// search finds nothing.
var errNoMatch = errors.New("no match")

type app struct {
	conf *Config
	log  *logger.Logger
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	a := &app{
		conf: new(Config),
		log:  log,
	}
	root := &cobra.Command{
		Use:   "kmpsearch",
		Short: "Exact substring search with the prefix function",
		Long: `kmpsearch finds every occurrence of a query in a text in linear time using
the prefix function that underlies the Knuth-Morris-Pratt algorithm.

Matching is over raw bytes: no case folding and no Unicode normalization.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.PersistentFlags().StringVar(&a.conf.LogLevel, "log-level", defaultLogLevel, "Log level (trace, debug, info, warn, error, off)")
	root.PersistentFlags().BoolVar(&a.conf.NoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().BoolVar(&a.conf.UseMmap, "mmap", false, "Memory-map input files instead of reading them")

	root.AddCommand(
		a.newFindCmd(),
		a.newTableCmd(),
		a.newBenchCmd(),
	)
	return root
}

func (a *app) setup() error {
	a.conf = checkConfig(a.conf)
	lvl, err := logger.ParseLevel(a.conf.LogLevel)
	if err != nil {
		return err
	}
	a.log.SetLevel(lvl)
	if a.conf.NoColor {
		color.NoColor = true
	}
	a.log.Debugf("config: %s", a.conf)
	return nil
}

func main() {
	log := logger.DefaultLogger
	if err := newRootCmd(log).Execute(); err != nil {
		if errors.Is(err, errNoMatch) {
			os.Exit(1)
		}
		log.Errorf("%v", err)
		os.Exit(2)
	}
}
