// Command ebi exercises the ebi package from the command line.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds a fresh command tree; tests build their own so flag state
// doesn't leak between them.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "ebi",
		Short:        "Arbitrary-precision integer demo and calculator",
		Long:         "ebi reads a big integer from stdin, prints it and combines it with a fixed 136-bit value.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "path to a TOML config file")
	flags.IntVar(&opts.maxDigits, "max-digits", 0, "maximum number of hex digits per value (0 means the library default)")
	flags.StringVar(&opts.mod, "mod", "truncated", "modulo convention (truncated|nonnegative)")
	flags.BoolVar(&opts.lenient, "lenient", false, "treat malformed numbers as zero instead of failing")
	flags.StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")
	flags.BoolVar(&opts.verbose, "verbose", false, "log effective settings to stderr")
	flags.IntVar(&opts.count, "count", defaultCount, "how far the demo counts")

	rootCmd.AddCommand(newDemoCmd(opts))
	rootCmd.AddCommand(newCalcCmd(opts))
	return rootCmd
}
