package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/infrastructure/observability"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	format   string
	selected []string
	strict   bool
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Simplified chemical risk assessment (INRS NTP 937)",
	Long:  "evaluate ranks the agents of an inventory file by potential risk and\nscores the inhalation and dermal exposure of the selected ones.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		observability.InitLoggerWithWriter(cmd.ErrOrStderr(), "evaluate", "development", rootFlags.logLevel)
	},
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.format, "format", "ascii", "Output format: ascii, markdown or json")
	f.StringSliceVar(&rootFlags.selected, "select", nil, "Agent ids to evaluate in detail (default: every agent)")
	f.BoolVar(&rootFlags.strict, "strict", false, "Fail when the inventory has validation problems")
	f.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level")

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
