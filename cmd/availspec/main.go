package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"availspec/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "availspec",
	Short: "Availability specification parser and checker",
	Long: `availspec parses platform availability specifications: the argument
lists of availability guards ("iOS 9.0, macOS 10.12, *") and availability
attributes ("iOS, introduced: 9.0, message: ..."), losslessly and with
full error recovery.`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
