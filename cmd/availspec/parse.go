package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"availspec/internal/diag"
	"availspec/internal/diagfmt"
	"availspec/internal/driver"
	"availspec/internal/syntax"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.avail",
	Short: "Parse an availability specification",
	Long: `Parse builds the lossless tree for one availability specification and
prints it. Malformed input still produces a tree; what was wrong with it is
reported on stderr. Pass "-" to read from stdin.

The exit status is non-zero when the input has errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("grammar", "", "grammar to parse with (condition|attribute)")
	parseCmd.Flags().String("format", "tree", "output format (tree|json|text)")
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	grammarFlag, _ := cmd.Flags().GetString("grammar")
	g, err := s.grammar(grammarFlag)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	var result *driver.ParseResult
	if args[0] == "-" {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		result = driver.ParseSource("<stdin>", content, g, s.cfg.Check.MaxDiagnostics)
	} else {
		result, err = driver.Parse(args[0], g, s.cfg.Check.MaxDiagnostics)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
	}

	if result.Bag.Len() > 0 && !s.quiet {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:      s.useColor(os.Stderr),
			ShowSource: true,
			ShowNotes:  true,
		})
	}

	switch format {
	case "tree":
		err = diagfmt.FormatTreePretty(cmd.OutOrStdout(), result.Builder, result.List, result.FileSet)
	case "json":
		err = diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.Builder, result.List)
	case "text":
		_, err = fmt.Fprintln(cmd.OutOrStdout(), syntax.Text(result.Builder, result.List))
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("%d error(s) in %s", countErrors(result), args[0])
	}
	return nil
}

func countErrors(result *driver.ParseResult) int {
	n := 0
	for _, d := range result.Bag.Items() {
		if d.Severity >= diag.SevError {
			n++
		}
	}
	return n
}
