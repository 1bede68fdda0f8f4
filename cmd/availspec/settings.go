package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"availspec/internal/parser"
	"availspec/internal/project"
)

// settings is the effective per-invocation configuration: the project's
// avail.toml (nearest ancestor of the working directory) with the root
// command's persistent flags layered on top.
type settings struct {
	cfg   project.Config
	quiet bool
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	cfg, _, err := project.Discover(".")
	if err != nil {
		return settings{}, err
	}

	flags := cmd.Root().PersistentFlags()

	if colorFlag, err := flags.GetString("color"); err == nil && colorFlag != "" {
		switch colorFlag {
		case "auto", "always", "never":
			cfg.Output.Color = colorFlag
		default:
			return settings{}, fmt.Errorf("invalid --color %q (auto|always|never)", colorFlag)
		}
	}
	if maxFlag, err := flags.GetInt("max-diagnostics"); err == nil && maxFlag > 0 {
		cfg.Check.MaxDiagnostics = maxFlag
	}
	quiet, _ := flags.GetBool("quiet")

	return settings{cfg: cfg, quiet: quiet}, nil
}

// useColor decides whether output to f gets escape codes.
func (s settings) useColor(f *os.File) bool {
	switch s.cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(f)
	}
}

// grammar resolves the effective grammar: an explicit flag wins, otherwise
// the project config decides.
func (s settings) grammar(flagValue string) (parser.Grammar, error) {
	name := flagValue
	if name == "" {
		name = s.cfg.Check.Grammar
	}
	switch name {
	case "condition":
		return parser.GrammarCondition, nil
	case "attribute":
		return parser.GrammarAttribute, nil
	default:
		return parser.GrammarCondition, fmt.Errorf("unknown grammar %q (condition|attribute)", name)
	}
}
