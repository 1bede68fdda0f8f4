package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"availspec/internal/diagfmt"
	"availspec/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] dir",
	Short: "Check every *.avail file under a directory",
	Long: `Check parses every *.avail file under dir in parallel and reports all
diagnostics. Results for unchanged files are replayed from the disk cache.

The exit status is non-zero when any file has errors.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("grammar", "", "grammar to parse with (condition|attribute)")
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = all cores)")
	checkCmd.Flags().Bool("no-cache", false, "parse everything, bypassing the disk cache")
	checkCmd.Flags().String("format", "", "diagnostics format (pretty|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	grammarFlag, _ := cmd.Flags().GetString("grammar")
	g, err := s.grammar(grammarFlag)
	if err != nil {
		return err
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs == 0 {
		jobs = s.cfg.Check.Jobs
	}
	noCache, _ := cmd.Flags().GetBool("no-cache")
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = s.cfg.Output.Format
	}

	var cache *driver.DiskCache
	if s.cfg.Check.Cache && !noCache {
		cache, err = driver.OpenDiskCache("availspec")
		if err != nil {
			// a broken cache dir degrades to a full parse, it never
			// blocks the check
			cache = nil
		}
	}

	fileSet, results, err := driver.ParseDir(cmd.Context(), args[0], driver.ParseDirOptions{
		Grammar:        g,
		MaxDiagnostics: s.cfg.Check.MaxDiagnostics,
		Jobs:           jobs,
		Cache:          cache,
	})
	if err != nil {
		return err
	}

	filesWithErrors := 0
	totalDiags := 0
	cacheHits := 0
	for _, r := range results {
		totalDiags += r.Bag.Len()
		if r.Bag.HasErrors() {
			filesWithErrors++
		}
		if r.CacheHit {
			cacheHits++
		}
		if r.Bag.Len() == 0 {
			continue
		}
		switch format {
		case "json":
			if err := diagfmt.JSON(cmd.OutOrStdout(), r.Bag, fileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}); err != nil {
				return err
			}
		default:
			diagfmt.Pretty(cmd.OutOrStdout(), r.Bag, fileSet, diagfmt.PrettyOpts{
				Color:      s.useColor(os.Stdout),
				ShowSource: true,
				ShowNotes:  true,
			})
		}
	}

	if !s.quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "checked %d file(s): %d diagnostic(s), %d from cache\n",
			len(results), totalDiags, cacheHits)
	}

	if filesWithErrors > 0 {
		return fmt.Errorf("%d file(s) with errors", filesWithErrors)
	}
	return nil
}
