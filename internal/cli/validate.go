package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"learnquiz/internal/config"
	"learnquiz/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .learnquiz/config.yml)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		cfg, err := config.Load(resolved)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		applyDirOverride(&cfg, "", resolved)
		fmt.Fprintln(stdout, "Config OK")

		result := question.LoadAll(cfg.Corpus.Dir, config.Labels(cfg))
		for _, warning := range result.Warnings {
			fmt.Fprintf(stderr, "Warning: %s\n", warning)
		}
		perFile := map[string]int{}
		for _, item := range result.Questions {
			perFile[item.SourceFile]++
		}
		fmt.Fprintf(stdout, "Corpus: %d questions from %d files\n", len(result.Questions), len(perFile))
		stats := question.Collect(result.Questions)
		for _, source := range stats.BySource {
			fmt.Fprintf(stdout, "  %s: %d\n", filepath.Base(source.File), source.Count)
		}
		return ExitOK
	}
}
