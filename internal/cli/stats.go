package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"learnquiz/internal/config"
	"learnquiz/internal/question"
	"learnquiz/internal/ui/console"
)

// runStats builds the handler for the stats command.
func runStats(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .learnquiz/config.yml)")
		dir := flags.String("dir", "", "Questions directory (overrides config)")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath, *dir)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		result := question.LoadAll(cfg.Corpus.Dir, config.Labels(cfg))
		for _, warning := range result.Warnings {
			fmt.Fprintf(stderr, "Warning: %s\n", warning)
		}
		console.PrintStats(question.Collect(result.Questions), stdout)
		return ExitOK
	}
}
