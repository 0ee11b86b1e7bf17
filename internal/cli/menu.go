package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"learnquiz/internal/config"
	"learnquiz/internal/quiz"
	"learnquiz/internal/ui/console"
)

// runMenu builds the handler for the menu command.
func runMenu(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .learnquiz/config.yml)")
		dir := flags.String("dir", "", "Questions directory (overrides config)")
		noShuffle := flags.Bool("no-shuffle", false, "Present questions in load order")
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

		session := quiz.NewSession(cfg.Corpus.Dir, config.Labels(cfg))
		opts := console.MenuOptions{
			Shuffle: *cfg.Quiz.Shuffle && !*noShuffle,
			Bands:   quiz.BandsFromConfig(cfg.Grades),
		}
		if err := console.Menu(session, opts, stdin, stdout); err != nil {
			fmt.Fprintf(stderr, "Menu failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
