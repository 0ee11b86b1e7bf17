package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"learnquiz/internal/config"
	"learnquiz/internal/question"
	"learnquiz/internal/quiz"
	"learnquiz/internal/ui/console"
	"learnquiz/internal/ui/quiztui"
)

// runQuiz builds the handler for the quiz command.
func runQuiz(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .learnquiz/config.yml)")
		dir := flags.String("dir", "", "Questions directory (overrides config)")
		subsetFlag := flags.String("subset", string(question.SubsetAll), "Question subset: all|choice|open")
		noShuffle := flags.Bool("no-shuffle", false, "Present questions in load order")
		uiFlag := flags.String("ui", "", "UI mode: auto|live|plain (default: config)")
		noColor := flags.Bool("no-color", false, "Disable color output in the TUI")
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

		subset, err := question.ParseSubset(*subsetFlag)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}

		mode := cfg.Quiz.UI
		if *uiFlag != "" {
			mode = *uiFlag
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		shuffle := *cfg.Quiz.Shuffle && !*noShuffle
		bands := quiz.BandsFromConfig(cfg.Grades)
		session := quiz.NewSession(cfg.Corpus.Dir, config.Labels(cfg))

		if decision.useLive {
			if err := quiztui.Start(session, quiztui.Options{
				Shuffle: shuffle,
				Bands:   bands,
				NoColor: *noColor,
				Subset:  subset,
			}, stdout); err != nil {
				fmt.Fprintf(stderr, "TUI failed: %v\n", err)
				return ExitError
			}
			return ExitOK
		}

		for _, warning := range session.Warnings() {
			fmt.Fprintf(stderr, "Warning: %s\n", warning)
		}
		shell := console.NewShell(stdin, stdout)
		if _, err := quiz.Run(session.Subset(subset), quiz.Options{Shuffle: shuffle, Bands: bands}, shell); err != nil {
			if err == io.EOF {
				fmt.Fprintln(stderr, "\nQuiz aborted.")
				return ExitError
			}
			fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
