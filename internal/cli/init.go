package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"learnquiz/internal/config"
)

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		dir := flags.String("dir", config.DefaultCorpusDir, "Questions directory to create")
		yes := flags.Bool("yes", false, "Skip the confirmation prompt")
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

		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		configPath := config.ConfigPath(wd)
		corpusDir := *dir
		if !filepath.IsAbs(corpusDir) {
			corpusDir = filepath.Join(wd, corpusDir)
		}

		if !*yes {
			reader := bufio.NewReader(stdin)
			fmt.Fprintf(stdout, "Initialize learnquiz config in %s? [Y/n]: ", config.ConfigDir(wd))
			line, err := reader.ReadString('\n')
			if err != nil && err != io.EOF {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			answer := strings.TrimSpace(strings.ToLower(line))
			if answer != "" && answer != "y" && answer != "yes" {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitError
			}
		}

		if err := config.Scaffold(configPath, corpusDir); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Wrote %s\n", configPath)
		fmt.Fprintf(stdout, "Sample questions in %s\n", corpusDir)
		fmt.Fprintln(stdout, "Run \"learnquiz quiz\" to start.")
		return ExitOK
	}
}
