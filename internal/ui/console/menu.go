package console

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"learnquiz/internal/question"
	"learnquiz/internal/quiz"
)

// MenuOptions configures the text menu loop.
type MenuOptions struct {
	Shuffle bool
	Bands   []quiz.Band
}

// Menu runs the classic text menu loop over a session. The corpus is
// reloaded on every iteration so files added while the program runs
// are picked up.
func Menu(session *quiz.Session, opts MenuOptions, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	shell := &Shell{reader: reader, out: out}

	for {
		session.Reload()
		printMenu(out)
		printLoadSummary(session, out)

		choice, err := promptLine(reader, out, "\nChoose an option (1-6)")
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			if err := runQuiz(session.Subset(question.SubsetAll), opts, shell); err != nil {
				return err
			}
		case "2":
			if err := runQuiz(session.Subset(question.SubsetChoice), opts, shell); err != nil {
				return err
			}
		case "3":
			if err := runQuiz(session.Subset(question.SubsetOpen), opts, shell); err != nil {
				return err
			}
		case "4":
			printStats(session.Stats(), out)
		case "5":
			// Reload happens at the top of the loop; the entry exists
			// so the action is discoverable.
			fmt.Fprintln(out, "Questions reloaded.")
		case "6":
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice, try again.")
		}
	}
}

func runQuiz(questions []question.Question, opts MenuOptions, shell *Shell) error {
	_, err := quiz.Run(questions, quiz.Options{Shuffle: opts.Shuffle, Bands: opts.Bands}, shell)
	if err == io.EOF {
		return nil
	}
	return err
}

func printMenu(out io.Writer) {
	fmt.Fprintf(out, "\n%s\nLEARNQUIZ\n%s\n", rule, rule)
	fmt.Fprintln(out, "1) Start quiz (all questions)")
	fmt.Fprintln(out, "2) Start quiz (multiple choice only)")
	fmt.Fprintln(out, "3) Start quiz (open questions only)")
	fmt.Fprintln(out, "4) Show question statistics")
	fmt.Fprintln(out, "5) Reload questions")
	fmt.Fprintln(out, "6) Quit")
	fmt.Fprintln(out, thinRule)
}

func printLoadSummary(session *quiz.Session, out io.Writer) {
	for _, warning := range session.Warnings() {
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
	stats := session.Stats()
	if stats.Total == 0 {
		fmt.Fprintf(out, "No questions found in %q\n", session.Dir())
		return
	}
	fmt.Fprintf(out, "Loaded: %d questions (%d multiple choice, %d open)\n", stats.Total, stats.Choice, stats.Open)
}

// PrintStats writes the aggregate statistics view.
func PrintStats(stats question.Stats, out io.Writer) {
	printStats(stats, out)
}

func printStats(stats question.Stats, out io.Writer) {
	fmt.Fprintln(out, "\nStatistics:")
	fmt.Fprintf(out, "   Total questions: %d\n", stats.Total)
	fmt.Fprintf(out, "   Multiple choice: %d\n", stats.Choice)
	fmt.Fprintf(out, "   Open questions: %d\n", stats.Open)
	fmt.Fprintf(out, "   Source files: %d\n", len(stats.BySource))
	for _, source := range stats.BySource {
		fmt.Fprintf(out, "      - %s: %d questions\n", filepath.Base(source.File), source.Count)
	}
}
