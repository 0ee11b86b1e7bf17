package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"learnquiz/internal/question"
	"learnquiz/internal/quiz"
)

const rule = "=================================================="
const thinRule = "--------------------------------------------------"

// Shell renders a quiz on a line-oriented terminal. It implements
// quiz.Shell; judging and scoring stay in the run loop.
type Shell struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewShell wraps an input/output pair for interactive prompting.
func NewShell(in io.Reader, out io.Writer) *Shell {
	return &Shell{reader: bufio.NewReader(in), out: out}
}

func (s *Shell) QuizStart(total int) {
	fmt.Fprintf(s.out, "\nQUIZ - %d questions\n%s\n", total, rule)
}

func (s *Shell) QuestionStart(index, total int, item question.Question) {
	fmt.Fprintf(s.out, "\n[Question %d/%d]\n", index, total)
	fmt.Fprintf(s.out, "%s\n%s\n", item.Text, thinRule)
	for _, key := range item.OptionKeys() {
		fmt.Fprintf(s.out, "  %s) %s\n", key, item.Options[key])
	}
	if !item.IsOpen() {
		fmt.Fprintln(s.out, thinRule)
	}
}

func (s *Shell) SelectOption(item question.Question) (string, error) {
	label := fmt.Sprintf("Your answer (%s)", strings.Join(item.OptionKeys(), "/"))
	return promptLine(s.reader, s.out, label)
}

func (s *Shell) InvalidOption(item question.Question, entered string) {
	fmt.Fprintf(s.out, "Invalid answer. Enter one of %s.\n", strings.Join(item.OptionKeys(), ", "))
}

func (s *Shell) ReadAnswer(item question.Question) (string, error) {
	return promptLine(s.reader, s.out, "Your answer")
}

func (s *Shell) Judged(item question.Question, verdict quiz.Verdict) {
	if verdict.Correct {
		fmt.Fprintln(s.out, "Correct!")
		return
	}
	fmt.Fprintf(s.out, "Wrong. The correct answer is: %s\n", item.CorrectAnswer)
	if text, ok := item.Options[strings.ToUpper(item.CorrectAnswer)]; ok {
		fmt.Fprintf(s.out, "   -> %s\n", text)
	}
}

func (s *Shell) ConfirmOverride(item question.Question) (bool, error) {
	return promptYesNo(s.reader, s.out, "Was your answer actually correct?", false)
}

func (s *Shell) Overridden(item question.Question) {
	fmt.Fprintln(s.out, "Marked as correct.")
}

func (s *Shell) Note(item question.Question) {
	fmt.Fprintf(s.out, "\nNote: %s\n", item.Note)
}

func (s *Shell) NothingToDo() {
	fmt.Fprintln(s.out, "No questions available!")
}

func (s *Shell) Summary(result quiz.Result, band quiz.Band) {
	fmt.Fprintf(s.out, "\n%s\nRESULTS\n%s\n", rule, rule)
	fmt.Fprintf(s.out, "Correct answers: %d/%d (%.1f%%)\n", result.Correct, result.Total, result.Percentage())
	if band.Message != "" {
		fmt.Fprintln(s.out, band.Message)
	}
	if result.AttemptID != "" {
		fmt.Fprintf(s.out, "Attempt: %s\n", result.AttemptID)
	}
}
