package quiz

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"learnquiz/internal/question"
)

// Shell is the interactive surface a quiz run drives. Implementations
// prompt the user and render feedback; the run loop owns judging and
// the tally, so every shell scores identically.
type Shell interface {
	QuizStart(total int)
	QuestionStart(index, total int, item question.Question)
	// SelectOption prompts for an option key. The run loop re-prompts
	// until the entered key exists in the question's options.
	SelectOption(item question.Question) (string, error)
	InvalidOption(item question.Question, entered string)
	ReadAnswer(item question.Question) (string, error)
	Judged(item question.Question, verdict Verdict)
	// ConfirmOverride asks whether an incorrect open answer should be
	// accepted anyway, e.g. a synonym the text comparison cannot see.
	ConfirmOverride(item question.Question) (bool, error)
	Overridden(item question.Question)
	Note(item question.Question)
	NothingToDo()
	Summary(result Result, band Band)
}

// Options configures one quiz run.
type Options struct {
	Shuffle bool
	Bands   []Band
}

// Run presents each question in sequence, judges answers, and returns
// the tally. An empty question list reports nothing-to-do and returns
// a zero result without prompting.
func Run(questions []question.Question, opts Options, shell Shell) (Result, error) {
	result := Result{AttemptID: uuid.NewString()}
	if len(questions) == 0 {
		shell.NothingToDo()
		return result, nil
	}

	items := questions
	if opts.Shuffle {
		items = Shuffled(questions)
	}

	shell.QuizStart(len(items))
	for i, item := range items {
		shell.QuestionStart(i+1, len(items), item)
		verdict, err := judgeOne(item, shell)
		if err != nil {
			return result, err
		}
		if verdict.Correct {
			result.Correct++
		}
		result.Total++
		if item.Note != "" {
			shell.Note(item)
		}
	}
	shell.Summary(result, Grade(result.Percentage(), opts.Bands))
	return result, nil
}

// Shuffled returns a copy of questions in uniform random order. The
// input is left untouched.
func Shuffled(questions []question.Question) []question.Question {
	items := make([]question.Question, len(questions))
	copy(items, questions)
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	return items
}

// judgeOne collects and judges a single answer, including the strict
// option re-prompt and the open-answer override.
func judgeOne(item question.Question, shell Shell) (Verdict, error) {
	if item.IsOpen() {
		answer, err := shell.ReadAnswer(item)
		if err != nil {
			return Verdict{}, err
		}
		verdict := Verdict{
			Given:   strings.TrimSpace(answer),
			Correct: JudgeOpen(item, answer),
		}
		shell.Judged(item, verdict)
		if !verdict.Correct {
			accept, err := shell.ConfirmOverride(item)
			if err != nil {
				return Verdict{}, err
			}
			if accept {
				verdict.Correct = true
				verdict.Overridden = true
				shell.Overridden(item)
			}
		}
		return verdict, nil
	}

	for {
		selected, err := shell.SelectOption(item)
		if err != nil {
			return Verdict{}, err
		}
		key := strings.ToUpper(strings.TrimSpace(selected))
		if _, ok := item.Options[key]; !ok {
			shell.InvalidOption(item, selected)
			continue
		}
		verdict := Verdict{Given: key, Correct: JudgeChoice(item, key)}
		shell.Judged(item, verdict)
		return verdict, nil
	}
}
