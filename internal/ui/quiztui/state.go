package quiztui

import (
	"learnquiz/internal/question"
	"learnquiz/internal/quiz"
)

// screen identifies the visible screen of the TUI.
type screen int

const (
	screenMenu screen = iota
	screenAsking
	screenJudged
	screenResults
	screenStats
)

// phase within a quiz run: a question is either waiting for an answer
// or showing its judgment. The explicit enum replaces the original
// GUI's answered flag.
type runState struct {
	attemptID   string
	items       []question.Question
	index       int
	correct     int
	verdict     quiz.Verdict
	overridable bool
	band        quiz.Band
}

// current returns the question being presented.
func (r *runState) current() question.Question {
	return r.items[r.index]
}

// last reports whether the current question is the final one.
func (r *runState) last() bool {
	return r.index == len(r.items)-1
}

// result builds the tally for the finished run.
func (r *runState) result() quiz.Result {
	return quiz.Result{AttemptID: r.attemptID, Correct: r.correct, Total: len(r.items)}
}
