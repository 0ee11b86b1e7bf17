package quiz

import "learnquiz/internal/question"

// Verdict is the judged outcome of one question.
type Verdict struct {
	Given      string
	Correct    bool
	Overridden bool
}

// JudgeChoice judges a selected option key against the correct answer,
// case-insensitively. The run loop guarantees the key exists in the
// question's options before judging.
func JudgeChoice(item question.Question, selected string) bool {
	return question.NormalizeAnswerText(selected) == question.NormalizeAnswerText(item.CorrectAnswer)
}

// JudgeOpen judges free text against the correct answer: surrounding
// whitespace trimmed, case-insensitive, no fuzzy matching. Synonyms
// are handled by the manual override in the run loop, not here.
func JudgeOpen(item question.Question, answer string) bool {
	return question.NormalizeAnswerText(answer) == question.NormalizeAnswerText(item.CorrectAnswer)
}
