package quiz

import "learnquiz/internal/question"

// Session owns the corpus loaded for a presentation shell. Shells hold
// one session and reload it explicitly; there is no shared global
// question state.
type Session struct {
	dir    string
	labels question.Labels
	corpus question.LoadResult
}

// NewSession loads the corpus under dir.
func NewSession(dir string, labels question.Labels) *Session {
	session := &Session{dir: dir, labels: labels}
	session.Reload()
	return session
}

// Reload re-reads the corpus from disk, picking up added or changed
// files.
func (s *Session) Reload() {
	s.corpus = question.LoadAll(s.dir, s.labels)
}

// Dir returns the corpus directory.
func (s *Session) Dir() string {
	return s.dir
}

// Questions returns the loaded questions.
func (s *Session) Questions() []question.Question {
	return s.corpus.Questions
}

// Warnings returns the load warnings from the last (re)load.
func (s *Session) Warnings() []question.Warning {
	return s.corpus.Warnings
}

// Subset returns the questions belonging to a subset.
func (s *Session) Subset(subset question.Subset) []question.Question {
	return question.Filter(s.corpus.Questions, subset)
}

// Stats aggregates statistics over the loaded corpus.
func (s *Session) Stats() question.Stats {
	return question.Collect(s.corpus.Questions)
}
