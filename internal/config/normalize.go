package config

import (
	"learnquiz/internal/question"
	"learnquiz/internal/spec"
)

// Default corpus and UI settings applied when the config omits them.
const (
	DefaultCorpusDir = "questions"
	DefaultUIMode    = "auto"
)

// defaultGrades mirror the original 90/70/50 split.
func defaultGrades() []spec.GradeBand {
	return []spec.GradeBand{
		{MinPercent: 90, Message: "Excellent!"},
		{MinPercent: 70, Message: "Good work!"},
		{MinPercent: 50, Message: "Keep practicing."},
		{MinPercent: 0, Message: "Don't give up, next time will be better."},
	}
}

// Normalize fills in defaults for omitted config sections.
func Normalize(cfg *spec.Config) {
	if cfg.Corpus.Dir == "" {
		cfg.Corpus.Dir = DefaultCorpusDir
	}
	if cfg.Quiz.Shuffle == nil {
		shuffle := true
		cfg.Quiz.Shuffle = &shuffle
	}
	if cfg.Quiz.UI == "" {
		cfg.Quiz.UI = DefaultUIMode
	}
	defaults := question.DefaultLabels()
	if len(cfg.Labels.Question) == 0 {
		cfg.Labels.Question = defaults.Question
	}
	if len(cfg.Labels.Answer) == 0 {
		cfg.Labels.Answer = defaults.Answer
	}
	if len(cfg.Labels.Note) == 0 {
		cfg.Labels.Note = defaults.Note
	}
	if len(cfg.Grades) == 0 {
		cfg.Grades = defaultGrades()
	}
}

// Labels converts the config label aliases for the parser.
func Labels(cfg spec.Config) question.Labels {
	return question.Labels{
		Question: cfg.Labels.Question,
		Answer:   cfg.Labels.Answer,
		Note:     cfg.Labels.Note,
	}
}
