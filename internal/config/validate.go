package config

import (
	"fmt"
	"strings"

	"learnquiz/internal/spec"
)

// Issue captures a validation problem in a config file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("config validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// Validate checks a normalized config.
func Validate(cfg *spec.Config) error {
	collector := &issueCollector{}
	if cfg.Version == 0 {
		collector.add("version", "is required")
	} else if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.TrimSpace(cfg.Corpus.Dir) == "" {
		collector.add("corpus.dir", "is required")
	}

	switch cfg.Quiz.UI {
	case "auto", "live", "plain":
	default:
		collector.add("quiz.ui", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", cfg.Quiz.UI))
	}

	validateLabelSet(collector, "labels.question", cfg.Labels.Question)
	validateLabelSet(collector, "labels.answer", cfg.Labels.Answer)
	validateLabelSet(collector, "labels.note", cfg.Labels.Note)
	validateGrades(collector, cfg.Grades)

	return collector.result()
}

func validateLabelSet(collector *issueCollector, field string, labels []string) {
	for i, label := range labels {
		if strings.TrimSpace(label) == "" {
			collector.add(fmt.Sprintf("%s[%d]", field, i), "is required")
		}
	}
}

// validateGrades enforces strictly descending thresholds with a
// terminal zero band, so every percentage in 0-100 maps to a message.
func validateGrades(collector *issueCollector, grades []spec.GradeBand) {
	if len(grades) == 0 {
		collector.add("grades", "must include at least one band")
		return
	}
	previous := 101
	for i, band := range grades {
		prefix := fmt.Sprintf("grades[%d]", i)
		if band.MinPercent < 0 || band.MinPercent > 100 {
			collector.add(prefix+".min_percent", fmt.Sprintf("must be between 0 and 100, got %d", band.MinPercent))
		}
		if band.MinPercent >= previous {
			collector.add(prefix+".min_percent", fmt.Sprintf("must be below the previous band's %d", previous))
		}
		if strings.TrimSpace(band.Message) == "" {
			collector.add(prefix+".message", "is required")
		}
		previous = band.MinPercent
	}
	if grades[len(grades)-1].MinPercent != 0 {
		collector.add("grades", "last band must have min_percent 0")
	}
}
