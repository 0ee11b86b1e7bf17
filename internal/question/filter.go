package question

import "fmt"

// Subset selects which kinds of questions take part in a quiz.
type Subset string

const (
	SubsetAll    Subset = "all"
	SubsetChoice Subset = "choice"
	SubsetOpen   Subset = "open"
)

// ParseSubset parses a subset name from the CLI or config.
func ParseSubset(value string) (Subset, error) {
	switch Subset(value) {
	case SubsetAll, SubsetChoice, SubsetOpen:
		return Subset(value), nil
	}
	return "", fmt.Errorf("invalid subset %q (expected all|choice|open)", value)
}

// Filter returns the questions belonging to a subset, keeping order.
func Filter(questions []Question, subset Subset) []Question {
	if subset == SubsetAll {
		return questions
	}
	filtered := make([]Question, 0, len(questions))
	for _, item := range questions {
		switch subset {
		case SubsetChoice:
			if !item.IsOpen() {
				filtered = append(filtered, item)
			}
		case SubsetOpen:
			if item.IsOpen() {
				filtered = append(filtered, item)
			}
		}
	}
	return filtered
}
