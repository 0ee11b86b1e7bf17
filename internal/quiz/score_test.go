package quiz

import (
	"testing"

	"learnquiz/internal/spec"
)

func defaultBands() []Band {
	return []Band{
		{MinPercent: 90, Message: "excellent"},
		{MinPercent: 70, Message: "good"},
		{MinPercent: 50, Message: "practice"},
		{MinPercent: 0, Message: "again"},
	}
}

// TestPercentage verifies the tally percentage, including the empty
// run.
func TestPercentage(t *testing.T) {
	if got := (Result{}).Percentage(); got != 0 {
		t.Fatalf("expected 0%% for an empty run, got %v", got)
	}
	if got := (Result{Correct: 2, Total: 3}).Percentage(); got < 66.6 || got > 66.7 {
		t.Fatalf("expected ~66.7%%, got %v", got)
	}
	if got := (Result{Correct: 3, Total: 3}).Percentage(); got != 100 {
		t.Fatalf("expected 100%%, got %v", got)
	}
}

// TestGradeBoundaries verifies each threshold maps inclusively.
func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		message    string
	}{
		{100, "excellent"},
		{90, "excellent"},
		{89.9, "good"},
		{70, "good"},
		{69.9, "practice"},
		{50, "practice"},
		{49.9, "again"},
		{0, "again"},
	}
	for _, tc := range cases {
		band := Grade(tc.percentage, defaultBands())
		if band.Message != tc.message {
			t.Fatalf("percentage %v: expected %q, got %q", tc.percentage, tc.message, band.Message)
		}
	}
}

// TestGradeMonotonic verifies a higher percentage never grades into a
// lower band.
func TestGradeMonotonic(t *testing.T) {
	bands := defaultBands()
	previous := -1
	for percentage := 0; percentage <= 100; percentage++ {
		band := Grade(float64(percentage), bands)
		if band.MinPercent < previous {
			t.Fatalf("band threshold dropped from %d to %d at %d%%", previous, band.MinPercent, percentage)
		}
		previous = band.MinPercent
	}
}

// TestBandsFromConfig verifies config bands convert in order.
func TestBandsFromConfig(t *testing.T) {
	bands := BandsFromConfig([]spec.GradeBand{
		{MinPercent: 80, Message: "top"},
		{MinPercent: 0, Message: "rest"},
	})
	if len(bands) != 2 || bands[0].MinPercent != 80 || bands[1].Message != "rest" {
		t.Fatalf("unexpected bands: %v", bands)
	}
}

// TestJudgeCaseInsensitive verifies both judging rules ignore case and
// surrounding whitespace.
func TestJudgeCaseInsensitive(t *testing.T) {
	choice := choiceQuestion()
	if !JudgeChoice(choice, "b") {
		t.Fatalf("expected lowercase key to match")
	}
	if JudgeChoice(choice, "A") {
		t.Fatalf("expected wrong key to be incorrect")
	}
	open := openQuestion()
	if !JudgeOpen(open, "  paris ") {
		t.Fatalf("expected trimmed case-insensitive match")
	}
	if JudgeOpen(open, "London") {
		t.Fatalf("expected wrong text to be incorrect")
	}
}
