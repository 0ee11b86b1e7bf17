package quiztui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"learnquiz/internal/quiz"
)

// renderMenu renders the start screen with the loaded-corpus line.
func renderMenu(session *quiz.Session, notice string, noColor bool) string {
	stats := session.Stats()
	lines := []string{
		stylize("LEARNQUIZ", noColor, lipgloss.Color("33")),
		"",
		fmt.Sprintf("Loaded %d questions (%d multiple choice, %d open)", stats.Total, stats.Choice, stats.Open),
	}
	for _, warning := range session.Warnings() {
		lines = append(lines, stylize("Warning: "+warning.String(), noColor, lipgloss.Color("203")))
	}
	lines = append(lines,
		"",
		"  1  Start quiz (all questions)",
		"  2  Start quiz (multiple choice only)",
		"  3  Start quiz (open questions only)",
		"  4  Question statistics",
		"  r  Reload questions",
		"  q  Quit",
	)
	if notice != "" {
		lines = append(lines, "", stylize(notice, noColor, lipgloss.Color("242")))
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderAsking renders the question prompt for either question form.
func renderAsking(run *runState, inputView, notice string, noColor bool) string {
	item := run.current()
	lines := []string{
		stylize(fmt.Sprintf("Question %d/%d", run.index+1, len(run.items)), noColor, lipgloss.Color("33")),
		"",
		item.Text,
		"",
	}
	if item.IsOpen() {
		lines = append(lines, inputView, "", footerHint("enter submit | ctrl+c quit", noColor))
	} else {
		for _, key := range item.OptionKeys() {
			lines = append(lines, fmt.Sprintf("  %s) %s", key, item.Options[key]))
		}
		lines = append(lines, "", footerHint("press the option letter | ctrl+c quit", noColor))
	}
	if notice != "" {
		lines = append(lines, stylize(notice, noColor, lipgloss.Color("203")))
	}
	return strings.Join(lines, "\n") + "\n"
}

// renderJudged renders feedback, the note, and the override action.
func renderJudged(run *runState, noColor bool) string {
	item := run.current()
	lines := []string{
		stylize(fmt.Sprintf("Question %d/%d", run.index+1, len(run.items)), noColor, lipgloss.Color("33")),
		"",
		item.Text,
		"",
	}
	if run.verdict.Correct {
		verdictLine := "Correct!"
		if run.verdict.Overridden {
			verdictLine = "Marked as correct."
		}
		lines = append(lines, stylize(verdictLine, noColor, lipgloss.Color("42")))
	} else {
		lines = append(lines, stylize(fmt.Sprintf("Wrong. The correct answer is: %s", item.CorrectAnswer), noColor, lipgloss.Color("203")))
		if text, ok := item.Options[strings.ToUpper(item.CorrectAnswer)]; ok {
			lines = append(lines, "   -> "+text)
		}
	}
	if item.Note != "" {
		lines = append(lines, "", "Note: "+item.Note)
	}
	hints := []string{"enter next"}
	if run.overridable {
		hints = append([]string{"o mark as correct"}, hints...)
	}
	if run.last() {
		hints = []string{"enter results"}
		if run.overridable {
			hints = append([]string{"o mark as correct"}, hints...)
		}
	}
	hints = append(hints, "esc menu")
	lines = append(lines, "", footerHint(strings.Join(hints, " | "), noColor))
	return strings.Join(lines, "\n") + "\n"
}

// renderResults renders the score summary and grade band.
func renderResults(result quiz.Result, band quiz.Band, noColor bool) string {
	lines := []string{
		stylize("RESULTS", noColor, lipgloss.Color("33")),
		"",
		fmt.Sprintf("Correct answers: %d/%d (%.1f%%)", result.Correct, result.Total, result.Percentage()),
	}
	if band.Message != "" {
		lines = append(lines, band.Message)
	}
	if result.AttemptID != "" {
		lines = append(lines, "", footerHint("Attempt: "+result.AttemptID, noColor))
	}
	lines = append(lines, "", footerHint("enter menu | q quit", noColor))
	return strings.Join(lines, "\n") + "\n"
}

// renderStats renders the per-source-file statistics table.
func renderStats(statsTable table.Model, noColor bool) string {
	lines := []string{
		stylize("QUESTION STATISTICS", noColor, lipgloss.Color("33")),
		"",
		statsTable.View(),
		"",
		footerHint("esc menu", noColor),
	}
	return strings.Join(lines, "\n") + "\n"
}

func footerHint(text string, noColor bool) string {
	return stylize(text, noColor, lipgloss.Color("240"))
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
