package question

import "strings"

// optionSeparators are the characters accepted after an option letter.
const optionSeparators = ").:"

type lineKind int

const (
	lineIgnored lineKind = iota
	linePrompt
	lineOption
	lineAnswer
	lineNote
)

// classified is one block line tagged with its role.
type classified struct {
	kind   lineKind
	letter string
	value  string
}

// classifyLine tags a trimmed, non-blank line. Checks are ordered:
// prompt label, option letter, answer label, note label; anything else
// is ignored. An "Answer:" line cannot collide with the option rule
// because its second character is not an option separator.
func classifyLine(line string, labels Labels) classified {
	if value, ok := matchLabel(line, labels.Question); ok {
		return classified{kind: linePrompt, value: value}
	}
	if letter, value, ok := matchOption(line); ok {
		return classified{kind: lineOption, letter: letter, value: value}
	}
	if value, ok := matchLabel(line, labels.Answer); ok {
		return classified{kind: lineAnswer, value: value}
	}
	if value, ok := matchLabel(line, labels.Note); ok {
		return classified{kind: lineNote, value: value}
	}
	return classified{kind: lineIgnored}
}

// matchLabel matches a case-insensitive "<alias>:" prefix and returns
// the trimmed remainder. The prefix is folded in place rather than via
// ToLower, whose case mappings can change byte length and mis-slice
// the remainder.
func matchLabel(line string, aliases []string) (string, bool) {
	for _, alias := range aliases {
		prefix := alias + ":"
		if len(line) < len(prefix) {
			continue
		}
		if strings.EqualFold(line[:len(prefix)], prefix) {
			return strings.TrimSpace(line[len(prefix):]), true
		}
	}
	return "", false
}

// matchOption matches an option line: a letter A-D in either case
// followed by one of ")", "." or ":". Letters outside A-D are not
// options and fall through to ignored.
func matchOption(line string) (string, string, bool) {
	if len(line) < 2 {
		return "", "", false
	}
	letter := line[0]
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'D' {
		return "", "", false
	}
	if !strings.ContainsRune(optionSeparators, rune(line[1])) {
		return "", "", false
	}
	return string(letter), strings.TrimSpace(line[2:]), true
}

// ParseBlock parses one block of text into a Question. ok is false
// when the block has no prompt or no answer; such blocks are dropped
// by the loader without an error.
func ParseBlock(block, sourceFile string, labels Labels) (Question, bool) {
	built := Question{SourceFile: sourceFile}
	for _, raw := range strings.Split(block, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		tagged := classifyLine(line, labels)
		switch tagged.kind {
		case linePrompt:
			built.Text = tagged.value
		case lineOption:
			if built.Options == nil {
				built.Options = map[string]string{}
			}
			// Repeated letters overwrite: last write wins.
			built.Options[tagged.letter] = tagged.value
		case lineAnswer:
			built.CorrectAnswer = tagged.value
		case lineNote:
			built.Note = tagged.value
		}
	}
	if built.Text == "" || built.CorrectAnswer == "" {
		return Question{}, false
	}
	return built, true
}
