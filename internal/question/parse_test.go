package question

import "testing"

// TestParseBlockChoiceQuestion verifies a full multiple choice block.
func TestParseBlockChoiceQuestion(t *testing.T) {
	block := "Otázka: 2+2?\nA) 3\nB) 4\nAnswer: B"
	parsed, ok := ParseBlock(block, "math.single.txt", DefaultLabels())
	if !ok {
		t.Fatalf("expected block to parse")
	}
	if parsed.Text != "2+2?" {
		t.Fatalf("expected text 2+2?, got %q", parsed.Text)
	}
	if len(parsed.Options) != 2 || parsed.Options["A"] != "3" || parsed.Options["B"] != "4" {
		t.Fatalf("unexpected options: %v", parsed.Options)
	}
	if parsed.CorrectAnswer != "B" {
		t.Fatalf("expected correct answer B, got %q", parsed.CorrectAnswer)
	}
	if parsed.IsOpen() {
		t.Fatalf("expected a choice question")
	}
	if parsed.SourceFile != "math.single.txt" {
		t.Fatalf("expected source file to be recorded, got %q", parsed.SourceFile)
	}
}

// TestParseBlockOpenQuestion verifies a block without options is open.
func TestParseBlockOpenQuestion(t *testing.T) {
	block := "Otázka: Capital of France?\nAnswer: Paris"
	parsed, ok := ParseBlock(block, "", DefaultLabels())
	if !ok {
		t.Fatalf("expected block to parse")
	}
	if !parsed.IsOpen() {
		t.Fatalf("expected an open question")
	}
	if len(parsed.Options) != 0 {
		t.Fatalf("expected no options, got %v", parsed.Options)
	}
	if parsed.CorrectAnswer != "Paris" {
		t.Fatalf("expected correct answer Paris, got %q", parsed.CorrectAnswer)
	}
}

// TestParseBlockInvalidBlocks verifies blocks missing a prompt or an
// answer are dropped.
func TestParseBlockInvalidBlocks(t *testing.T) {
	blocks := []string{
		"",
		"   \n\t\n",
		"Otázka: no answer here",
		"Odpověď: no question here",
		"A) stray option\nB) another",
	}
	for _, block := range blocks {
		if _, ok := ParseBlock(block, "", DefaultLabels()); ok {
			t.Fatalf("expected block %q to be dropped", block)
		}
	}
}

// TestParseBlockLabelVariants verifies diacritic and plain spellings
// match case-insensitively.
func TestParseBlockLabelVariants(t *testing.T) {
	variants := []string{
		"Otázka: Q?\nOdpověď: yes",
		"otazka: Q?\nodpoved: yes",
		"OTÁZKA: Q?\nODPOVED: yes",
		"Question: Q?\nAnswer: yes",
	}
	for _, block := range variants {
		parsed, ok := ParseBlock(block, "", DefaultLabels())
		if !ok {
			t.Fatalf("expected block %q to parse", block)
		}
		if parsed.Text != "Q?" || parsed.CorrectAnswer != "yes" {
			t.Fatalf("unexpected parse of %q: %+v", block, parsed)
		}
	}
}

// TestParseBlockOptionForms verifies letter case and all three
// separators.
func TestParseBlockOptionForms(t *testing.T) {
	block := "Otázka: Q?\nb) lower\nC. dot\nd: colon\nAnswer: b"
	parsed, ok := ParseBlock(block, "", DefaultLabels())
	if !ok {
		t.Fatalf("expected block to parse")
	}
	if parsed.Options["B"] != "lower" {
		t.Fatalf("expected lowercase letter to normalize to B, got %v", parsed.Options)
	}
	if parsed.Options["C"] != "dot" || parsed.Options["D"] != "colon" {
		t.Fatalf("unexpected options: %v", parsed.Options)
	}
}

// TestParseBlockDuplicateOptionLastWins verifies repeated letters
// overwrite silently.
func TestParseBlockDuplicateOptionLastWins(t *testing.T) {
	block := "Otázka: Q?\nA) first\nA) second\nAnswer: A"
	parsed, ok := ParseBlock(block, "", DefaultLabels())
	if !ok {
		t.Fatalf("expected block to parse")
	}
	if parsed.Options["A"] != "second" {
		t.Fatalf("expected last write to win, got %q", parsed.Options["A"])
	}
}

// TestParseBlockIgnoresUnrecognizedLines verifies out-of-alphabet
// letters and free text fall through silently.
func TestParseBlockIgnoresUnrecognizedLines(t *testing.T) {
	block := "some preamble\nOtázka: Q?\nE) not an option\nZ. also not\nAnswer: yes\ntrailing noise"
	parsed, ok := ParseBlock(block, "", DefaultLabels())
	if !ok {
		t.Fatalf("expected block to parse")
	}
	if len(parsed.Options) != 0 {
		t.Fatalf("expected no options, got %v", parsed.Options)
	}
}

// TestParseBlockNote verifies the note label in both spellings.
func TestParseBlockNote(t *testing.T) {
	parsed, ok := ParseBlock("Otázka: Q?\nAnswer: yes\nPoznámka: remember this", "", DefaultLabels())
	if !ok {
		t.Fatalf("expected block to parse")
	}
	if parsed.Note != "remember this" {
		t.Fatalf("expected note, got %q", parsed.Note)
	}
	parsed, ok = ParseBlock("Otázka: Q?\nAnswer: yes\npoznamka: plain", "", DefaultLabels())
	if !ok {
		t.Fatalf("expected block to parse")
	}
	if parsed.Note != "plain" {
		t.Fatalf("expected plain-spelling note, got %q", parsed.Note)
	}
}

// TestParseBlockCustomLabels verifies extra label aliases are honored.
func TestParseBlockCustomLabels(t *testing.T) {
	labels := DefaultLabels()
	labels.Question = append(labels.Question, "Frage")
	labels.Answer = append(labels.Answer, "Antwort")
	parsed, ok := ParseBlock("Frage: Hauptstadt?\nAntwort: Berlin", "", labels)
	if !ok {
		t.Fatalf("expected block to parse")
	}
	if parsed.Text != "Hauptstadt?" || parsed.CorrectAnswer != "Berlin" {
		t.Fatalf("unexpected parse: %+v", parsed)
	}
}

// TestParseBlockAliasWithWidthChangingCase verifies aliases whose
// lowercase form has a different byte length still slice the remainder
// at the right offset. U+0130 lowercases to two code points.
func TestParseBlockAliasWithWidthChangingCase(t *testing.T) {
	labels := DefaultLabels()
	labels.Question = append(labels.Question, "İtem")
	parsed, ok := ParseBlock("İtem:What?\nAnswer: x", "", labels)
	if !ok {
		t.Fatalf("expected block to parse")
	}
	if parsed.Text != "What?" {
		t.Fatalf("expected the full remainder, got %q", parsed.Text)
	}
}

// TestParseBlockTrimsValues verifies label remainders are trimmed.
func TestParseBlockTrimsValues(t *testing.T) {
	parsed, ok := ParseBlock("Otázka:    spaced?   \nAnswer:   yes  ", "", DefaultLabels())
	if !ok {
		t.Fatalf("expected block to parse")
	}
	if parsed.Text != "spaced?" || parsed.CorrectAnswer != "yes" {
		t.Fatalf("expected trimmed values, got %+v", parsed)
	}
}
