package question

import "sort"

// Question is one quiz item parsed from a corpus file. Questions are
// built by ParseBlock and never mutated afterwards.
type Question struct {
	Text          string
	Options       map[string]string
	CorrectAnswer string
	SourceFile    string
	Note          string
}

// IsOpen reports whether the question is judged by free text rather
// than by option key. Derived from Options so the two can never
// disagree.
func (q Question) IsOpen() bool {
	return len(q.Options) == 0
}

// OptionKeys returns the option letters in alphabetical order.
func (q Question) OptionKeys() []string {
	keys := make([]string, 0, len(q.Options))
	for key := range q.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Labels lists the accepted spellings for each recognized block label.
type Labels struct {
	Question []string
	Answer   []string
	Note     []string
}

// DefaultLabels returns the built-in label spellings: the original
// Czech pairs, with and without diacritics, plus English equivalents.
func DefaultLabels() Labels {
	return Labels{
		Question: []string{"Otázka", "Otazka", "Question"},
		Answer:   []string{"Odpověď", "Odpoved", "Answer"},
		Note:     []string{"Poznámka", "Poznamka", "Note"},
	}
}
