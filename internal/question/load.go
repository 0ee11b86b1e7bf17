package question

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File naming conventions and the multi-file block separator.
const (
	singlePattern  = "*.single.txt"
	multiPattern   = "*.multi.txt"
	blockSeparator = "---"
)

// Warning reports a non-fatal problem encountered during loading.
type Warning struct {
	Path    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Message)
}

// LoadResult carries the loaded corpus plus any warnings. A warning
// never aborts the load; the worst outcome is fewer questions.
type LoadResult struct {
	Questions []Question
	Warnings  []Warning
}

// LoadAll loads every question under dir. Single files contribute one
// block each; multi files are split on the separator token and each
// segment is parsed independently, in file order.
func LoadAll(dir string, labels Labels) LoadResult {
	var result LoadResult
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			result.Warnings = append(result.Warnings, Warning{Path: dir, Message: "questions directory does not exist"})
		} else {
			result.Warnings = append(result.Warnings, Warning{Path: dir, Message: err.Error()})
		}
		return result
	}

	for _, path := range globQuietly(dir, singlePattern) {
		data, err := os.ReadFile(path)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Path: path, Message: err.Error()})
			continue
		}
		if parsed, ok := ParseBlock(string(data), path, labels); ok {
			result.Questions = append(result.Questions, parsed)
		}
	}

	for _, path := range globQuietly(dir, multiPattern) {
		data, err := os.ReadFile(path)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{Path: path, Message: err.Error()})
			continue
		}
		for _, block := range strings.Split(string(data), blockSeparator) {
			if parsed, ok := ParseBlock(block, path, labels); ok {
				result.Questions = append(result.Questions, parsed)
			}
		}
	}

	return result
}

// globQuietly matches a fixed pattern under dir. The patterns above
// are constant and valid, so the only possible error is ErrBadPattern
// and it cannot occur.
func globQuietly(dir, pattern string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil
	}
	return matches
}
