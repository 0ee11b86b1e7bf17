package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigFile = `version: 1

corpus:
  dir: questions

quiz:
  shuffle: true
  ui: auto

# Extra label spellings may be added per language, for example:
# labels:
#   question: ["Otázka", "Otazka", "Question", "Frage"]

grades:
  - min_percent: 90
    message: "Excellent!"
  - min_percent: 70
    message: "Good work!"
  - min_percent: 50
    message: "Keep practicing."
  - min_percent: 0
    message: "Don't give up, next time will be better."
`

const sampleSingleFile = `Otázka: What is the capital of France?
Odpověď: Paris
Poznámka: Any answer that differs only in case is accepted.
`

const sampleMultiFile = `Otázka: 2+2?
A) 3
B) 4
C) 5
D) 22
Odpověď: B
---
Otázka: Which planet is known as the Red Planet?
A) Venus
B) Jupiter
C) Mars
Odpověď: C
Poznámka: Iron oxide gives the surface its color.
---
Otázka: Who wrote "1984"?
Odpověď: George Orwell
`

// Scaffold writes the default config file and a sample corpus.
func Scaffold(configPath, corpusDir string) error {
	if configPath == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(configPath); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", configPath)
		}
		return fmt.Errorf("config file already exists at %q", configPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.MkdirAll(corpusDir, 0o755); err != nil {
		return fmt.Errorf("create corpus dir: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigFile), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	samples := map[string]string{
		"sample.single.txt": sampleSingleFile,
		"sample.multi.txt":  sampleMultiFile,
	}
	for name, content := range samples {
		path := filepath.Join(corpusDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("stat sample file: %w", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write sample file: %w", err)
		}
	}
	return nil
}
