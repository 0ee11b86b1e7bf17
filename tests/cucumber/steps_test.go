package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"learnquiz/internal/cli"
)

// featureState holds scenario state for cucumber CLI tests.
type featureState struct {
	corpusDir string
	stdout    bytes.Buffer
	stderr    bytes.Buffer
	exitCode  int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a corpus file "([^"]+)" containing:$`, state.aCorpusFileContaining)
	ctx.Step(`^an empty corpus directory$`, state.anEmptyCorpusDirectory)
	ctx.Step(`^I run "([^"]+)" answering:$`, state.iRunCommandAnswering)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
}

// reset prepares a fresh corpus directory before each scenario.
func (s *featureState) reset() error {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	dir, err := os.MkdirTemp("", "learnquiz-feature-*")
	if err != nil {
		return fmt.Errorf("create corpus dir: %w", err)
	}
	s.corpusDir = dir
	return nil
}

// cleanup removes the scenario's corpus directory.
func (s *featureState) cleanup() {
	if s.corpusDir != "" {
		_ = os.RemoveAll(s.corpusDir)
	}
}

// aCorpusFileContaining writes a question file into the corpus.
func (s *featureState) aCorpusFileContaining(name string, content *godog.DocString) error {
	path := filepath.Join(s.corpusDir, name)
	if err := os.WriteFile(path, []byte(content.Content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write corpus file: %w", err)
	}
	return nil
}

// anEmptyCorpusDirectory leaves the scenario corpus empty.
func (s *featureState) anEmptyCorpusDirectory() error {
	return nil
}

// iRunCommand executes a CLI command against the scenario corpus.
func (s *featureState) iRunCommand(command string) error {
	return s.run(command, "")
}

// iRunCommandAnswering executes a CLI command feeding scripted stdin.
func (s *featureState) iRunCommandAnswering(command string, input *godog.DocString) error {
	return s.run(command, input.Content+"\n")
}

func (s *featureState) run(command, input string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "learnquiz" {
		args = args[1:]
	}
	args = append(args, "--dir", s.corpusDir)
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, strings.NewReader(input), &s.stdout, &s.stderr)
	return nil
}

// theExitCodeIs asserts the recorded exit code.
func (s *featureState) theExitCodeIs(expected int) error {
	if s.exitCode != expected {
		return fmt.Errorf("expected exit code %d, got %d (stderr: %s)", expected, s.exitCode, s.stderr.String())
	}
	return nil
}

// theExitCodeIsNonZero asserts a failing exit code.
func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected a non-zero exit code")
	}
	return nil
}

// theOutputContains asserts on combined stdout and stderr.
func (s *featureState) theOutputContains(expected string) error {
	combined := s.stdout.String() + s.stderr.String()
	if !strings.Contains(combined, expected) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", expected, combined)
	}
	return nil
}
