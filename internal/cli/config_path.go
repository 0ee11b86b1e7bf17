package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"learnquiz/internal/config"
	"learnquiz/internal/spec"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads the config named by the flag, or the nearest
// discovered one, or the built-in defaults when none exists. The
// corpus directory flag, when set, overrides the configured one.
func loadConfig(configPath, dirOverride string) (spec.Config, error) {
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		if strings.TrimSpace(configPath) != "" {
			return spec.Config{}, err
		}
		// No config anywhere: run on defaults.
		cfg := config.Default()
		applyDirOverride(&cfg, dirOverride, "")
		return cfg, nil
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return spec.Config{}, err
	}
	applyDirOverride(&cfg, dirOverride, resolved)
	return cfg, nil
}

// applyDirOverride resolves the corpus dir relative to the config
// file's root so commands work from any working directory.
func applyDirOverride(cfg *spec.Config, dirOverride, configPath string) {
	if dirOverride != "" {
		cfg.Corpus.Dir = dirOverride
		return
	}
	if configPath != "" && !filepath.IsAbs(cfg.Corpus.Dir) {
		cfg.Corpus.Dir = filepath.Join(config.RootFromConfigPath(configPath), cfg.Corpus.Dir)
	}
}
