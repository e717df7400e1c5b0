// Package config loads and validates the videofix TOML configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"videofix/internal/util"
	"videofix/internal/validation"
)

//go:embed sample_config.toml
var sampleConfig string

// Config is the root configuration document.
type Config struct {
	// DefaultTarget names the target used when none is requested.
	DefaultTarget string `toml:"default_target"`
	// LogDir is where run log files are written.
	LogDir string `toml:"log_dir"`

	History History `toml:"history"`
	Targets []Target `toml:"targets"`
}

// History configures the scan-history store.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// DefaultFormat is the remediation target for non-compliant dimensions.
type DefaultFormat struct {
	Video  string `toml:"video"`
	Audio  string `toml:"audio"`
	PixFmt string `toml:"pix_fmt"`
}

// RuleDoc is the TOML form of one allow/reject rule. Exactly one of the two
// lists may be set; setting neither disables checking for the dimension.
type RuleDoc struct {
	Allow  *[]string `toml:"allow"`
	Reject *[]string `toml:"reject"`
}

// RuleSet is the TOML form of a format spec: one rule per dimension.
type RuleSet struct {
	Container RuleDoc `toml:"container"`
	Video     RuleDoc `toml:"video"`
	Audio     RuleDoc `toml:"audio"`
	PixFmt    RuleDoc `toml:"pix_fmt"`
}

// Target binds a named format spec to its remediation defaults.
type Target struct {
	Name       string        `toml:"name"`
	FormatSpec RuleSet       `toml:"format_spec"`
	Default    DefaultFormat `toml:"default"`

	// Spec is the compiled form of FormatSpec, filled in by normalize.
	Spec validation.FormatSpec `toml:"-"`
}

// Load reads the configuration from path, or from the default location when
// path is empty. The file must exist; Load returns the resolved path so
// callers can name it in errors.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", err
	}
	if !exists {
		return nil, "", fmt.Errorf(
			"could not load %s (run 'videofix config init' to create one)", resolvedPath)
	}

	file, err := os.Open(resolvedPath)
	if err != nil {
		return nil, "", fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, "", fmt.Errorf("parse config %s: %w", resolvedPath, err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolvedPath, nil
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	return util.ExpandHome("~/.config/videofix/config.toml")
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := util.ExpandHome(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// WriteSample writes the commented sample configuration to path.
// Fails if a file already exists there.
func WriteSample(path string) error {
	if util.FileExists(path) {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := util.EnsureDirectory(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0644)
}

// ResolveTarget returns the first target whose name matches exactly.
// Duplicate names silently prefer the earliest entry.
func ResolveTarget(name string, targets []Target) (*Target, error) {
	for i := range targets {
		if targets[i].Name == name {
			return &targets[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, name)
}

// compile turns a RuleDoc into its engine form.
func (d RuleDoc) compile(target, dimension string) (validation.Rule, error) {
	switch {
	case d.Allow != nil && d.Reject != nil:
		return validation.Rule{}, fmt.Errorf(
			"%w: target %q: %s rule sets both allow and reject", ErrRuleConflict, target, dimension)
	case d.Allow != nil:
		return validation.Allow(*d.Allow...), nil
	case d.Reject != nil:
		return validation.Reject(*d.Reject...), nil
	default:
		// Absent rule: nothing is rejected, the dimension always passes.
		return validation.Reject(), nil
	}
}

func (c *Config) normalize() error {
	logDir, err := util.ExpandHome(c.LogDir)
	if err != nil {
		return fmt.Errorf("expand log_dir: %w", err)
	}
	c.LogDir = logDir

	historyPath, err := util.ExpandHome(c.History.Path)
	if err != nil {
		return fmt.Errorf("expand history.path: %w", err)
	}
	c.History.Path = historyPath

	for i := range c.Targets {
		t := &c.Targets[i]
		name := strings.TrimSpace(t.Name)
		t.Name = name

		if t.Spec.Container, err = t.FormatSpec.Container.compile(name, "container"); err != nil {
			return err
		}
		if t.Spec.Video, err = t.FormatSpec.Video.compile(name, "video"); err != nil {
			return err
		}
		if t.Spec.Audio, err = t.FormatSpec.Audio.compile(name, "audio"); err != nil {
			return err
		}
		if t.Spec.PixFmt, err = t.FormatSpec.PixFmt.compile(name, "pix_fmt"); err != nil {
			return err
		}
	}
	return nil
}
