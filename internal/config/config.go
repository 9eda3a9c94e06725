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
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Speakers names the two voices and the cold-open convention. Names are
// matched case- and accent-insensitively when normalizing raw labels.
type Speakers struct {
	HostName              string  `toml:"host_name"`
	GuestName             string  `toml:"guest_name"`
	HostColor             string  `toml:"host_color"`
	GuestColor            string  `toml:"guest_color"`
	UseColors             bool    `toml:"use_colors"`
	NarratorWindowSeconds float64 `toml:"narrator_window_seconds"`
}

// Timing contains the synthetic-timing constants applied when utterances
// arrive without measured start/end values.
type Timing struct {
	CharsPerSecond float64 `toml:"chars_per_second"`
	MinDuration    float64 `toml:"min_duration"`
	PauseStrong    float64 `toml:"pause_strong"`
	PauseSoft      float64 `toml:"pause_soft"`
	QuestionBoost  float64 `toml:"question_boost"`
}

// Layout contains the character and line budgets for displayed captions.
type Layout struct {
	MaxSegmentChars int     `toml:"max_segment_chars"`
	MaxLineChars    int     `toml:"max_line_chars"`
	MaxLines        int     `toml:"max_lines"`
	MinSplitChars   int     `toml:"min_split_chars"`
	MinPartSeconds  float64 `toml:"min_part_seconds"`
}

// Style contains the visual presentation shared by all styled-subtitle
// styles. Per-speaker colours live in Speakers.
type Style struct {
	Font     string  `toml:"font"`
	FontSize int     `toml:"font_size"`
	MarginV  int     `toml:"margin_v"`
	MarginLR int     `toml:"margin_lr"`
	Outline  float64 `toml:"outline"`
	Shadow   float64 `toml:"shadow"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for subcast.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Speakers Speakers `toml:"speakers"`
	Timing   Timing   `toml:"timing"`
	Layout   Layout   `toml:"layout"`
	Style    Style    `toml:"style"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/subcast/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The bool reports
// whether a file existed at the resolved path; defaults apply otherwise.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
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

	projectPath, err := filepath.Abs("subcast.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return err
	}
	c.Speakers.HostName = strings.TrimSpace(c.Speakers.HostName)
	c.Speakers.GuestName = strings.TrimSpace(c.Speakers.GuestName)
	c.Speakers.HostColor = strings.TrimSpace(c.Speakers.HostColor)
	c.Speakers.GuestColor = strings.TrimSpace(c.Speakers.GuestColor)
	c.Style.Font = strings.TrimSpace(c.Style.Font)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

// EnsureDirectories creates the output and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// FFprobeBinary returns the ffprobe executable name used for audio duration
// probing.
func (c *Config) FFprobeBinary() string {
	return "ffprobe"
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
