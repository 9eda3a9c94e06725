package config

import (
	"errors"
	"fmt"
	"regexp"

	"subcast/internal/textutil"
)

var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$|^#?[0-9a-fA-F]{3}$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSpeakers(); err != nil {
		return err
	}
	if err := c.validateTiming(); err != nil {
		return err
	}
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateStyle(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSpeakers() error {
	if c.Speakers.HostName == "" {
		return errors.New("speakers.host_name must be set")
	}
	if c.Speakers.GuestName == "" {
		return errors.New("speakers.guest_name must be set")
	}
	if textutil.NormalizeKey(c.Speakers.HostName) == textutil.NormalizeKey(c.Speakers.GuestName) {
		return fmt.Errorf("speakers.host_name and speakers.guest_name must differ (both normalize to %q)",
			textutil.NormalizeKey(c.Speakers.HostName))
	}
	for key, value := range map[string]string{
		"speakers.host_color":  c.Speakers.HostColor,
		"speakers.guest_color": c.Speakers.GuestColor,
	} {
		if value != "" && !hexColorPattern.MatchString(value) {
			return fmt.Errorf("%s must be a hex colour like #2EA8E6, got %q", key, value)
		}
	}
	if c.Speakers.NarratorWindowSeconds < 0 {
		return errors.New("speakers.narrator_window_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateTiming() error {
	if c.Timing.CharsPerSecond <= 0 {
		return errors.New("timing.chars_per_second must be positive")
	}
	if c.Timing.MinDuration <= 0 {
		return errors.New("timing.min_duration must be positive")
	}
	if c.Timing.PauseStrong < 0 || c.Timing.PauseSoft < 0 || c.Timing.QuestionBoost < 0 {
		return errors.New("timing pause values must not be negative")
	}
	return nil
}

func (c *Config) validateLayout() error {
	if c.Layout.MaxLineChars <= 0 {
		return errors.New("layout.max_line_chars must be positive")
	}
	if c.Layout.MaxLines <= 0 {
		return errors.New("layout.max_lines must be positive")
	}
	if c.Layout.MinSplitChars <= 0 {
		return errors.New("layout.min_split_chars must be positive")
	}
	if c.Layout.MaxSegmentChars < c.Layout.MinSplitChars {
		return fmt.Errorf("layout.max_segment_chars (%d) must be at least layout.min_split_chars (%d)",
			c.Layout.MaxSegmentChars, c.Layout.MinSplitChars)
	}
	if c.Layout.MinPartSeconds <= 0 {
		return errors.New("layout.min_part_seconds must be positive")
	}
	return nil
}

func (c *Config) validateStyle() error {
	if c.Style.Font == "" {
		return errors.New("style.font must be set")
	}
	if c.Style.FontSize <= 0 {
		return errors.New("style.font_size must be positive")
	}
	if c.Style.MarginV < 0 || c.Style.MarginLR < 0 {
		return errors.New("style margins must not be negative")
	}
	if c.Style.Outline < 0 || c.Style.Shadow < 0 {
		return errors.New("style.outline and style.shadow must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
