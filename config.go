package main

import (
	"encoding/json"
	"fmt"
)

const defaultColor = "white"

// OutputMode selects how ls prints the library.
type OutputMode int

const (
	ModeFull OutputMode = iota
	ModeOnlyURL
	ModeJSON
)

var outputModeNames = map[OutputMode]string{
	ModeFull:    "full",
	ModeOnlyURL: "only-url",
	ModeJSON:    "json",
}

func (m OutputMode) String() string {
	if s, ok := outputModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("OutputMode(%d)", int(m))
}

// parseOutputMode is the inverse of OutputMode.String.
func parseOutputMode(s string) (OutputMode, error) {
	for m, name := range outputModeNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown output mode %q (valid: only-url, full, json)", s)
}

func (m OutputMode) MarshalText() ([]byte, error) {
	if _, ok := outputModeNames[m]; !ok {
		return nil, fmt.Errorf("unknown output mode %d", int(m))
	}
	return []byte(m.String()), nil
}

func (m *OutputMode) UnmarshalText(b []byte) error {
	mode, err := parseOutputMode(string(b))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// modeFlag is a -format flag. Unset, it defers to the configured mode.
type modeFlag struct {
	mode OutputMode
	set  bool
}

func (f *modeFlag) String() string {
	if f == nil || !f.set {
		return ""
	}
	return f.mode.String()
}

func (f *modeFlag) Set(s string) error {
	mode, err := parseOutputMode(s)
	if err != nil {
		return err
	}
	f.mode, f.set = mode, true
	return nil
}

// Or returns the flag value, or def if the flag was not given.
func (f *modeFlag) Or(def OutputMode) OutputMode {
	if f.set {
		return f.mode
	}
	return def
}

// Config is the content of config.json.
type Config struct {
	OutputColors map[string]string `json:"output_colors"`
	OutputMode   OutputMode        `json:"output_mode"`
}

func defaultConfig() *Config {
	return &Config{
		OutputColors: map[string]string{
			fieldURL:         "cyan",
			fieldDescription: "bright_white",
			fieldTags:        "yellow",
			fieldDate:        "white",
		},
		OutputMode: ModeFull,
	}
}

// Color is the colour name used to print field.
func (c *Config) Color(field string) string {
	if color, ok := c.OutputColors[field]; ok {
		return color
	}
	return defaultColor
}

// loadConfig merges config.json over the defaults. Colours are merged per
// field. When config.json is missing, blank or an empty object, the
// defaults are written to it so the user has a file to edit.
func loadConfig(s *Store) (*Config, error) {
	cfg := defaultConfig()

	var raw map[string]json.RawMessage
	if _, err := s.Load(configFile, &raw); err != nil {
		return nil, fmt.Errorf("cannot load configuration: %w", err)
	}
	if err := cfg.merge(raw); err != nil {
		return nil, fmt.Errorf("cannot load configuration: %w", &StorageError{"parse", s.path(configFile), err})
	}

	if len(raw) == 0 {
		if err := s.Save(configFile, cfg); err != nil {
			return nil, fmt.Errorf("cannot save configuration: %w", err)
		}
	}
	return cfg, nil
}

// merge decodes the known keys of raw over c.
func (c *Config) merge(raw map[string]json.RawMessage) error {
	if v, ok := raw["output_colors"]; ok {
		if err := json.Unmarshal(v, &c.OutputColors); err != nil {
			return fmt.Errorf("output_colors: %w", err)
		}
		if c.OutputColors == nil {
			// "output_colors": null
			c.OutputColors = defaultConfig().OutputColors
		}
	}
	if v, ok := raw["output_mode"]; ok {
		if err := json.Unmarshal(v, &c.OutputMode); err != nil {
			return fmt.Errorf("output_mode: %w", err)
		}
	}
	return nil
}
