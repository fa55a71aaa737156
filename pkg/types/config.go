// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultDataPath is the dataset file read when no path is configured.
const DefaultDataPath = "Final_Cleaned_File.csv"

// DefaultWordWrap is the card width used when the terminal width is unknown.
const DefaultWordWrap = 100

// PortalConfig holds the settings shared by every research-portal command.
type PortalConfig struct {
	// DataPath is the dataset file (csv, yaml, json, or a SQLite index).
	DataPath string `json:"data" yaml:"data"`

	// WordWrap is the column at which rendered cards wrap (default 100).
	WordWrap int `json:"word_wrap" yaml:"word_wrap"`

	// Style is the glamour style for cards: auto, dark, light, or notty.
	Style string `json:"style" yaml:"style"`

	// Verbose enables debug logging.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

// WithDefaults returns a copy of c with zero values replaced by defaults.
func (c PortalConfig) WithDefaults() PortalConfig {
	if c.DataPath == "" {
		c.DataPath = DefaultDataPath
	}
	if c.WordWrap <= 0 {
		c.WordWrap = DefaultWordWrap
	}
	if c.Style == "" {
		c.Style = "auto"
	}
	return c
}
