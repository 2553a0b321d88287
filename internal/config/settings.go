package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings holds all configuration options.
type Settings struct {
	// Fetch settings
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`

	// Cue sheet settings
	Performer  string `json:"performer"`
	OutputFile string `json:"output_file"`

	// Cover art settings
	SaveCoverArt    bool `json:"save_cover_art"`
	ResizeCoverArt  bool `json:"resize_cover_art"`
	CoverArtMaxSize int  `json:"cover_art_max_size"`

	// Output verbosity: 0 silent, 1 warnings/errors, 2 info, 3 per-track trace
	DebugLevel int `json:"debug_level"`
}

// DefaultSettings returns settings with default values.
//
// The default User-Agent mimics a browser; MusicBrainz serves the full
// release page markup to browser agents.
func DefaultSettings() *Settings {
	return &Settings{
		UserAgent:      "Mozilla/5.0",
		TimeoutSeconds: 30,

		Performer: "Various Artists",

		SaveCoverArt:    false,
		ResizeCoverArt:  true,
		CoverArtMaxSize: 1000,

		DebugLevel: 0,
	}
}

// Load reads settings from a JSON file.
//
// A missing file is not an error; defaults are returned so a config
// file is always optional.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
