package config

import "mp3tomp4/viz"

// Config holds all converter configuration options
type Config struct {
	// Positional input: a file path or glob pattern, expanded to Inputs
	// by the loader.
	Pattern string   `yaml:"-"`
	Inputs  []string `yaml:"-"`

	// Output settings
	OutputDir string `yaml:"output_dir"` // empty = next to each input

	// Background image settings
	Image          string `yaml:"image"`            // explicit background image path
	CoverFromAudio bool   `yaml:"cover_from_audio"` // force extraction even when an image is given
	CoverOut       string `yaml:"cover_out"`        // keep the extracted cover at this path

	// Visualization settings
	Visualization VisualizationConfig `yaml:"visualization"`

	// Encode settings
	Duration float64 `yaml:"duration"` // seconds to encode, 0 = full audio length

	// Behavioral flags
	Verbose bool `yaml:"verbose"` // Pass engine diagnostics through unfiltered
	DryRun  bool `yaml:"dry_run"` // Print the commands without encoding
}

// VisualizationConfig holds the visualization layout settings
type VisualizationConfig struct {
	Type     string `yaml:"type"`     // "waveform", "spectrum", "both"
	Position string `yaml:"position"` // "top", "bottom", "left", "right", "center", "xy(x,y)"
	Color    string `yaml:"color"`    // spectrum palette, e.g. "viridis", "cool", "fire"
	Width    int    `yaml:"width"`    // element width in pixels
	Height   int    `yaml:"height"`   // element height in pixels
	Margin   int    `yaml:"margin"`   // distance from the frame edge in pixels
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user
		Pattern: "",

		// Output next to each input by default
		OutputDir: "",

		// Background image resolved from embedded cover art when empty
		Image:          "",
		CoverFromAudio: false,
		CoverOut:       "",

		// Visualization defaults (waveform strip along the bottom edge)
		Visualization: VisualizationConfig{
			Type:     "waveform",
			Position: "bottom",
			Color:    "viridis",
			Width:    1280,
			Height:   180,
			Margin:   50,
		},

		// Encode defaults
		Duration: 0, // Full audio length

		// Behavioral defaults
		Verbose: false,
		DryRun:  false,
	}
}

// Copy creates a deep copy of the config
func (c *Config) Copy() *Config {
	dup := *c
	dup.Inputs = append([]string(nil), c.Inputs...)
	return &dup
}

// VisualizationRequest parses the textual visualization settings into a
// validated request. The returned error names the offending option.
func (c *Config) VisualizationRequest() (viz.Request, error) {
	vizType, err := viz.ParseType(c.Visualization.Type)
	if err != nil {
		return viz.Request{}, err
	}
	position, err := viz.ParsePosition(c.Visualization.Position)
	if err != nil {
		return viz.Request{}, err
	}
	color, err := viz.ParseColorScheme(c.Visualization.Color)
	if err != nil {
		return viz.Request{}, err
	}

	req := viz.Request{
		Type:        vizType,
		Position:    position,
		ColorScheme: color,
		Width:       c.Visualization.Width,
		Height:      c.Visualization.Height,
		Margin:      c.Visualization.Margin,
	}
	if err := req.Validate(); err != nil {
		return viz.Request{}, err
	}
	return req, nil
}
