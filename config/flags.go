package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"mp3tomp4/viz"
)

// MergeFromFlags parses command-line flags and overrides config values.
// The first positional argument is the input pattern.
func (c *Config) MergeFromFlags(args []string) error {
	fs := flag.NewFlagSet("mp3tomp4", flag.ContinueOnError)
	fs.Usage = printUsage

	// Config file override (handled by LoadConfig before this function is called)
	_ = fs.String("config", "", "Path to config file (default: search standard locations)")

	// Output settings
	outputDir := fs.String("output-dir", "", "Directory for output videos (default: next to each input)")

	// Background image settings
	image := fs.String("image", "", "Background image path (default: extract cover art from the audio)")
	coverFromAudio := fs.Bool("cover-from-audio", false, "Extract cover art even when -image is given")
	coverOut := fs.String("cover-out", "", "Keep the extracted cover image at this path")

	// Visualization settings
	vizType := fs.String("type", "", "Visualization type: waveform, spectrum, both (default: from config)")
	position := fs.String("position", "", "Position: top, bottom, left, right, center, xy(x,y) (default: from config)")
	color := fs.String("color", "", "Spectrum color scheme (default: from config)")
	width := fs.Int("width", -1, "Visualization width in pixels (default: from config)")
	height := fs.Int("height", -1, "Visualization height in pixels (default: from config)")
	margin := fs.Int("margin", -1, "Margin from the frame edge in pixels (default: from config)")

	// Encode settings
	duration := fs.Float64("duration", -1, "Seconds of audio to encode (0 = full length) (default: from config)")

	// Behavioral flags
	verbose := fs.Bool("verbose", false, "Pass engine diagnostics through unfiltered")
	dryRun := fs.Bool("dry-run", false, "Print the engine commands without encoding")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// Positional input pattern
	if fs.NArg() > 0 {
		c.Pattern = fs.Arg(0)
	}

	// Override with flag values (only if explicitly set)
	if *outputDir != "" {
		c.OutputDir = *outputDir
	}
	if *image != "" {
		c.Image = *image
	}
	if *coverFromAudio {
		c.CoverFromAudio = true
	}
	if *coverOut != "" {
		c.CoverOut = *coverOut
	}

	// Visualization settings (-1 means not set for numeric flags)
	if *vizType != "" {
		c.Visualization.Type = *vizType
	}
	if *position != "" {
		c.Visualization.Position = *position
	}
	if *color != "" {
		c.Visualization.Color = *color
	}
	if *width > 0 {
		c.Visualization.Width = *width
	}
	if *height > 0 {
		c.Visualization.Height = *height
	}
	if *margin >= 0 {
		c.Visualization.Margin = *margin
	}

	if *duration >= 0 {
		c.Duration = *duration
	}

	if *verbose {
		c.Verbose = true
	}
	if *dryRun {
		c.DryRun = true
	}

	return nil
}

// printUsage prints help text
func printUsage() {
	schemes := make([]string, 0, len(viz.ColorSchemes()))
	for _, scheme := range viz.ColorSchemes() {
		schemes = append(schemes, string(scheme))
	}
	fmt.Fprintf(os.Stderr, `mp3tomp4 - Turn audio files into videos with a waveform or spectrum visualization

USAGE:
  mp3tomp4 [OPTIONS] PATTERN

ARGUMENTS:
  PATTERN
        Audio file path or glob pattern, e.g. song.mp3 or 'album/*.flac'

CONFIGURATION:
  -config string
        Path to config file (default: search ./mp3tomp4.yaml, ~/.mp3tomp4/config.yaml, /etc/mp3tomp4/config.yaml)

OUTPUT SETTINGS:
  -output-dir string
        Directory for output videos, created if absent (default: next to each input)

BACKGROUND IMAGE:
  -image string
        Background image path (default: extract embedded cover art from the audio)
  -cover-from-audio
        Extract cover art from the audio even when -image is given
  -cover-out string
        Keep the extracted cover image at this path (single input only)

VISUALIZATION:
  -type string
        Visualization type: waveform, spectrum, both (default: waveform)
  -position string
        Position: top, bottom, left, right, center, or xy(x,y) (default: bottom)
  -color string
        Spectrum color scheme: %s (default: viridis)
  -width int
        Visualization width in pixels (default: 1280)
  -height int
        Visualization height in pixels (default: 180)
  -margin int
        Margin from the frame edge in pixels (default: 50)

ENCODE SETTINGS:
  -duration float
        Seconds of audio to encode, 0 = full length (default: 0)

BEHAVIORAL FLAGS:
  --verbose
        Pass engine diagnostics through unfiltered
  --dry-run
        Print the engine commands without encoding

EXAMPLES:
  # Single file, waveform along the bottom
  mp3tomp4 song.mp3

  # Whole album with a shared background image
  mp3tomp4 -image cover.jpg 'album/*.mp3'

  # Spectrum on the left edge, custom palette
  mp3tomp4 -type spectrum -position left -color fire song.flac

  # Both visualizations stacked, outputs collected in one directory
  mp3tomp4 -type both -output-dir videos 'album/*.mp3'

CONFIGURATION FILES:
  Config files are searched in order:
    1. ./mp3tomp4.yaml
    2. ~/.mp3tomp4/config.yaml
    3. /etc/mp3tomp4/config.yaml

  Priority: CLI flags > Config file > Defaults

`, strings.Join(schemes, ", "))
}

// PrintUsage prints the help text to stderr.
func PrintUsage() {
	printUsage()
}

// PrintConfig prints the effective configuration
func (c *Config) PrintConfig() {
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Println("                 Effective Configuration                  ")
	fmt.Println("═══════════════════════════════════════════════════════════")
	fmt.Printf("Pattern:        %s\n", c.Pattern)
	fmt.Printf("Inputs:         %d file(s)\n", len(c.Inputs))
	for _, input := range c.Inputs {
		fmt.Printf("  %s\n", input)
	}
	if c.OutputDir != "" {
		fmt.Printf("Output Dir:     %s\n", c.OutputDir)
	}

	fmt.Println("\nBackground Image:")
	if c.Image != "" {
		fmt.Printf("  Image:        %s\n", c.Image)
	} else {
		fmt.Println("  Image:        (extracted from audio)")
	}
	fmt.Printf("  Force Extract: %v\n", c.CoverFromAudio)
	if c.CoverOut != "" {
		fmt.Printf("  Cover Out:    %s\n", c.CoverOut)
	}

	fmt.Println("\nVisualization:")
	fmt.Printf("  Type:         %s\n", c.Visualization.Type)
	fmt.Printf("  Position:     %s\n", c.Visualization.Position)
	fmt.Printf("  Color:        %s\n", c.Visualization.Color)
	fmt.Printf("  Size:         %dx%d\n", c.Visualization.Width, c.Visualization.Height)
	fmt.Printf("  Margin:       %d\n", c.Visualization.Margin)

	fmt.Println("\nEncode Settings:")
	if c.Duration > 0 {
		fmt.Printf("  Duration:     %.2f seconds\n", c.Duration)
	} else {
		fmt.Println("  Duration:     full audio length")
	}

	fmt.Println("\nBehavioral Flags:")
	fmt.Printf("  Verbose:      %v\n", c.Verbose)
	fmt.Printf("  Dry Run:      %v\n", c.DryRun)
	fmt.Println("═══════════════════════════════════════════════════════════")
}
