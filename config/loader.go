package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadConfig loads configuration with priority: CLI flags > Config file > Defaults.
// args is the command line without the program name (os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	// 1. Start with defaults
	cfg := DefaultConfig()

	// 2. Check if -config flag was provided (quick parse to extract it).
	// Both spellings flag accepts must be recognized: "-config path" and
	// "-config=path" (single or double dash).
	configPath := ""
	for i, arg := range args {
		name := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
		if name == "config" && i+1 < len(args) {
			configPath = args[i+1]
			break
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			configPath = value
			break
		}
	}

	// If no config flag, try to find config file in standard locations
	if configPath == "" {
		configPath = FindConfigFile()
	}

	// Load config file if found
	if configPath != "" {
		fileCfg, err := LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		// Merge file config (overwrites defaults)
		cfg = fileCfg
	}

	// 3. Merge CLI flags (highest priority, overwrites everything)
	if err := cfg.MergeFromFlags(args); err != nil {
		return nil, err
	}

	// Expand the input pattern into the ordered file list
	if cfg.Pattern != "" {
		inputs, err := expandPattern(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		cfg.Inputs = inputs
	}

	// A single cover destination cannot serve a whole batch
	if cfg.CoverOut != "" && len(cfg.Inputs) > 1 {
		fmt.Fprintln(os.Stderr, "warning: -cover-out ignored for multiple inputs")
		cfg.CoverOut = ""
	}

	// Validate final configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// expandPattern turns a glob pattern into an ordered list of input paths.
// A pattern that matches nothing is still accepted when it names an
// existing file literally (glob metacharacters in real file names).
func expandPattern(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid input pattern %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		if _, statErr := os.Stat(pattern); statErr == nil {
			return []string{pattern}, nil
		}
		return nil, fmt.Errorf("no input files match %s", pattern)
	}
	return matches, nil
}
