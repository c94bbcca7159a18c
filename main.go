package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"mp3tomp4/command"
	"mp3tomp4/command/composite"
	"mp3tomp4/command/remux"
	"mp3tomp4/config"
	"mp3tomp4/cover"
	"mp3tomp4/ffmpeg"
	"mp3tomp4/ffprobe"
	"mp3tomp4/orchestrator"
	"mp3tomp4/viz"
)

func main() {
	if len(os.Args) < 2 {
		config.PrintUsage()
		os.Exit(1)
	}

	// Step 1: Load configuration (CLI flags > config file > defaults)
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Step 2: Handle dry-run mode
	if cfg.DryRun {
		fmt.Println("═══════════════════════════════════════════════════════════")
		fmt.Println("                      DRY RUN MODE")
		fmt.Println("═══════════════════════════════════════════════════════════")
		cfg.PrintConfig()
		fmt.Println()
		if err := printCommandPreview(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\n✓ Configuration is valid. No encoding will be performed.")
		return
	}

	// Step 3: The whole pipeline runs on the external engine
	if !ffmpeg.Available() {
		fmt.Fprintln(os.Stderr, "❌ ffmpeg not found in PATH. Install it from https://ffmpeg.org and retry.")
		os.Exit(1)
	}

	// Step 4: Run every input through the conversion pipeline
	startTime := time.Now()

	resolver := cover.NewResolver(ffprobe.StreamCodec, ffmpeg.Available)
	batch := orchestrator.NewBatch(orchestrator.New(resolver))

	if err := batch.RunAll(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "\n❌ Conversion error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n✅ Converted %d file(s) in %.2fs\n", len(cfg.Inputs), time.Since(startTime).Seconds())
}

// printCommandPreview shows the engine invocations the first input would
// trigger, without touching the filesystem.
func printCommandPreview(cfg *config.Config) error {
	request, err := cfg.VisualizationRequest()
	if err != nil {
		return err
	}
	graph := viz.Synthesize(request)

	input := cfg.Inputs[0]
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(input)
	}
	outputPath := filepath.Join(outputDir, base+".mp4")
	tempVideo := "<scratch>.mp4"

	background := cfg.Image
	if background == "" {
		background = "<extracted cover>"
	}

	stages := []command.Command{
		composite.NewCompositeBuilder(background, input, tempVideo).
			SetFilterGraph(graph).
			SetDuration(cfg.Duration),
		remux.NewRemuxBuilder(tempVideo, input, outputPath),
	}

	fmt.Printf("Engine commands for %s:\n", input)
	for i, stage := range stages {
		preview, err := stage.DryRun()
		if err != nil {
			return err
		}
		fmt.Printf("  %d. [%s] %s\n", i+1, stage.GetTaskType(), preview)
	}

	if len(cfg.Inputs) > 1 {
		fmt.Printf("  (repeated for %d more input(s))\n", len(cfg.Inputs)-1)
	}
	return nil
}
