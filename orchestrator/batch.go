package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mp3tomp4/config"
	"mp3tomp4/models"
)

// Batch processes an ordered list of inputs strictly in sequence. The
// first failing job aborts the rest; outputs already produced stay in
// place.
type Batch struct {
	produce func(*models.Job) (*models.Output, error)
}

func NewBatch(o *Orchestrator) *Batch {
	return &Batch{produce: o.Produce}
}

// RunAll converts every input in cfg, one at a time, fail-fast.
func (b *Batch) RunAll(cfg *config.Config) error {
	request, err := cfg.VisualizationRequest()
	if err != nil {
		return err
	}

	for i, input := range cfg.Inputs {
		outputPath, err := DeriveOutputPath(input, cfg.OutputDir)
		if err != nil {
			return err
		}

		job, err := models.NewJob(input, outputPath, request)
		if err != nil {
			return err
		}
		job.ImagePath = cfg.Image
		job.Duration = cfg.Duration
		job.Verbose = cfg.Verbose
		job.CoverFromAudio = cfg.CoverFromAudio
		job.CoverOut = cfg.CoverOut

		if len(cfg.Inputs) > 1 {
			fmt.Printf("[%d/%d] %s\n", i+1, len(cfg.Inputs), input)
		}

		output, err := b.produce(job)
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", input, err)
		}
		fmt.Printf("✓ %s (%d bytes)\n", output.VideoPath, output.Bytes)
	}

	return nil
}

// DeriveOutputPath replaces the input's extension with .mp4. When an
// output directory is given it is created (parents included) and the
// derived file name is relocated under it.
func DeriveOutputPath(inputPath, outputDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".mp4"

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base), nil
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	return filepath.Join(outputDir, base), nil
}
