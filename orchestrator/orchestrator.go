// Package orchestrator drives the two-stage encode for one conversion job
// and iterates jobs across a batch.
package orchestrator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mp3tomp4/command"
	"mp3tomp4/command/composite"
	"mp3tomp4/command/remux"
	"mp3tomp4/command/thumbnail"
	"mp3tomp4/ffprobe"
	"mp3tomp4/internal/scratch"
	"mp3tomp4/models"
	"mp3tomp4/viz"
)

var (
	// ErrInputNotFound marks a job whose audio file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrOutputValidation marks a finished encode whose output file is
	// missing or empty despite both stages reporting success.
	ErrOutputValidation = errors.New("output validation failed")
)

// CoverResolver supplies the background image for a job.
type CoverResolver interface {
	Resolve(audioPath string, explicitImage string, forceExtract bool, saveTo string) (models.CoverArtifact, error)
}

// Orchestrator runs the composite, remux, and thumbnail stages for one job.
type Orchestrator struct {
	resolver CoverResolver

	// probeDuration is swapped out in tests; defaults to the engine probe.
	probeDuration func(path string) (float64, error)
}

func New(resolver CoverResolver) *Orchestrator {
	return &Orchestrator{
		resolver:      resolver,
		probeDuration: ffprobe.Duration,
	}
}

// Produce converts one audio file into its MP4 and thumbnail.
//
// Stage 1 renders the visualization over the background into a scratch
// video. Stage 2 remuxes that video stream with the original audio into
// the final output. The scratch video is removed afterwards regardless of
// how stage 2 went, and a temporary extracted cover is removed once the
// thumbnail has been written from it.
func (o *Orchestrator) Produce(job *models.Job) (*models.Output, error) {
	if _, err := os.Stat(job.AudioPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, job.AudioPath)
	}

	artifact, err := o.resolver.Resolve(job.AudioPath, job.ImagePath, job.CoverFromAudio, job.CoverOut)
	if err != nil {
		return nil, err
	}
	if artifact.Temporary {
		defer os.Remove(artifact.Path)
	}

	duration := job.Duration
	if duration <= 0 {
		duration, err = o.probeDuration(job.AudioPath)
		if err != nil {
			return nil, fmt.Errorf("failed to probe duration of %s: %w", job.AudioPath, err)
		}
	}

	graph := viz.Synthesize(job.Visualization)

	tempVideo := scratch.Path("viz", "mp4")
	defer os.Remove(tempVideo)

	fmt.Printf("Rendering visualization for %s\n", filepath.Base(job.AudioPath))
	stage1 := composite.NewCompositeBuilder(artifact.Path, job.AudioPath, tempVideo).
		SetFilterGraph(graph).
		SetDuration(duration).
		SetVerbose(job.Verbose)
	if err := runStage(stage1); err != nil {
		return nil, err
	}

	fmt.Printf("Muxing audio into %s\n", filepath.Base(job.OutputPath))
	stage2 := remux.NewRemuxBuilder(tempVideo, job.AudioPath, job.OutputPath).
		SetTotalDuration(duration).
		SetVerbose(job.Verbose)
	if err := runStage(stage2); err != nil {
		return nil, err
	}

	thumbPath, err := emitThumbnail(artifact.Path, job.AudioPath, job.OutputPath, job.Verbose)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(job.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s does not exist", ErrOutputValidation, job.OutputPath)
	}
	output, err := models.NewOutput(job.OutputPath, thumbPath, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOutputValidation, err)
	}
	return output, nil
}

// emitThumbnail places a still image next to the output video, named after
// the audio file. A background already in the target format is copied
// byte-for-byte; anything else is re-encoded, so a ".jpeg" background still
// becomes a canonical ".jpg" thumbnail.
func emitThumbnail(imagePath, audioPath, outputPath string, verbose bool) (string, error) {
	srcExt := strings.ToLower(strings.TrimPrefix(filepath.Ext(imagePath), "."))
	wantExt := "jpg"
	if srcExt == "png" {
		wantExt = "png"
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	dest := filepath.Join(filepath.Dir(outputPath), base+"."+wantExt)

	if srcExt == wantExt {
		// The background may already sit at the thumbnail path (explicit
		// image named like the audio). Copying onto itself would truncate
		// it, so leave it untouched.
		if samePath(imagePath, dest) {
			return dest, nil
		}
		if err := copyFile(imagePath, dest); err != nil {
			return "", fmt.Errorf("failed to copy thumbnail: %w", err)
		}
		return dest, nil
	}

	if err := runStage(thumbnail.NewThumbnailBuilder(imagePath, dest).SetVerbose(verbose)); err != nil {
		return "", err
	}
	return dest, nil
}

// runStage executes one engine invocation, naming the stage and its input
// in the failure.
func runStage(cmd command.Command) error {
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s stage failed for %s: %w", cmd.GetTaskType(), cmd.GetInputPath(), err)
	}
	return nil
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
