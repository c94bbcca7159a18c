// Package cover resolves the background image for an encode, extracting
// embedded cover art from the audio file when no usable image is supplied.
package cover

import (
	"errors"
	"fmt"
	"os"

	"github.com/dhowden/tag"

	"mp3tomp4/command/extract"
	"mp3tomp4/internal/scratch"
	"mp3tomp4/models"
)

// ErrNoCover is returned when neither extraction tier produced an image.
var ErrNoCover = errors.New("no cover art found")

// ExtFromMIME maps a picture frame's declared MIME type to a file extension.
// Unknown types fall back to a generic binary extension so the raw bytes are
// still preserved on disk.
func ExtFromMIME(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	default:
		return "bin"
	}
}

// extFromCodec maps a probed video stream codec to a still-image extension.
// Compressed video codecs re-encode to jpg.
func extFromCodec(codec string) string {
	switch codec {
	case "png":
		return "png"
	case "webp":
		return "webp"
	default:
		return "jpg"
	}
}

// probeFn and availableFn are swapped out in tests so tier 2 can be
// exercised without a real engine on the host.
type probeFn func(path string, selector string) (string, error)
type availableFn func() bool

// Resolver decides whether a background image must be extracted from the
// audio file, and if so runs the two-tier extraction strategy.
type Resolver struct {
	streamCodec probeFn
	engineReady availableFn
}

func NewResolver(streamCodec probeFn, engineReady availableFn) *Resolver {
	return &Resolver{streamCodec: streamCodec, engineReady: engineReady}
}

// Resolve produces the background image for one job. An explicit image that
// exists on disk is used as-is unless forceExtract is set. Extracted images
// go to saveTo when given, otherwise to a scratch path owned by the caller.
func (r *Resolver) Resolve(audioPath string, explicitImage string, forceExtract bool, saveTo string) (models.CoverArtifact, error) {
	if !forceExtract && explicitImage != "" {
		if _, err := os.Stat(explicitImage); err == nil {
			return models.NewCoverArtifact(explicitImage, false)
		}
	}

	artifact, tagErr := r.extractFromTags(audioPath, saveTo)
	if tagErr == nil {
		return artifact, nil
	}

	if !r.engineReady() {
		return models.CoverArtifact{}, fmt.Errorf("%w in %s: %v", ErrNoCover, audioPath, tagErr)
	}

	artifact, probeErr := r.extractFromStream(audioPath, saveTo)
	if probeErr == nil {
		return artifact, nil
	}

	return models.CoverArtifact{}, fmt.Errorf("%w in %s: tag read failed (%v); stream extraction failed (%v)",
		ErrNoCover, audioPath, tagErr, probeErr)
}

// extractFromTags reads the audio file's metadata container and writes the
// embedded picture bytes out unmodified. Front-cover frames win over any
// other picture type when the container carries several.
func (r *Resolver) extractFromTags(audioPath string, saveTo string) (models.CoverArtifact, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return models.CoverArtifact{}, fmt.Errorf("failed to open %s: %w", audioPath, err)
	}
	defer f.Close()

	meta, err := tag.ReadFrom(f)
	if err != nil {
		return models.CoverArtifact{}, fmt.Errorf("failed to read tags: %w", err)
	}

	pic := pickPicture(meta)
	if pic == nil {
		return models.CoverArtifact{}, errors.New("no embedded picture frame")
	}

	dest := saveTo
	temporary := false
	if dest == "" {
		dest = scratch.Path("cover", ExtFromMIME(pic.MIMEType))
		temporary = true
	}
	if err := os.WriteFile(dest, pic.Data, 0o644); err != nil {
		return models.CoverArtifact{}, fmt.Errorf("failed to write cover to %s: %w", dest, err)
	}
	return models.NewCoverArtifact(dest, temporary)
}

// pickPicture scans every raw tag frame for pictures so a front cover can be
// preferred; Metadata.Picture alone only exposes one arbitrary frame.
func pickPicture(meta tag.Metadata) *tag.Picture {
	var first *tag.Picture
	for _, raw := range meta.Raw() {
		pic, ok := raw.(*tag.Picture)
		if !ok {
			continue
		}
		if pic.Type == "Cover (front)" {
			return pic
		}
		if first == nil {
			first = pic
		}
	}
	if first != nil {
		return first
	}
	return meta.Picture()
}

// extractFromStream probes for an attached-picture stream, falling back to
// any video stream so a video file used as an audio source still yields a
// frame. The frame is always re-encoded so compressed video becomes a valid
// still image.
func (r *Resolver) extractFromStream(audioPath string, saveTo string) (models.CoverArtifact, error) {
	codec, err := r.streamCodec(audioPath, "v:attached_pic")
	if err != nil {
		return models.CoverArtifact{}, fmt.Errorf("stream probe failed: %w", err)
	}
	if codec == "" {
		codec, err = r.streamCodec(audioPath, "v:0")
		if err != nil {
			return models.CoverArtifact{}, fmt.Errorf("stream probe failed: %w", err)
		}
	}
	if codec == "" {
		return models.CoverArtifact{}, errors.New("no video stream present")
	}

	dest := saveTo
	temporary := false
	if dest == "" {
		dest = scratch.Path("cover", extFromCodec(codec))
		temporary = true
	}

	if err := extract.NewExtractBuilder(audioPath, dest).Run(); err != nil {
		return models.CoverArtifact{}, fmt.Errorf("frame extraction failed: %w", err)
	}
	return models.NewCoverArtifact(dest, temporary)
}
