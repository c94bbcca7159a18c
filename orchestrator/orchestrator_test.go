package orchestrator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mp3tomp4/command"
	"mp3tomp4/models"
	"mp3tomp4/viz"
)

type stubResolver struct {
	artifact models.CoverArtifact
	err      error
	calls    int
}

func (s *stubResolver) Resolve(audioPath, explicitImage string, forceExtract bool, saveTo string) (models.CoverArtifact, error) {
	s.calls++
	return s.artifact, s.err
}

func testRequest() viz.Request {
	return viz.Request{
		Type:        viz.Waveform,
		Position:    viz.Position{Anchor: viz.Bottom},
		ColorScheme: viz.Viridis,
		Width:       1280,
		Height:      180,
		Margin:      50,
	}
}

func TestProduce_MissingAudio(t *testing.T) {
	resolver := &stubResolver{}
	o := New(resolver)

	job, err := models.NewJob(filepath.Join(t.TempDir(), "gone.mp3"), "out.mp4", testRequest())
	if err != nil {
		t.Fatal(err)
	}

	_, err = o.Produce(job)
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("expected ErrInputNotFound, got %v", err)
	}
	if resolver.calls != 0 {
		t.Error("resolver should not run when the audio file is missing")
	}
}

func TestProduce_ResolverFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(audio, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	wantErr := errors.New("no cover anywhere")
	o := New(&stubResolver{err: wantErr})

	job, err := models.NewJob(audio, filepath.Join(dir, "song.mp4"), testRequest())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := o.Produce(job); !errors.Is(err, wantErr) {
		t.Errorf("expected resolver error, got %v", err)
	}
}

type fakeCommand struct{ err error }

func (f fakeCommand) BuildArgs() []string           { return nil }
func (f fakeCommand) Run() error                    { return f.err }
func (f fakeCommand) DryRun() (string, error)       { return "", nil }
func (f fakeCommand) GetTaskType() command.TaskType { return command.TaskTypeComposite }
func (f fakeCommand) GetInputPath() string          { return "in.mp3" }
func (f fakeCommand) GetOutputPath() string         { return "out.mp4" }

func TestRunStage_FailureNamesStageAndInput(t *testing.T) {
	cause := errors.New("boom")

	err := runStage(fakeCommand{err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("expected the cause to be wrapped, got %v", err)
	}
	if !strings.Contains(err.Error(), string(command.TaskTypeComposite)) {
		t.Errorf("error should name the stage: %v", err)
	}
	if !strings.Contains(err.Error(), "in.mp3") {
		t.Errorf("error should name the input: %v", err)
	}
}

func TestRunStage_Success(t *testing.T) {
	if err := runStage(fakeCommand{}); err != nil {
		t.Errorf("runStage returned error for a clean command: %v", err)
	}
}

func TestEmitThumbnail_CopiesMatchingFormat(t *testing.T) {
	dir := t.TempDir()
	content := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	image := filepath.Join(dir, "cover.jpg")
	if err := os.WriteFile(image, content, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := emitThumbnail(image, filepath.Join(dir, "song.mp3"), filepath.Join(dir, "song.mp4"), false)
	if err != nil {
		t.Fatalf("emitThumbnail returned error: %v", err)
	}
	if got != filepath.Join(dir, "song.jpg") {
		t.Errorf("thumbnail path = %s", got)
	}
	data, err := os.ReadFile(got)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, content) {
		t.Error("thumbnail bytes differ from the background image")
	}
}

func TestEmitThumbnail_SourceAtDestinationSurvives(t *testing.T) {
	dir := t.TempDir()
	content := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0x03, 0x04}
	// The background already sits exactly where the thumbnail belongs.
	image := filepath.Join(dir, "song.jpg")
	if err := os.WriteFile(image, content, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := emitThumbnail(image, filepath.Join(dir, "song.mp3"), filepath.Join(dir, "song.mp4"), false)
	if err != nil {
		t.Fatalf("emitThumbnail returned error: %v", err)
	}
	if got != image {
		t.Errorf("thumbnail path = %s, want %s", got, image)
	}
	data, err := os.ReadFile(image)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, content) {
		t.Fatalf("background image corrupted: now %d bytes, was %d", len(data), len(content))
	}
}

func TestEmitThumbnail_PNGStaysPNG(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "cover.png")
	if err := os.WriteFile(image, []byte("png bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := emitThumbnail(image, filepath.Join(dir, "track.flac"), filepath.Join(dir, "track.mp4"), false)
	if err != nil {
		t.Fatalf("emitThumbnail returned error: %v", err)
	}
	if filepath.Base(got) != "track.png" {
		t.Errorf("thumbnail = %s, want track.png", filepath.Base(got))
	}
}
