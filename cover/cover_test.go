package cover

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExtFromMIME(t *testing.T) {
	tests := []struct {
		mime string
		want string
	}{
		{"image/jpeg", "jpg"},
		{"image/jpg", "jpg"},
		{"image/png", "png"},
		{"image/webp", "webp"},
		{"image/bmp", "bin"},
		{"", "bin"},
	}

	for _, tt := range tests {
		if got := ExtFromMIME(tt.mime); got != tt.want {
			t.Errorf("ExtFromMIME(%q) = %q, want %q", tt.mime, got, tt.want)
		}
	}
}

func TestExtFromCodec(t *testing.T) {
	tests := []struct {
		codec string
		want  string
	}{
		{"png", "png"},
		{"webp", "webp"},
		{"mjpeg", "jpg"},
		{"h264", "jpg"},
	}

	for _, tt := range tests {
		if got := extFromCodec(tt.codec); got != tt.want {
			t.Errorf("extFromCodec(%q) = %q, want %q", tt.codec, got, tt.want)
		}
	}
}

// writeTaggedMP3 writes a minimal ID3v2.3 file whose only frame is an APIC
// front-cover picture carrying the given bytes.
func writeTaggedMP3(t *testing.T, dir string, picture []byte) string {
	t.Helper()

	mime := "image/jpeg"
	body := []byte{0x00}                  // text encoding: ISO-8859-1
	body = append(body, []byte(mime)...)  // MIME type
	body = append(body, 0x00)             // MIME terminator
	body = append(body, 0x03)             // picture type: front cover
	body = append(body, 0x00)             // empty description
	body = append(body, picture...)

	frame := []byte("APIC")
	frame = append(frame,
		byte(len(body)>>24), byte(len(body)>>16), byte(len(body)>>8), byte(len(body)))
	frame = append(frame, 0x00, 0x00) // frame flags
	frame = append(frame, body...)

	tagSize := len(frame)
	header := []byte{'I', 'D', '3', 0x03, 0x00, 0x00,
		byte(tagSize >> 21 & 0x7f), byte(tagSize >> 14 & 0x7f),
		byte(tagSize >> 7 & 0x7f), byte(tagSize & 0x7f)}

	path := filepath.Join(dir, "tagged.mp3")
	if err := os.WriteFile(path, append(header, frame...), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func noProbe(string, string) (string, error) { return "", nil }
func engineDown() bool                       { return false }
func engineUp() bool                         { return true }

func TestResolve_ExplicitImageUsedAsIs(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "bg.png")
	if err := os.WriteFile(image, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(noProbe, engineDown)
	artifact, err := r.Resolve("missing.mp3", image, false, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if artifact.Path != image {
		t.Errorf("path = %s, want %s", artifact.Path, image)
	}
	if artifact.Temporary {
		t.Error("user-specified image must not be marked temporary")
	}
}

func TestResolve_TagTier(t *testing.T) {
	dir := t.TempDir()
	picture := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02, 0x03}
	audio := writeTaggedMP3(t, dir, picture)

	r := NewResolver(noProbe, engineDown)
	artifact, err := r.Resolve(audio, "", false, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	defer os.Remove(artifact.Path)

	if !artifact.Temporary {
		t.Error("extracted cover should be temporary when no save path was given")
	}
	got, err := os.ReadFile(artifact.Path)
	if err != nil {
		t.Fatalf("reading extracted cover: %v", err)
	}
	if !bytes.Equal(got, picture) {
		t.Error("extracted bytes differ from embedded picture")
	}
}

func TestResolve_TagTierSaveTo(t *testing.T) {
	dir := t.TempDir()
	audio := writeTaggedMP3(t, dir, []byte{0xFF, 0xD8})
	dest := filepath.Join(dir, "cover.jpg")

	r := NewResolver(noProbe, engineDown)
	artifact, err := r.Resolve(audio, "", true, dest)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if artifact.Path != dest {
		t.Errorf("path = %s, want %s", artifact.Path, dest)
	}
	if artifact.Temporary {
		t.Error("cover saved to an explicit path must not be marked temporary")
	}
}

func TestResolve_MissingExplicitImageFallsThrough(t *testing.T) {
	dir := t.TempDir()
	audio := writeTaggedMP3(t, dir, []byte{0xFF, 0xD8})

	// A nonexistent explicit image triggers extraction instead of failing.
	r := NewResolver(noProbe, engineDown)
	artifact, err := r.Resolve(audio, filepath.Join(dir, "gone.png"), false, "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	os.Remove(artifact.Path)
}

func TestResolve_NoCoverEngineUnavailable(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "plain.mp3")
	if err := os.WriteFile(audio, []byte("not really audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(noProbe, engineDown)
	_, err := r.Resolve(audio, "", false, "")
	if !errors.Is(err, ErrNoCover) {
		t.Errorf("expected ErrNoCover, got %v", err)
	}
}

func TestResolve_NoCoverNoVideoStream(t *testing.T) {
	dir := t.TempDir()
	audio := filepath.Join(dir, "plain.mp3")
	if err := os.WriteFile(audio, []byte("not really audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(noProbe, engineUp)
	_, err := r.Resolve(audio, "", false, "")
	if !errors.Is(err, ErrNoCover) {
		t.Errorf("expected ErrNoCover, got %v", err)
	}
}
