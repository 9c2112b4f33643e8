package images

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"cookbook/internal/logger"
)

func writePNG(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func testLoader() *Loader {
	return NewLoader(logger.New(logger.LevelOff, io.Discard))
}

func TestLoadSmallImageUntouched(t *testing.T) {
	path := writePNG(t, 640, 480)
	original, _ := os.ReadFile(path)

	att, err := testLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if att.MIME != "image/png" {
		t.Fatalf("expected image/png, got %s", att.MIME)
	}
	if !strings.HasSuffix(att.Filename, ".png") {
		t.Fatalf("expected .png filename, got %s", att.Filename)
	}
	// The filename must not leak the device path.
	if strings.Contains(att.Filename, "photo") {
		t.Fatalf("expected a regenerated filename, got %s", att.Filename)
	}
	if !bytes.Equal(att.Data, original) {
		t.Fatal("expected small images to upload unmodified")
	}
}

func TestLoadDownscalesOversizedImage(t *testing.T) {
	path := writePNG(t, 2600, 400)

	att, err := testLoader().Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(att.Data))
	if err != nil {
		t.Fatalf("decoding upload: %v", err)
	}
	if got := img.Bounds().Dx(); got != 1280 {
		t.Fatalf("expected longest edge 1280, got %d", got)
	}
	// Aspect ratio is preserved.
	if got := img.Bounds().Dy(); got < 190 || got > 200 {
		t.Fatalf("unexpected height %d", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := testLoader().Load(filepath.Join(t.TempDir(), "nope.jpg"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
