// Package images prepares locally picked image files for upload.
package images

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"cookbook/internal/domain"
	"cookbook/internal/logger"
)

// Compile-time interface check.
var _ domain.AttachmentLoader = (*Loader)(nil)

// maxEdge bounds the longest image edge before upload. Phone photos are
// far larger than anything the detail screens render.
const maxEdge = 1280

// Loader reads a local image file and produces a multipart attachment.
// Oversized images are downscaled and re-encoded; small ones are sent
// as-is so already-compressed files don't get recompressed.
type Loader struct {
	log *logger.Logger
}

// NewLoader creates an attachment loader.
func NewLoader(log *logger.Logger) *Loader {
	return &Loader{log: log}
}

// Load reads the file at path and returns an uploadable attachment. The
// part filename is regenerated from a fresh uuid plus the original
// extension so uploads never collide on device-specific names.
func (l *Loader) Load(path string) (*domain.Attachment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("images: read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("images: decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxEdge || bounds.Dy() > maxEdge {
		if bounds.Dx() >= bounds.Dy() {
			img = imaging.Resize(img, maxEdge, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, maxEdge, imaging.Lanczos)
		}

		var buf bytes.Buffer
		format, err := formatFor(ext)
		if err != nil {
			format = imaging.JPEG
			ext = ".jpg"
		}
		if err := imaging.Encode(&buf, img, format); err != nil {
			return nil, fmt.Errorf("images: encode %s: %w", path, err)
		}
		l.log.Debug("images: downscaled %s from %dx%d (%d -> %d bytes)",
			path, bounds.Dx(), bounds.Dy(), len(data), buf.Len())
		data = buf.Bytes()
	}

	return &domain.Attachment{
		Filename: uuid.New().String() + ext,
		MIME:     mimeFor(ext),
		Data:     data,
	}, nil
}

func formatFor(ext string) (imaging.Format, error) {
	return imaging.FormatFromExtension(strings.TrimPrefix(ext, "."))
}

func mimeFor(ext string) string {
	switch ext {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
