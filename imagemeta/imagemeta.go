package imagemeta

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	// ErrUndecodable is returned when the payload is not a decodable image.
	ErrUndecodable = errors.New("cannot decode image")

	// ErrUnsupportedFormat is returned when the image decodes to a format
	// outside the supported web formats.
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

var webFormats = map[string]bool{
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"bmp":  true,
	"webp": true,
}

// Meta holds the measured attributes of one decoded image.
type Meta struct {
	Size   int64 // payload size in bytes
	Width  int
	Height int
	Format string // lowercase format name, e.g. "jpeg"
}

// SizeKB returns the payload size in whole kilobytes.
func (m Meta) SizeKB() int {
	return int(m.Size / 1024)
}

// AspectRatio returns width over height rounded to two decimal places.
func (m Meta) AspectRatio() float64 {
	if m.Height == 0 {
		return 0
	}
	return math.Round(float64(m.Width)/float64(m.Height)*100) / 100
}

// Decode reads the full image payload and extracts its metadata.
// Only the image header is decoded, not the pixel data.
func Decode(r io.Reader) (Meta, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Meta{}, fmt.Errorf("read image payload: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes extracts metadata from an in-memory image payload.
func DecodeBytes(data []byte) (Meta, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Meta{}, errors.Join(ErrUndecodable, err)
	}
	if !webFormats[format] {
		return Meta{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return Meta{
		Size:   int64(len(data)),
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: format,
	}, nil
}

// Supported returns the accepted web image format names.
func Supported() []string {
	return []string{"jpeg", "png", "gif", "bmp", "webp"}
}

// IsSupported reports whether format is one of the accepted web image formats.
func IsSupported(format string) bool {
	return webFormats[format]
}
