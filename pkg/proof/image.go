package proof

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Info describes a page image.
type Info struct {
	Format string // Upper-case format name, e.g. "PNG" or "TIFF"
	Width  int
	Height int
}

// ImageInfo detects the format and pixel size of an image without decoding
// it fully.
func ImageInfo(data []byte) (Info, error) {
	if len(data) == 0 {
		return Info{}, fmt.Errorf("image data is empty")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode image config: %w", err)
	}
	return Info{Format: strings.ToUpper(format), Width: cfg.Width, Height: cfg.Height}, nil
}

// pdfImage returns the image in a format fpdf can embed. PNG, JPEG and GIF
// are passed through; anything else is decoded and re-encoded as PNG.
func pdfImage(data []byte, info Info) ([]byte, string, error) {
	switch info.Format {
	case "PNG", "GIF":
		return data, info.Format, nil
	case "JPEG":
		return data, "JPG", nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s image: %w", info.Format, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, "", fmt.Errorf("failed to convert %s image to PNG: %w", info.Format, err)
	}
	return buf.Bytes(), "PNG", nil
}
