// Package proof draws boxes over their page image and writes the result as
// a PDF, for checking a boxfile without the editor.
//
// The page is sized to the image in points, one point per pixel. Each box is
// outlined on a PDF layer of its own, which PDF readers can toggle, with its
// text written centred under the box in the box's style. Boxes with upper
// case text are drawn in a different color so case errors stand out.
//
// Main Functions:
//
// - ImageInfo: Reports the format and size of a page image
// - Render: Draws boxes over an image and returns the PDF
// - Overlay: A document renderer that keeps the latest selection for Render
package proof

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gardar/boxtrain/pkg/boxfile"
)

// Render draws the boxes on cfg.Page over the image and returns the PDF.
func Render(imageData []byte, boxes []boxfile.Box, cfg Config) ([]byte, error) {
	info, err := ImageInfo(imageData)
	if err != nil {
		return nil, err
	}
	data, imageType, err := pdfImage(imageData, info)
	if err != nil {
		return nil, err
	}
	if cfg.Debug {
		fmt.Fprintf(getLogger(cfg), "Image is %s, %dx%d\n", info.Format, info.Width, info.Height)
	}

	w, h := float64(info.Width), float64(info.Height)
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})

	opts := fpdf.ImageOptions{ReadDpi: false, ImageType: imageType}
	pdf.RegisterImageOptionsReader("page", opts, bytes.NewReader(data))
	pdf.ImageOptions("page", 0, 0, w, h, false, opts, 0, "")

	boxCount, encodingErrors := drawBoxLayer(pdf, boxes, h, cfg)
	if encodingErrors > 0 {
		// Report encoding errors if more than a threshold
		if encodingErrors > boxCount/10 {
			return nil, fmt.Errorf("character encoding issues in %d of %d labels", encodingErrors, boxCount)
		}
		if cfg.LogWarnings {
			fmt.Fprintf(getLogger(cfg), "Warning: %d labels replaced by '?'\n", encodingErrors)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// getLogger returns the appropriate io.Writer to use for logging
// based on the configuration settings, defaulting to os.Stdout if nil.
func getLogger(cfg Config) io.Writer {
	if cfg.Logger == nil {
		return os.Stdout
	}
	return cfg.Logger
}
