package hocr

import (
	"fmt"
	"strings"

	"github.com/gardar/boxtrain/pkg/boxfile"
)

// ToBoxes returns a box for every word of doc, page by page. The page index
// in doc becomes the box page. Pages without a bbox are taken to be
// fallbackHeight pixels high. White space is removed from word text and
// words left empty are skipped.
func ToBoxes(doc HOCR, fallbackHeight int) []boxfile.Box {
	var boxes []boxfile.Box
	for pi, page := range doc.Pages {
		height := page.Height()
		if height <= 0 {
			height = fallbackHeight
		}
		for _, line := range page.Lines {
			for _, w := range line.Words {
				text := strings.Join(strings.Fields(w.Text), "")
				if text == "" {
					continue
				}
				b := boxfile.Box{
					Text:      text,
					Left:      w.BBox.X1,
					Right:     w.BBox.X2,
					Top:       height - w.BBox.Y1,
					Bottom:    height - w.BBox.Y2,
					Page:      pi,
					Bold:      w.Bold,
					Italic:    w.Italic,
					Underline: w.Underline,
					Valid:     true,
				}
				b.CheckNumbers()
				boxes = append(boxes, b)
			}
		}
	}
	return boxes
}

// FromBoxes builds an hOCR document with one word per box. Every page is
// width by height pixels. A box that starts left of the previous box on the
// same page begins a new line.
func FromBoxes(boxes []boxfile.Box, width, height int) *HOCR {
	doc := &HOCR{
		Metadata: map[string]string{
			"ocr-system":       "boxtrain",
			"ocr-capabilities": "ocr_page ocr_line ocrx_word",
		},
	}

	pages := 0
	for _, b := range boxes {
		if b.Valid {
			pages = max(pages, b.Page+1)
		}
	}
	doc.Pages = make([]Page, pages)
	for i := range doc.Pages {
		doc.Pages[i] = Page{
			ID:         fmt.Sprintf("page_%d", i+1),
			PageNumber: i,
			BBox:       BoundingBox{X2: width, Y2: height},
		}
	}

	prevLeft := make([]int, pages)
	for _, b := range boxes {
		if !b.Valid || b.Page < 0 {
			continue
		}
		page := &doc.Pages[b.Page]
		if len(page.Lines) == 0 || b.Left < prevLeft[b.Page] {
			page.Lines = append(page.Lines, Line{
				ID: fmt.Sprintf("line_%d_%d", b.Page+1, len(page.Lines)+1),
			})
		}
		prevLeft[b.Page] = b.Left
		line := &page.Lines[len(page.Lines)-1]

		w := Word{
			ID:        fmt.Sprintf("word_%d_%d_%d", b.Page+1, len(page.Lines), len(line.Words)+1),
			Text:      b.Text,
			BBox:      BoundingBox{X1: b.Left, Y1: height - b.Top, X2: b.Right, Y2: height - b.Bottom},
			Bold:      b.Bold,
			Italic:    b.Italic,
			Underline: b.Underline,
		}
		line.Words = append(line.Words, w)
		line.BBox = line.BBox.Union(w.BBox)
	}
	return doc
}
