package proof

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"

	"github.com/gardar/boxtrain/pkg/boxfile"
)

// drawBoxLayer outlines the boxes of cfg.Page on a layer of their own and
// returns how many were drawn and how many labels could not be encoded.
// pageHeight flips the bottom-left box origin to the top-left PDF origin.
func drawBoxLayer(pdf *fpdf.Fpdf, boxes []boxfile.Box, pageHeight float64, cfg Config) (boxCount, encodingErrors int) {
	layer := pdf.AddLayer(cfg.LayerName, true)
	pdf.BeginLayer(layer)
	pdf.SetLineWidth(cfg.LineWidth)

	for _, b := range boxes {
		if !b.Valid || b.Page != cfg.Page {
			continue
		}
		if !drawBox(pdf, b, pageHeight, cfg) {
			encodingErrors++
		}
		boxCount++
	}
	pdf.EndLayer()

	if cfg.Debug {
		fmt.Fprintf(getLogger(cfg), "Drew %d boxes on layer %q\n", boxCount, cfg.LayerName)
	}
	return boxCount, encodingErrors
}

// drawBox outlines one box and writes its label underneath. It reports
// whether the label could be encoded.
func drawBox(pdf *fpdf.Fpdf, b boxfile.Box, pageHeight float64, cfg Config) bool {
	c := cfg.LowercaseColor
	if b.IsUpper() {
		c = cfg.UppercaseColor
	}
	pdf.SetDrawColor(c.R, c.G, c.B)
	pdf.SetTextColor(c.R, c.G, c.B)

	x := float64(b.Left)
	y := pageHeight - float64(b.Top)
	pdf.Rect(x, y, float64(b.Width()), float64(b.Height()), "D")

	pdf.SetFont(cfg.Font.Name, fontStyle(b), cfg.Font.Size)

	ok := true
	label, err := charmap.ISO8859_1.NewEncoder().String(b.Text)
	if err != nil {
		ok = false
		label = "?"
	}
	labelX := (float64(b.Left+b.Right) - pdf.GetStringWidth(label)) / 2
	labelY := pageHeight - float64(b.Bottom) + cfg.LabelOffset + cfg.Font.Size
	pdf.Text(labelX, labelY, label)
	return ok
}

// fontStyle maps the box attributes to an fpdf style string.
func fontStyle(b boxfile.Box) string {
	style := ""
	if b.Bold {
		style += "B"
	}
	if b.Italic {
		style += "I"
	}
	if b.Underline {
		style += "U"
	}
	return style
}
