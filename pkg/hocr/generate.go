package hocr

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/hocr.tmpl
var templateFS embed.FS

var funcs = template.FuncMap{
	"trim": strings.TrimSpace,
	"bbox": func(b BoundingBox) string {
		return fmt.Sprintf("bbox %d %d %d %d", b.X1, b.Y1, b.X2, b.Y2)
	},
}

// GenerateHOCRDocument creates an hOCR HTML document from the HOCR struct
// Uses the embedded template to generate a complete HTML document
func GenerateHOCRDocument(doc *HOCR) (string, error) {
	tmpl, err := template.New("hocr.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/hocr.tmpl")
	if err != nil {
		return "", fmt.Errorf("error parsing hOCR template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("error rendering hOCR template: %w", err)
	}
	return buf.String(), nil
}
