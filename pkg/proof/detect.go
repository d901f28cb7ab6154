package proof

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var ocgName = regexp.MustCompile(`/Type\s*/OCG\s*/Name\s*\(((?:\\.|[^\\)])+)\)`)

// Layers returns the names of the optional content groups (layers) in a
// PDF, in the order they are defined.
func Layers(pdfData []byte) ([]string, error) {
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("empty PDF data")
	}

	var layers []string
	seen := make(map[string]bool)
	for _, m := range ocgName.FindAllSubmatch(pdfData, -1) {
		name := unescapePDFString(string(m[1]))
		if strings.HasPrefix(name, "\xfe\xff") {
			decoded, err := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().String(name)
			if err == nil {
				name = decoded
			}
		}
		if !seen[name] {
			seen[name] = true
			layers = append(layers, name)
		}
	}
	return layers, nil
}

func unescapePDFString(s string) string {
	return strings.NewReplacer(`\(`, "(", `\)`, ")", `\\`, `\`, `\r`, "\r").Replace(s)
}
