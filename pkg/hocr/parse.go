package hocr

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

// ParseHOCR converts raw hOCR data into a structured HOCR object.
// Documents declaring a charset other than UTF-8 are decoded as ISO-8859-1.
func ParseHOCR(data []byte) (HOCR, error) {
	result := HOCR{Metadata: make(map[string]string)}

	if enc := declaredCharset(data); enc != "" && enc != "utf-8" && enc != "utf8" {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return result, fmt.Errorf("failed to decode %s: %w", enc, err)
		}
		data = decoded
	}

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return result, err
	}

	extractDocumentMeta(&result, doc)

	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if hasClass(n, "ocr_page") {
			result.Pages = append(result.Pages, processPage(n))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)

	if len(result.Pages) == 0 {
		return result, fmt.Errorf("no ocr_page elements found in HOCR data")
	}
	return result, nil
}

// declaredCharset returns the lower-cased charset named in a meta tag, or "".
func declaredCharset(data []byte) string {
	const key = "charset="
	lower := make([]byte, len(data))
	for i, c := range data {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		lower[i] = c
	}
	i := bytes.Index(lower, []byte(key))
	if i < 0 {
		return ""
	}
	rest := bytes.TrimLeft(lower[i+len(key):], "\"'")
	if end := bytes.IndexAny(rest, "\"';> \t\r\n/"); end >= 0 {
		rest = rest[:end]
	}
	return string(rest)
}

// ParseTitle breaks down an hOCR title attribute into its components
// Example input: "bbox 100 200 300 400; x_wconf 95"
func ParseTitle(title string) map[string][]string {
	result := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		items := strings.Fields(part)
		if len(items) > 0 {
			result[items[0]] = items[1:]
		}
	}
	return result
}

// ParseBoundingBox extracts the bbox property of a title attribute.
func ParseBoundingBox(title string) (BoundingBox, bool) {
	v := ParseTitle(title)["bbox"]
	if len(v) < 4 {
		return BoundingBox{}, false
	}
	var c [4]int
	for i := range c {
		n, err := strconv.Atoi(v[i])
		if err != nil {
			return BoundingBox{}, false
		}
		c[i] = n
	}
	return BoundingBox{X1: c[0], Y1: c[1], X2: c[2], Y2: c[3]}, true
}

// extractDocumentMeta extracts document-level metadata from the head section
func extractDocumentMeta(result *HOCR, doc *html.Node) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "html":
				if lang := getAttrVal(n, "lang"); lang != "" {
					result.Language = lang
				}
			case "title":
				if n.FirstChild != nil {
					result.Title = n.FirstChild.Data
				}
			case "meta":
				name, content := getAttrVal(n, "name"), getAttrVal(n, "content")
				if strings.HasPrefix(name, "ocr-") && content != "" {
					result.Metadata[name] = content
				}
			case "body":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
}

// processPage extracts page information and its lines. Words found outside
// any ocr_line are gathered into lines of their own.
func processPage(n *html.Node) Page {
	page := Page{ID: getAttrVal(n, "id")}
	title := getAttrVal(n, "title")
	page.BBox, _ = ParseBoundingBox(title)
	props := ParseTitle(title)
	if image := props["image"]; len(image) > 0 {
		page.ImageName = strings.Trim(image[0], "\"")
	}
	if ppageno := props["ppageno"]; len(ppageno) > 0 {
		page.PageNumber, _ = strconv.Atoi(ppageno[0])
	}

	var loose *Line
	flush := func() {
		if loose != nil {
			page.Lines = append(page.Lines, *loose)
			loose = nil
		}
	}

	var collect func(*html.Node)
	collect = func(node *html.Node) {
		switch {
		case hasClass(node, "ocr_line"):
			flush()
			page.Lines = append(page.Lines, processLine(node))
			return
		case hasClass(node, "ocrx_word"):
			if loose == nil {
				loose = &Line{}
			}
			w := processWord(node)
			loose.Words = append(loose.Words, w)
			loose.BBox = loose.BBox.Union(w.BBox)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collect(c)
	}
	flush()
	return page
}

// processLine extracts line information and its words
func processLine(n *html.Node) Line {
	line := Line{ID: getAttrVal(n, "id")}
	title := getAttrVal(n, "title")
	line.BBox, _ = ParseBoundingBox(title)
	if baseline := ParseTitle(title)["baseline"]; len(baseline) > 0 {
		line.Baseline = strings.Join(baseline, " ")
	}

	var extractWords func(*html.Node)
	extractWords = func(node *html.Node) {
		if hasClass(node, "ocrx_word") {
			line.Words = append(line.Words, processWord(node))
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			extractWords(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractWords(c)
	}
	return line
}

// processWord extracts the text, position and style of a word element
func processWord(n *html.Node) Word {
	word := Word{ID: getAttrVal(n, "id")}
	title := getAttrVal(n, "title")
	word.BBox, _ = ParseBoundingBox(title)
	if conf := ParseTitle(title)["x_wconf"]; len(conf) > 0 {
		word.Confidence, _ = strconv.ParseFloat(conf[0], 64)
	}

	var text strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		switch c.Type {
		case html.TextNode:
			text.WriteString(c.Data)
		case html.ElementNode:
			switch c.Data {
			case "strong", "b":
				word.Bold = true
			case "em", "i":
				word.Italic = true
			case "u":
				word.Underline = true
			}
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			walk(cc)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	word.Text = strings.TrimSpace(text.String())
	return word
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(getAttrVal(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

// Get the value of a specific attribute from a node
func getAttrVal(n *html.Node, attrName string) string {
	for _, attr := range n.Attr {
		if attr.Key == attrName {
			return attr.Val
		}
	}
	return ""
}
