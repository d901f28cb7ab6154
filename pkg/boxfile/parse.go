package boxfile

import (
	"strconv"
	"strings"
)

// maxMarkers is the number of leading text characters that may hold markers.
const maxMarkers = 3

// Parse decodes one boxfile line.
// A line that does not split into exactly six whitespace separated fields, or
// whose numeric fields are not integers, yields a Box with Valid set to false.
func Parse(line string) Box {
	var b Box

	parts := strings.Fields(line)
	if len(parts) != 6 {
		return b
	}

	nums := make([]int, 5)
	for i, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return b
		}
		nums[i] = n
	}
	b.Left, b.Bottom, b.Right, b.Top, b.Page = nums[0], nums[1], nums[2], nums[3], nums[4]

	b.Text = parseMarkers(&b, parts[0])
	b.Valid = true
	return b
}

// parseMarkers consumes the style markers at the head of text, sets the
// matching flags on b and returns the remaining literal text. A marker is
// consumed at most once and never when it is the last character of text.
func parseMarkers(b *Box, text string) string {
	n := 0
	for n < maxMarkers && n+1 < len(text) {
		switch {
		case text[n] == '@' && !b.Bold:
			b.Bold = true
		case text[n] == '$' && !b.Italic:
			b.Italic = true
		case text[n] == '\'' && !b.Underline:
			b.Underline = true
		default:
			return text[n:]
		}
		n++
	}
	return text[n:]
}

// String encodes the box as a boxfile line without a trailing newline.
// Markers are always written in the order bold, italic, underline.
func (b Box) String() string {
	var sb strings.Builder
	if b.Bold {
		sb.WriteByte('@')
	}
	if b.Italic {
		sb.WriteByte('$')
	}
	if b.Underline {
		sb.WriteByte('\'')
	}
	sb.WriteString(b.Text)
	for _, n := range [...]int{b.Left, b.Bottom, b.Right, b.Top, b.Page} {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// Format encodes boxes as boxfile text, one newline terminated line per box.
func Format(boxes []Box) string {
	var sb strings.Builder
	for _, b := range boxes {
		sb.WriteString(b.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseAll decodes every non-blank line of text. Lines that fail to decode
// are passed to invalid, when it is not nil, with their zero-based line
// number and left out of the result.
func ParseAll(text string, invalid func(line int, raw string)) []Box {
	var boxes []Box
	for i, raw := range strings.Split(text, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		b := Parse(raw)
		if !b.Valid {
			if invalid != nil {
				invalid(i, raw)
			}
			continue
		}
		boxes = append(boxes, b)
	}
	return boxes
}
