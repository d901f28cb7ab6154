package hocr

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/gardar/boxtrain/pkg/boxfile"
)

const tesseractPage = `<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="is" lang="is">
 <head>
  <title>scan</title>
  <meta http-equiv="Content-Type" content="text/html;charset=utf-8"/>
  <meta name="ocr-system" content="tesseract 5.3.0"/>
 </head>
 <body>
  <div class="ocr_page" id="page_1" title='image "scan.png"; bbox 0 0 200 100; ppageno 0'>
   <div class="ocr_carea" id="block_1_1" title="bbox 10 10 190 40">
    <p class="ocr_par" id="par_1_1" title="bbox 10 10 190 40">
     <span class="ocr_line" id="line_1_1" title="bbox 10 10 190 40; baseline 0 -5">
      <span class="ocrx_word" id="word_1_1" title="bbox 10 10 60 40; x_wconf 96"><strong>Góðan</strong></span>
      <span class="ocrx_word" id="word_1_2" title="bbox 70 12 190 40; x_wconf 91"><em><u>dag</u></em></span>
     </span>
    </p>
   </div>
   <span class="ocrx_word" id="word_1_3" title="bbox 10 60 30 80">x y</span>
  </div>
 </body>
</html>`

func TestParseHOCR(t *testing.T) {
	doc, err := ParseHOCR([]byte(tesseractPage))
	require.NoError(t, err)

	assert.Equal(t, "scan", doc.Title)
	assert.Equal(t, "is", doc.Language)
	assert.Equal(t, "tesseract 5.3.0", doc.Metadata["ocr-system"])

	require.Len(t, doc.Pages, 1)
	page := doc.Pages[0]
	assert.Equal(t, "scan.png", page.ImageName)
	assert.Equal(t, 100, page.Height())
	require.Len(t, page.Lines, 2, "loose words form a line of their own")

	want := []Word{
		{ID: "word_1_1", Text: "Góðan", BBox: BoundingBox{10, 10, 60, 40}, Confidence: 96, Bold: true},
		{ID: "word_1_2", Text: "dag", BBox: BoundingBox{70, 12, 190, 40}, Confidence: 91, Italic: true, Underline: true},
	}
	if diff := cmp.Diff(want, page.Lines[0].Words); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "0 -5", page.Lines[0].Baseline)
	assert.Equal(t, BoundingBox{10, 60, 30, 80}, page.Lines[1].BBox)
}

func TestParseHOCRLatin1(t *testing.T) {
	src := strings.Replace(tesseractPage, "charset=utf-8", "charset=ISO-8859-1", 1)
	latin1, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	doc, err := ParseHOCR([]byte(latin1))
	require.NoError(t, err)
	assert.Equal(t, "Góðan", doc.Pages[0].Lines[0].Words[0].Text)
}

func TestParseHOCRNoPages(t *testing.T) {
	_, err := ParseHOCR([]byte("<html><body><p>nothing</p></body></html>"))
	assert.Error(t, err)
}

func TestParseTitle(t *testing.T) {
	props := ParseTitle("bbox 1 2 3 4;  x_wconf 95 ;")
	assert.Equal(t, map[string][]string{"bbox": {"1", "2", "3", "4"}, "x_wconf": {"95"}}, props)

	_, ok := ParseBoundingBox("bbox 1 2 3")
	assert.False(t, ok)
	_, ok = ParseBoundingBox("bbox 1 2 x 4")
	assert.False(t, ok)
}

func TestToBoxes(t *testing.T) {
	doc, err := ParseHOCR([]byte(tesseractPage))
	require.NoError(t, err)

	got := ToBoxes(doc, 0)
	want := []boxfile.Box{
		{Text: "Góðan", Left: 10, Right: 60, Top: 90, Bottom: 60, Bold: true, Valid: true},
		{Text: "dag", Left: 70, Right: 190, Top: 88, Bottom: 60, Italic: true, Underline: true, Valid: true},
		{Text: "xy", Left: 10, Right: 30, Top: 40, Bottom: 20, Valid: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("boxes mismatch (-want +got):\n%s", diff)
	}
}

func TestToBoxesFallbackHeight(t *testing.T) {
	doc := HOCR{Pages: []Page{{Lines: []Line{{Words: []Word{{Text: "a", BBox: BoundingBox{1, 2, 3, 4}}}}}}}}
	got := ToBoxes(doc, 10)
	require.Len(t, got, 1)
	assert.Equal(t, 8, got[0].Top)
	assert.Equal(t, 6, got[0].Bottom)
}

func TestBoxesRoundTrip(t *testing.T) {
	boxes := boxfile.ParseAll("@T 10 50 20 90 0\n"+
		"h 22 50 30 80 0\n"+
		"$'e 32 50 40 75 0\n"+
		"<&> 5 10 15 30 0\n"+
		"n 10 50 20 90 1\n", nil)

	out, err := GenerateHOCRDocument(FromBoxes(boxes, 100, 100))
	require.NoError(t, err)
	assert.Contains(t, out, `class="ocrx_word" id="word_1_1_1" title="bbox 10 10 20 50"><strong>T</strong>`)
	assert.Contains(t, out, "&lt;&amp;&gt;")

	doc, err := ParseHOCR([]byte(out))
	require.NoError(t, err)
	require.Len(t, doc.Pages, 2)
	assert.Len(t, doc.Pages[0].Lines, 2, "a box left of its predecessor starts a line")
	assert.Equal(t, "boxtrain", doc.Metadata["ocr-system"])

	if diff := cmp.Diff(boxes, ToBoxes(doc, 0)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclaredCharset(t *testing.T) {
	tests := map[string]string{
		`<meta charset="UTF-8">`:                                       "utf-8",
		`<meta http-equiv="Content-Type" content="text/html;charset=ISO-8859-1"/>`: "iso-8859-1",
		`<meta charset='latin1'>`:                                      "latin1",
		`<html></html>`:                                                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, declaredCharset([]byte(in)), in)
	}
}
