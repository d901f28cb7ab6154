package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardar/boxtrain/pkg/document"
	"github.com/gardar/boxtrain/pkg/proof"
)

const page = "a 10 0 20 10 0\n" +
	"b 20 0 30 10 0\n" +
	"c 30 0 40 10 0\n"

func newTestSession(t *testing.T) (*session, *bytes.Buffer, string) {
	t.Helper()
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "page.png")

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewGray(image.Rect(0, 0, 50, 20))))
	require.NoError(t, os.WriteFile(imagePath, img.Bytes(), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.box"), []byte(page), 0644))

	var out bytes.Buffer
	s, err := newSession(imagePath, document.DefaultConfig(), proof.DefaultConfig(), &out)
	require.NoError(t, err)
	return s, &out, dir
}

func TestSessionEditAndSave(t *testing.T) {
	s, out, dir := newTestSession(t)

	script := strings.Join([]string{
		"select 1 2",
		"merge",
		"undo",
		"redo",
		"next",
		"char C",
		"save",
		"quit",
	}, "\n")
	require.NoError(t, s.loop(strings.NewReader(script)))

	data, err := os.ReadFile(filepath.Join(dir, "page.box"))
	require.NoError(t, err)
	assert.Equal(t, "ab 10 0 30 10 0\nC 30 0 40 10 0\n", string(data))
	assert.Contains(t, out.String(), "lines 1-2, 2 boxes")
	assert.Contains(t, out.String(), "Saved")
}

func TestSessionQuitWithUnsavedChanges(t *testing.T) {
	s, out, dir := newTestSession(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "page.box.autosave"), []byte("old"), 0644))

	require.NoError(t, s.loop(strings.NewReader("delete\nquit\nquit!\n")))
	assert.Contains(t, out.String(), "unsaved changes")
	assert.NoFileExists(t, filepath.Join(dir, "page.box.autosave"))

	data, err := os.ReadFile(filepath.Join(dir, "page.box"))
	require.NoError(t, err)
	assert.Equal(t, page, string(data))
}

func TestSessionEOFKeepsShadow(t *testing.T) {
	s, _, dir := newTestSession(t)
	require.NoError(t, s.loop(strings.NewReader("move right 5\n")))

	data, err := os.ReadFile(filepath.Join(dir, "page.box.autosave"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "a 15 0 25 10 0\n"))
}

func TestSessionProof(t *testing.T) {
	s, out, dir := newTestSession(t)
	pdf := filepath.Join(dir, "proof.pdf")

	require.NoError(t, s.loop(strings.NewReader("select 1 3\nproof "+pdf+"\nq\n")))
	assert.Contains(t, out.String(), "Proof written to")
	assert.FileExists(t, pdf)
}

func TestSessionMissingBoxfile(t *testing.T) {
	dir := t.TempDir()
	imagePath := filepath.Join(dir, "page.png")
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewGray(image.Rect(0, 0, 5, 5))))
	require.NoError(t, os.WriteFile(imagePath, img.Bytes(), 0644))

	_, err := newSession(imagePath, document.DefaultConfig(), proof.DefaultConfig(), &bytes.Buffer{})
	assert.ErrorIs(t, err, document.ErrLoad)
}

func TestStyleSummary(t *testing.T) {
	assert.Equal(t, "regular", styleSummary(false, false, false))
	assert.Equal(t, "bold underline", styleSummary(true, false, true))
}
