package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxPath(t *testing.T) {
	assert.Equal(t, "/data/eng.font.exp0.box", BoxPath("/data/eng.font.exp0.tif"))
	assert.Equal(t, "page.box", BoxPath("page"))
}

func TestFileStore(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "page.png")
	s := NewFileStore(image, "")
	assert.Equal(t, filepath.Join(dir, "page.box.autosave"), s.ShadowPath())

	_, err := s.ReadBoxfile()
	assert.Error(t, err, "missing image")

	require.NoError(t, os.WriteFile(image, []byte("png"), 0644))
	_, err = s.ReadBoxfile()
	assert.Error(t, err, "missing boxfile")

	require.NoError(t, s.WriteBoxfile("a 1 2 3 4 0\n"))
	text, err := s.ReadBoxfile()
	require.NoError(t, err)
	assert.Equal(t, "a 1 2 3 4 0\n", text)

	require.NoError(t, s.WriteShadow("shadow"))
	assert.FileExists(t, s.ShadowPath())
	require.NoError(t, s.RemoveShadow())
	assert.NoFileExists(t, s.ShadowPath())
	assert.NoError(t, s.RemoveShadow(), "removing a missing shadow is fine")
}

func TestDocumentWithFileStore(t *testing.T) {
	dir := t.TempDir()
	image := filepath.Join(dir, "page.tif")
	require.NoError(t, os.WriteFile(image, nil, 0644))
	s := NewFileStore(image, ".bak")
	require.NoError(t, s.WriteBoxfile(page))
	require.NoError(t, s.WriteShadow("stale"))

	d, _ := newDoc(t, "", WithStore(s))
	require.NoError(t, d.Open())
	require.NoError(t, d.Retype('z'))

	_, err := d.Save()
	require.NoError(t, err)
	data, err := os.ReadFile(s.BoxPath)
	require.NoError(t, err)
	assert.Equal(t, "z 10 0 20 10 0\nb 20 0 30 10 0\nc 30 0 40 10 0\n", string(data))
	assert.NoFileExists(t, s.ShadowPath())
}
