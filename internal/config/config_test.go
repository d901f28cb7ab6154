package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gardar/boxtrain/pkg/document"
	"github.com/gardar/boxtrain/pkg/proof"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boxtrain.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
autosave_threshold: 20
shadow_suffix: ".bak"
proof:
  font_size: 14
  uppercase_color: [0, 128, 0]
`)
	f, err := Load(path)
	require.NoError(t, err)

	doc := f.Document()
	assert.Equal(t, 20, doc.AutosaveThreshold)
	assert.Equal(t, ".bak", doc.ShadowSuffix)

	p := f.ProofConfig()
	assert.Equal(t, 14.0, p.Font.Size)
	assert.Equal(t, "Courier", p.Font.Name)
	assert.Equal(t, proof.Color{G: 128}, p.UppercaseColor)
	assert.Equal(t, proof.Red, p.LowercaseColor)
}

func TestLoadEmptyPath(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, document.DefaultConfig(), f.Document())
	assert.Equal(t, proof.DefaultConfig(), f.ProofConfig())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)

	for name, body := range map[string]string{
		"syntax":    "autosave_threshold: [",
		"negative":  "autosave_threshold: -1",
		"short rgb": "proof:\n  lowercase_color: [1, 2]",
		"range":     "proof:\n  uppercase_color: [1, 2, 300]",
	} {
		_, err := Load(writeConfig(t, body))
		assert.Error(t, err, name)
	}
}
