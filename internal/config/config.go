// Package config loads the YAML settings file shared by the boxtrain
// commands and applies it on top of the package defaults.
//
// Example:
//
//	autosave_threshold: 20
//	shadow_suffix: ".bak"
//	proof:
//	  font: "Courier"
//	  font_size: 14
//	  label_offset: 3
//	  lowercase_color: [200, 0, 0]
//	  uppercase_color: [0, 0, 200]
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gardar/boxtrain/pkg/document"
	"github.com/gardar/boxtrain/pkg/proof"
)

// File mirrors the YAML settings file. Zero values keep the defaults.
type File struct {
	AutosaveThreshold int    `yaml:"autosave_threshold"`
	ShadowSuffix      string `yaml:"shadow_suffix"`
	Proof             Proof  `yaml:"proof"`
}

// Proof holds the proof rendering settings.
type Proof struct {
	Font           string  `yaml:"font"`
	FontSize       float64 `yaml:"font_size"`
	LabelOffset    float64 `yaml:"label_offset"`
	LayerName      string  `yaml:"layer_name"`
	LowercaseColor []int   `yaml:"lowercase_color"`
	UppercaseColor []int   `yaml:"uppercase_color"`
}

// Load reads the settings file at path. An empty path yields an empty File.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	return f, f.Validate()
}

// Validate checks the values that have no sensible interpretation.
func (f File) Validate() error {
	if f.AutosaveThreshold < 0 {
		return errors.New("config: autosave_threshold must be >= 0")
	}
	if f.Proof.FontSize < 0 {
		return errors.New("config: proof.font_size must be >= 0")
	}
	for name, c := range map[string][]int{
		"lowercase_color": f.Proof.LowercaseColor,
		"uppercase_color": f.Proof.UppercaseColor,
	} {
		if c == nil {
			continue
		}
		if len(c) != 3 {
			return fmt.Errorf("config: proof.%s needs 3 components, got %d", name, len(c))
		}
		for _, v := range c {
			if v < 0 || v > 255 {
				return fmt.Errorf("config: proof.%s component %d out of range", name, v)
			}
		}
	}
	return nil
}

// Document returns the document defaults overridden by the file.
func (f File) Document() document.Config {
	cfg := document.DefaultConfig()
	if f.AutosaveThreshold > 0 {
		cfg.AutosaveThreshold = f.AutosaveThreshold
	}
	if f.ShadowSuffix != "" {
		cfg.ShadowSuffix = f.ShadowSuffix
	}
	return cfg
}

// ProofConfig returns the proof defaults overridden by the file.
func (f File) ProofConfig() proof.Config {
	cfg := proof.DefaultConfig()
	p := f.Proof
	if p.Font != "" {
		cfg.Font.Name = p.Font
	}
	if p.FontSize > 0 {
		cfg.Font.Size = p.FontSize
	}
	if p.LabelOffset > 0 {
		cfg.LabelOffset = p.LabelOffset
	}
	if p.LayerName != "" {
		cfg.LayerName = p.LayerName
	}
	if len(p.LowercaseColor) == 3 {
		cfg.LowercaseColor = proof.Color{R: p.LowercaseColor[0], G: p.LowercaseColor[1], B: p.LowercaseColor[2]}
	}
	if len(p.UppercaseColor) == 3 {
		cfg.UppercaseColor = proof.Color{R: p.UppercaseColor[0], G: p.UppercaseColor[1], B: p.UppercaseColor[2]}
	}
	return cfg
}
