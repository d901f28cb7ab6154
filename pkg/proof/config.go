package proof

import (
	"io"
)

// Config holds user options for drawing a proof
type Config struct {
	Debug          bool      // Log every box drawn
	LayerName      string    // Name of the PDF layer holding the boxes
	Page           int       // Boxfile page drawn on the image
	LabelOffset    float64   // Gap between a box and its label
	LineWidth      float64   // Width of the box outlines
	LowercaseColor Color     // Outline and label color of boxes with lower case text
	UppercaseColor Color     // Outline and label color of boxes with upper case text
	LogWarnings    bool      // Whether to print warnings
	Logger         io.Writer // Custom logger for warnings (nil = stdout)
	Font           FontConfig
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Debug:          false,
		LayerName:      "Boxes",
		Page:           0,
		LabelOffset:    2,
		LineWidth:      1,
		LowercaseColor: Red,
		UppercaseColor: Blue,
		LogWarnings:    true,
		Logger:         nil, // stdout
		Font:           DefaultFont,
	}
}

// FontConfig contains font settings for box labels
type FontConfig struct {
	Name string  // Font name (e.g., "Courier")
	Size float64 // Label font size in points
}

// DefaultFont is a monospaced core font, so labels line up like the boxfile
var DefaultFont = FontConfig{
	Name: "Courier",
	Size: 20,
}

// Color is an RGB color with 0-255 components
type Color struct {
	R, G, B int
}

var (
	Red  = Color{255, 0, 0}
	Blue = Color{0, 0, 255}
)
