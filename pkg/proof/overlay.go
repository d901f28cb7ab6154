package proof

import (
	"fmt"

	"github.com/gardar/boxtrain/pkg/boxfile"
	"github.com/gardar/boxtrain/pkg/document"
)

var _ document.Renderer = (*Overlay)(nil)

// Overlay is a document.Renderer that keeps the most recent selection so it
// can be written as a proof on request.
type Overlay struct {
	boxes         []boxfile.Box
	width, height int
	renders       int
}

// Render remembers the selection. It is called by the document after every
// change.
func (o *Overlay) Render(boxes []boxfile.Box, width, height int) {
	o.boxes = append(o.boxes[:0], boxes...)
	o.width, o.height = width, height
	o.renders++
}

// Boxes returns the remembered selection.
func (o *Overlay) Boxes() []boxfile.Box {
	return append([]boxfile.Box(nil), o.boxes...)
}

// Renders returns how many selections have been received.
func (o *Overlay) Renders() int { return o.renders }

// Proof draws the remembered selection over imageData. The image must have
// the size the document reported.
func (o *Overlay) Proof(imageData []byte, cfg Config) ([]byte, error) {
	info, err := ImageInfo(imageData)
	if err != nil {
		return nil, err
	}
	if o.width != 0 && (info.Width != o.width || info.Height != o.height) {
		return nil, fmt.Errorf("image is %dx%d, selection was made on %dx%d",
			info.Width, info.Height, o.width, o.height)
	}
	if len(o.boxes) > 0 {
		cfg.Page = o.boxes[0].Page
	}
	return Render(imageData, o.boxes, cfg)
}
