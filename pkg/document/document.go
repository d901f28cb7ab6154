// Package document provides the command surface of a boxfile editing session.
//
// A Document ties a text buffer holding a boxfile to the box edits that act on
// the lines under the current selection. It owns the undo history, tracks
// unsaved changes and writes an autosave shadow every few edits.
//
// The buffer is a textsync.TextHost. Hosts that accept observers (such as
// textsync.Buffer) report the edits a user makes directly in the text; those
// edits are recorded for undo and count towards autosave just like box
// commands. Edits the document makes itself are not reported back to it.
//
// Key Features:
//
// - Apply merge, split, delete, move, stretch, attribute and retype commands to the selected boxes
// - Undo and redo any edit, one command at a time
// - Autosave to a shadow file and remove it on save or discard
// - Step through boxes and search the boxfile text
package document

import (
	"errors"
	"fmt"

	"github.com/gardar/boxtrain/pkg/boxfile"
	"github.com/gardar/boxtrain/pkg/boxops"
	"github.com/gardar/boxtrain/pkg/textsync"
	"github.com/gardar/boxtrain/pkg/undo"
)

var (
	// ErrLoad indicates the boxfile or its image could not be read.
	ErrLoad = errors.New("load failed")
	// ErrSave indicates the boxfile could not be written.
	ErrSave = errors.New("save failed")
	// ErrEmptySelection is returned by edits made with no box selected.
	ErrEmptySelection = boxops.ErrEmptySelection
)

// Renderer draws the selected boxes over the page image.
type Renderer interface {
	Render(boxes []boxfile.Box, width, height int)
}

// observable hosts report changes to observers.
type observable interface {
	AddObserver(o textsync.Observer)
}

// Document is a boxfile being edited.
type Document struct {
	cfg      Config
	host     textsync.TextHost
	sync     *textsync.Sync
	log      undo.Log
	store    Store
	renderer Renderer
	diag     textsync.Diagnostics

	width, height int // page image size handed to the renderer

	modified bool
	changes  int  // edits since the last save or autosave
	suppress bool // the next host notification was caused by the document
}

// Option configures a Document.
type Option func(*Document)

// WithStore sets where the boxfile and its shadow are kept.
func WithStore(s Store) Option {
	return func(d *Document) { d.store = s }
}

// WithRenderer sets the renderer told about every selection change.
func WithRenderer(r Renderer) Option {
	return func(d *Document) { d.renderer = r }
}

// WithDiagnostics sets the sink for unparsable lines. By default they are
// logged as warnings.
func WithDiagnostics(diag textsync.Diagnostics) Option {
	return func(d *Document) { d.diag = diag }
}

// WithImageSize sets the page image size passed to the renderer.
func WithImageSize(width, height int) Option {
	return func(d *Document) { d.width, d.height = width, height }
}

// New returns a document editing the text in host.
func New(host textsync.TextHost, cfg Config, opts ...Option) *Document {
	d := &Document{
		cfg:   cfg,
		host:  host,
		store: nopStore{},
	}
	d.diag = logDiagnostics{d}
	for _, opt := range opts {
		opt(d)
	}
	d.sync = textsync.New(host, d.diag)
	if o, ok := host.(observable); ok {
		o.AddObserver(d)
	}
	return d
}

// SetImageSize changes the page image size passed to the renderer.
func (d *Document) SetImageSize(width, height int) {
	d.width, d.height = width, height
	d.refresh()
}

// Load replaces the buffer with text and starts a fresh history with the
// caret on the first line.
func (d *Document) Load(text string) error {
	if err := (quiet{d}).Replace(0, d.host.Len(), text); err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	d.host.SetSelection(0, 0)
	d.log.Reset()
	d.modified = false
	d.changes = 0
	d.refresh()
	return nil
}

// Open loads the boxfile from the store. On failure the document is left
// as it was.
func (d *Document) Open() error {
	text, err := d.store.ReadBoxfile()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return d.Load(text)
}

// Selection returns the boxes on the selected lines.
func (d *Document) Selection() []boxfile.Box {
	return d.refresh()
}

// Range returns the lines the selection was last read from.
func (d *Document) Range() textsync.Range { return d.sync.Range() }

// Text returns the whole boxfile.
func (d *Document) Text() string { return d.host.Text() }

// Modified reports whether there are unsaved changes.
func (d *Document) Modified() bool { return d.modified }

// CanUndo reports whether there is an edit to undo.
func (d *Document) CanUndo() bool { return d.log.CanUndo() }

// CanRedo reports whether there is an undone edit to redo.
func (d *Document) CanRedo() bool { return d.log.CanRedo() }

// ApplyEdit runs cmd over the selected boxes and writes the result back in
// place of the selected lines. The rewrite is a single undo step.
func (d *Document) ApplyEdit(cmd boxops.Command) error {
	boxes := d.sync.Refresh()
	if len(boxes) == 0 {
		return fmt.Errorf("%v: %w", cmd, ErrEmptySelection)
	}

	res, err := boxops.Apply(cmd, boxes)
	if err != nil {
		return fmt.Errorf("%v: %w", cmd, err)
	}
	delta, err := d.sync.Commit(quiet{d}, res.Boxes, res.DeleteOnly)
	if err != nil {
		return fmt.Errorf("%v: %w", cmd, err)
	}

	d.debugf("%v on %v: -%q +%q", cmd, d.sync.Range(), delta.Deleted, delta.Inserted)
	d.log.Record(deltaChanges(delta)...)
	d.changed()
	d.render()
	return nil
}

// Changed records an edit made directly in the host buffer. Edits made by
// the document itself are ignored.
func (d *Document) Changed(offset int, deleted, inserted string) {
	if d.suppress {
		d.suppress = false
		return
	}
	d.log.Record(deltaChanges(textsync.Delta{Offset: offset, Deleted: deleted, Inserted: inserted})...)
	d.changed()
	d.refresh()
}

// Undo reverts the most recent edit. It does nothing if there is none.
func (d *Document) Undo() error {
	return d.replay("undo", d.log.Undo())
}

// Redo reapplies the most recently undone edit. It does nothing if there is
// none.
func (d *Document) Redo() error {
	return d.replay("redo", d.log.Redo())
}

func (d *Document) replay(what string, cs []undo.Change) error {
	if len(cs) == 0 {
		return nil
	}
	for _, c := range cs {
		d.debugf("%s %v", what, c)
		if err := undo.Apply(quiet{d}, c); err != nil {
			return fmt.Errorf("%s %v: %w", what, c, err)
		}
	}
	last := cs[len(cs)-1].Offset
	d.host.SetSelection(last, last)
	d.changed()
	d.refresh()
	return nil
}

// changed marks the document modified and autosaves every
// AutosaveThreshold edits.
func (d *Document) changed() {
	d.modified = true
	if d.cfg.AutosaveThreshold <= 0 {
		return
	}
	d.changes++
	if d.changes >= d.cfg.AutosaveThreshold {
		d.autosave()
		d.changes = 0
	}
}

func (d *Document) autosave() {
	if err := d.store.WriteShadow(d.host.Text()); err != nil {
		d.warnf("autosave failed: %v", err)
		return
	}
	d.debugf("autosaved")
}

// Save writes the boxfile and removes the autosave shadow. It returns the
// text that was saved. If writing fails the document stays modified and the
// shadow is kept.
func (d *Document) Save() (string, error) {
	text := d.host.Text()
	if err := d.store.WriteBoxfile(text); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSave, err)
	}
	d.modified = false
	d.changes = 0
	if err := d.store.RemoveShadow(); err != nil {
		d.warnf("cannot remove autosave file: %v", err)
	}
	return text, nil
}

// Discard drops the autosave shadow of a document closed without saving.
func (d *Document) Discard() error {
	return d.store.RemoveShadow()
}

func (d *Document) refresh() []boxfile.Box {
	boxes := d.sync.Refresh()
	d.render()
	return boxes
}

func (d *Document) render() {
	if d.renderer != nil {
		d.renderer.Render(d.sync.Boxes(), d.width, d.height)
	}
}
