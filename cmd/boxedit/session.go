package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gardar/boxtrain/pkg/boxfile"
	"github.com/gardar/boxtrain/pkg/document"
	"github.com/gardar/boxtrain/pkg/proof"
	"github.com/gardar/boxtrain/pkg/textsync"
)

// session is an editing session over one image and its boxfile.
type session struct {
	imagePath string
	buf       *textsync.Buffer
	doc       *document.Document
	store     *document.FileStore
	overlay   *proof.Overlay
	proofCfg  proof.Config
	out       io.Writer
}

func newSession(imagePath string, docCfg document.Config, proofCfg proof.Config, out io.Writer) (*session, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", document.ErrLoad, err)
	}
	info, err := proof.ImageInfo(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", document.ErrLoad, imagePath, err)
	}

	docCfg.Logger = out
	proofCfg.Logger = out
	s := &session{
		imagePath: imagePath,
		buf:       textsync.NewBuffer(""),
		store:     document.NewFileStore(imagePath, docCfg.ShadowSuffix),
		overlay:   &proof.Overlay{},
		proofCfg:  proofCfg,
		out:       out,
	}
	s.doc = document.New(s.buf, docCfg,
		document.WithStore(s.store),
		document.WithRenderer(s.overlay),
		document.WithImageSize(info.Width, info.Height),
	)
	if err := s.doc.Open(); err != nil {
		return nil, err
	}
	return s, nil
}

// loop reads commands from in until quit or end of input.
func (s *session) loop(in io.Reader) error {
	sc := bufio.NewScanner(in)
	s.show()
	for {
		fmt.Fprint(s.out, "> ")
		if !sc.Scan() {
			break
		}
		cmd, err := parseCommand(sc.Text())
		if err != nil {
			fmt.Fprintln(s.out, "Error:", err)
			continue
		}
		quit, err := s.run(cmd)
		if err != nil {
			fmt.Fprintln(s.out, "Error:", err)
		}
		if quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if s.doc.Modified() {
		fmt.Fprintf(s.out, "\nUnsaved changes kept in %s\n", s.store.ShadowPath())
		return s.store.WriteShadow(s.doc.Text())
	}
	return nil
}

// run executes cmd and reports whether the session should end.
func (s *session) run(cmd command) (bool, error) {
	switch cmd.verb {
	case verbShow:
		s.doc.Selection()
	case verbText:
		fmt.Fprint(s.out, s.doc.Text())
		return false, nil
	case verbHelp:
		fmt.Fprint(s.out, usage)
		return false, nil
	case verbSelect:
		if cmd.to > s.buf.LineCount() {
			return false, fmt.Errorf("the boxfile has %d lines", s.buf.LineCount())
		}
		q0 := s.buf.LineStart(cmd.from)
		s.buf.SetSelection(q0, max(q0, s.buf.LineStart(cmd.to)-1))
		s.doc.Selection()
	case verbNext:
		s.doc.Next()
	case verbPrevious:
		s.doc.Previous()
	case verbFind:
		if !s.doc.Find(cmd.text, cmd.forward) {
			return false, fmt.Errorf("%q not found", cmd.text)
		}
	case verbEdit:
		if err := s.doc.ApplyEdit(cmd.edit); err != nil {
			return false, err
		}
	case verbRetype:
		if err := s.doc.Retype(cmd.char); err != nil {
			return false, err
		}
	case verbUndo:
		if err := s.doc.Undo(); err != nil {
			return false, err
		}
	case verbRedo:
		if err := s.doc.Redo(); err != nil {
			return false, err
		}
	case verbSave:
		if _, err := s.doc.Save(); err != nil {
			return false, err
		}
		fmt.Fprintln(s.out, "Saved", s.store.BoxPath)
		return false, nil
	case verbProof:
		return false, s.writeProof(cmd.text)
	case verbQuit:
		if !s.doc.Modified() {
			return true, nil
		}
		if !cmd.force {
			return false, errors.New("unsaved changes, save or use quit!")
		}
		return true, s.doc.Discard()
	}
	s.show()
	return false, nil
}

// show prints the selected boxes with their line range.
func (s *session) show() {
	r := s.doc.Range()
	boxes := s.overlay.Boxes()
	mark := ""
	if s.doc.Modified() {
		mark = " *"
	}
	fmt.Fprintf(s.out, "lines %d-%d, %d boxes%s\n", r.Top+1, r.Bottom, len(boxes), mark)
	for _, b := range boxes {
		fmt.Fprintf(s.out, "  %s\n", b)
	}
	if bold, italic, underline, ok := s.doc.Attributes(); ok {
		fmt.Fprintf(s.out, "  [%s]\n", styleSummary(bold, italic, underline))
	}
}

func styleSummary(bold, italic, underline bool) string {
	flags := []struct {
		on   bool
		attr boxfile.Attribute
	}{{bold, boxfile.Bold}, {italic, boxfile.Italic}, {underline, boxfile.Underline}}

	out := ""
	for _, f := range flags {
		if !f.on {
			continue
		}
		if out != "" {
			out += " "
		}
		out += f.attr.String()
	}
	if out == "" {
		return "regular"
	}
	return out
}

func (s *session) writeProof(path string) error {
	image, err := os.ReadFile(s.imagePath)
	if err != nil {
		return err
	}
	pdf, err := s.overlay.Proof(image, s.proofCfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, pdf, 0644); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "Proof written to", path)
	return nil
}
