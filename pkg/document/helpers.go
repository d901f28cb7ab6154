package document

import (
	"fmt"
	"io"
	"os"

	"github.com/gardar/boxtrain/pkg/textsync"
	"github.com/gardar/boxtrain/pkg/undo"
)

// getLogger returns the configured logger or stdout if none is set
func (d *Document) getLogger() io.Writer {
	if d.cfg.Logger != nil {
		return d.cfg.Logger
	}
	return os.Stdout
}

func (d *Document) warnf(format string, args ...any) {
	if d.cfg.LogWarnings {
		fmt.Fprintf(d.getLogger(), "Warning: "+format+"\n", args...)
	}
}

func (d *Document) debugf(format string, args ...any) {
	if d.cfg.Debug {
		fmt.Fprintf(d.getLogger(), format+"\n", args...)
	}
}

// quiet performs host replacements the document itself initiated. The
// change notification they cause is swallowed by Changed.
type quiet struct {
	d *Document
}

func (q quiet) Replace(q0, q1 int, text string) error {
	q.d.suppress = true
	err := q.d.host.Replace(q0, q1, text)
	// A host that rejected or skipped the replacement never notified us.
	q.d.suppress = false
	return err
}

// deltaChanges turns a commit delta into the undo changes that reproduce it.
func deltaChanges(d textsync.Delta) []undo.Change {
	var out []undo.Change
	if d.Deleted != "" {
		out = append(out, undo.Change{Kind: undo.Delete, Offset: d.Offset, Text: d.Deleted})
	}
	if d.Inserted != "" {
		out = append(out, undo.Change{Kind: undo.Insert, Offset: d.Offset, Text: d.Inserted})
	}
	return out
}

// logDiagnostics reports unparsable lines on the document logger.
type logDiagnostics struct {
	d *Document
}

func (l logDiagnostics) InvalidLine(line int, raw string) {
	l.d.warnf("Invalid line %d: %q", line+1, raw)
}
