package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gardar/boxtrain/pkg/boxfile"
	"github.com/gardar/boxtrain/pkg/boxops"
)

// verb is what a command line asks the session to do.
type verb int

const (
	verbShow verb = iota
	verbText
	verbSelect
	verbNext
	verbPrevious
	verbFind
	verbEdit
	verbRetype
	verbUndo
	verbRedo
	verbSave
	verbProof
	verbHelp
	verbQuit
)

// command is one parsed input line.
type command struct {
	verb     verb
	edit     boxops.Command // verbEdit
	from, to int            // verbSelect, zero based half-open lines
	text     string         // verbFind query, verbProof output path
	forward  bool           // verbFind
	char     rune           // verbRetype
	force    bool           // verbQuit without saving
}

const usage = `Commands:
  show | p                      print the selected boxes
  text                          print the whole boxfile
  select N [M]                  select lines N to M (1-based)
  next | n, prev | b            step to the next or previous box
  find TEXT, rfind TEXT         search forwards or backwards
  merge, split, delete          edit the selected boxes
  move DIR [STEP]               move boxes (DIR: left right top bottom)
  stretch DIR [STEP]            grow one edge (DIR also: all)
  shrink DIR [STEP]             shrink one edge
  bold|italic|underline on|off  set a style on the selected boxes
  char C                        set the text to C and step to the next box
  undo, redo
  save
  proof FILE.pdf                draw the selection over the image
  quit, quit!                   leave; quit! drops unsaved changes
`

// parseCommand parses one line of user input.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{verb: verbShow}, nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "show", "p":
		return command{verb: verbShow}, nil
	case "text":
		return command{verb: verbText}, nil
	case "help", "?":
		return command{verb: verbHelp}, nil
	case "next", "n":
		return command{verb: verbNext}, nil
	case "prev", "b":
		return command{verb: verbPrevious}, nil
	case "undo", "u":
		return command{verb: verbUndo}, nil
	case "redo", "r":
		return command{verb: verbRedo}, nil
	case "save", "w":
		return command{verb: verbSave}, nil
	case "quit", "q":
		return command{verb: verbQuit}, nil
	case "quit!", "q!":
		return command{verb: verbQuit, force: true}, nil
	case "merge":
		return edit(boxops.Command{Op: boxops.OpMerge}), nil
	case "split":
		return edit(boxops.Command{Op: boxops.OpSplit}), nil
	case "delete", "d":
		return edit(boxops.Command{Op: boxops.OpDelete}), nil
	case "select":
		return parseSelect(args)
	case "find", "rfind":
		// Keep inner spacing of the query.
		q := strings.TrimSpace(strings.TrimSpace(line)[len(fields[0]):])
		if q == "" {
			return command{}, fmt.Errorf("%s needs some text", name)
		}
		return command{verb: verbFind, text: q, forward: name == "find"}, nil
	case "move", "stretch", "shrink":
		return parseGeometry(name, args)
	case "bold", "italic", "underline":
		return parseStyle(name, args)
	case "char":
		if len(args) != 1 || utf8.RuneCountInString(args[0]) != 1 {
			return command{}, fmt.Errorf("char needs exactly one character")
		}
		r, _ := utf8.DecodeRuneInString(args[0])
		return command{verb: verbRetype, char: r}, nil
	case "proof":
		if len(args) != 1 {
			return command{}, fmt.Errorf("proof needs an output file")
		}
		return command{verb: verbProof, text: args[0]}, nil
	}
	return command{}, fmt.Errorf("unknown command %q, try help", fields[0])
}

func edit(c boxops.Command) command {
	return command{verb: verbEdit, edit: c}
}

func parseSelect(args []string) (command, error) {
	if len(args) < 1 || len(args) > 2 {
		return command{}, fmt.Errorf("select needs one or two line numbers")
	}
	from, err := strconv.Atoi(args[0])
	if err != nil || from < 1 {
		return command{}, fmt.Errorf("bad line number %q", args[0])
	}
	to := from
	if len(args) == 2 {
		if to, err = strconv.Atoi(args[1]); err != nil || to < from {
			return command{}, fmt.Errorf("bad line number %q", args[1])
		}
	}
	return command{verb: verbSelect, from: from - 1, to: to}, nil
}

func parseGeometry(name string, args []string) (command, error) {
	if len(args) < 1 || len(args) > 2 {
		return command{}, fmt.Errorf("%s needs a direction and an optional step", name)
	}
	dir, err := boxfile.ParseDirection(args[0])
	if err != nil {
		return command{}, err
	}
	step := 1
	if len(args) == 2 {
		if step, err = strconv.Atoi(args[1]); err != nil {
			return command{}, fmt.Errorf("bad step %q", args[1])
		}
	}

	c := boxops.Command{Direction: dir, Step: step}
	switch name {
	case "move":
		if dir == boxfile.All {
			return command{}, fmt.Errorf("move needs left, right, top or bottom")
		}
		c.Op = boxops.OpMove
	case "stretch":
		c.Op = boxops.OpStretch
	case "shrink":
		c.Op = boxops.OpStretch
		c.Step = -step
	}
	return edit(c), nil
}

func parseStyle(name string, args []string) (command, error) {
	attr, err := boxfile.ParseAttribute(name)
	if err != nil {
		return command{}, err
	}
	value := true
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "on", "1", "yes":
		case "off", "0", "no":
			value = false
		default:
			return command{}, fmt.Errorf("%s takes on or off", name)
		}
	}
	return edit(boxops.Command{Op: boxops.OpSetAttribute, Attribute: attr, Value: value}), nil
}
