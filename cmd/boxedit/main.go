// boxedit is a line-command editor for Tesseract boxfiles.
//
// It opens the boxfile belonging to a page image (the image path with a .box
// extension), shows the boxes on the selected lines and applies edits to
// them: merge, split, delete, move, stretch, style changes and retyping.
// Every edit can be undone. Unsaved work is written to an autosave file every
// few edits and removed again when the boxfile is saved.
//
// Usage:
//
//	boxedit -image page.tif [options]
//
// Required flags:
//
//	-image string   Path to the page image
//
// Options:
//
//	-config string  Path to a YAML settings file
//	-debug          Log every edit
//
// Type help at the prompt for the list of commands.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gardar/boxtrain/internal/config"
)

func main() {
	imagePath := flag.String("image", "", "Path to the page image (required)")
	configPath := flag.String("config", "", "Path to a YAML settings file")
	debug := flag.Bool("debug", false, "Log every edit")
	flag.Parse()

	if *imagePath == "" {
		fmt.Fprintln(os.Stderr, "Error: -image flag is required")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	docCfg := cfg.Document()
	docCfg.Debug = *debug

	s, err := newSession(*imagePath, docCfg, cfg.ProofConfig(), os.Stdout)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *imagePath, err)
	}
	if err := s.loop(os.Stdin); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
