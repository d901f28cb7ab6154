// boxproof draws the boxes of a boxfile over their page image as a PDF, and
// converts between boxfiles and hOCR.
//
// Usage:
//
//	boxproof -image page.tif [options]
//
// Required flags:
//
//	-image string   Path to the page image
//
// Input options:
//
//	-box string     Boxfile to read (default: the image path with a .box extension)
//	-hocr string    Read the boxes from an hOCR file instead of the boxfile
//
// Output options (at least one required):
//
//	-output string      Path to save the proof PDF
//	-write-box string   Path to save the boxes as a boxfile
//	-export-hocr string Path to save the boxes as hOCR
//
// Processing options:
//
//	-config string  Path to a YAML settings file
//	-page int       Boxfile page to draw (default 0)
//	-overwrite      Overwrite output files if they exist
//	-debug          Print details while drawing
//
// Examples:
//
// Check a boxfile:
//
//	boxproof -image eng.exp0.tif -output eng.exp0.pdf
//
// Start a boxfile from Tesseract hOCR output:
//
//	boxproof -image eng.exp0.tif -hocr eng.exp0.hocr -write-box eng.exp0.box
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gardar/boxtrain/internal/config"
	"github.com/gardar/boxtrain/pkg/boxfile"
	"github.com/gardar/boxtrain/pkg/document"
	"github.com/gardar/boxtrain/pkg/hocr"
	"github.com/gardar/boxtrain/pkg/proof"
)

func main() {
	imagePath := flag.String("image", "", "Path to the page image (required)")
	boxPath := flag.String("box", "", "Boxfile to read (default: image path with .box extension)")
	hocrPath := flag.String("hocr", "", "Read the boxes from this hOCR file instead of the boxfile")
	outputPath := flag.String("output", "", "Output proof PDF path")
	writeBoxPath := flag.String("write-box", "", "Save the boxes as a boxfile")
	exportHOCRPath := flag.String("export-hocr", "", "Save the boxes as hOCR")
	configPath := flag.String("config", "", "Path to a YAML settings file")
	page := flag.Int("page", 0, "Boxfile page to draw")
	overwrite := flag.Bool("overwrite", false, "Overwrite output files if they already exist")
	debug := flag.Bool("debug", false, "Enable debug mode")
	flag.Parse()

	if *imagePath == "" {
		fmt.Println("Error: Must provide -image path")
		os.Exit(1)
	}
	if *outputPath == "" && *writeBoxPath == "" && *exportHOCRPath == "" {
		fmt.Println("Error: Must provide at least one of -output, -write-box or -export-hocr")
		os.Exit(1)
	}
	for _, p := range []string{*outputPath, *writeBoxPath, *exportHOCRPath} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil && !*overwrite {
			fmt.Printf("Output file %s already exists. Use -overwrite to overwrite.\n", p)
			os.Exit(1)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	proofCfg := cfg.ProofConfig()
	proofCfg.Debug = *debug
	proofCfg.Page = *page

	imageData, err := os.ReadFile(*imagePath)
	if err != nil {
		fmt.Printf("Failed to read image: %v\n", err)
		os.Exit(1)
	}
	info, err := proof.ImageInfo(imageData)
	if err != nil {
		fmt.Printf("Image %s has invalid format: %v\n", *imagePath, err)
		os.Exit(1)
	}
	if *debug {
		fmt.Printf("Image is of type %s, %dx%d\n", info.Format, info.Width, info.Height)
	}

	boxes, err := readBoxes(*imagePath, *boxPath, *hocrPath, info.Height)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("Read %d boxes\n", len(boxes))

	if *writeBoxPath != "" {
		if err := os.WriteFile(*writeBoxPath, []byte(boxfile.Format(boxes)), 0644); err != nil {
			fmt.Printf("Failed to write boxfile: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Boxfile written:", *writeBoxPath)
	}

	if *exportHOCRPath != "" {
		out, err := hocr.GenerateHOCRDocument(hocr.FromBoxes(boxes, info.Width, info.Height))
		if err != nil {
			fmt.Printf("Failed to generate hOCR: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*exportHOCRPath, []byte(out), 0644); err != nil {
			fmt.Printf("Failed to write hOCR: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ hOCR written:", *exportHOCRPath)
	}

	if *outputPath != "" {
		pdf, err := proof.Render(imageData, boxes, proofCfg)
		if err != nil {
			fmt.Printf("Error drawing proof: %v\n", err)
			os.Exit(1)
		}
		if *debug {
			layers, err := proof.Layers(pdf)
			if err == nil {
				fmt.Println("Layers in proof:")
				for i, l := range layers {
					fmt.Printf("  %d. %s\n", i+1, l)
				}
			}
		}
		if err := os.WriteFile(*outputPath, pdf, 0666); err != nil {
			fmt.Printf("Failed to write output PDF: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Proof PDF created:", *outputPath)
	}
}

// readBoxes loads the boxes from hOCR when hocrPath is set, otherwise from
// the boxfile. Invalid boxfile lines are reported and skipped.
func readBoxes(imagePath, boxPath, hocrPath string, imageHeight int) ([]boxfile.Box, error) {
	if hocrPath != "" {
		data, err := os.ReadFile(hocrPath)
		if err != nil {
			return nil, fmt.Errorf("Failed to read hOCR file: %v", err)
		}
		doc, err := hocr.ParseHOCR(data)
		if err != nil {
			return nil, fmt.Errorf("Failed to parse hOCR data: %v", err)
		}
		return hocr.ToBoxes(doc, imageHeight), nil
	}

	if boxPath == "" {
		boxPath = document.BoxPath(imagePath)
	}
	data, err := os.ReadFile(boxPath)
	if err != nil {
		return nil, fmt.Errorf("Failed to read boxfile: %v", err)
	}
	return boxfile.ParseAll(string(data), func(line int, raw string) {
		fmt.Printf("Warning: invalid line %d: %q\n", line+1, raw)
	}), nil
}
