package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"stickybar/pkg/affix"
	"stickybar/pkg/html"
	"stickybar/pkg/js"
	"stickybar/pkg/measure"
	"stickybar/pkg/render"
)

const (
	viewportWidth  = 1024.0
	viewportHeight = 768.0
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input.html> <outdir> [scrollTop...]\n", os.Args[0])
		os.Exit(1)
	}
	inputFile := os.Args[1]
	outDir := os.Args[2]

	content, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}
	doc, err := html.Parse(string(content))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	m := measure.NewPageMeasurer(doc, viewportWidth, viewportHeight)
	engine := js.New(m, affix.Capabilities{Transform: true, Transform3D: true})
	if err := engine.Execute(doc); err != nil {
		fmt.Fprintf(os.Stderr, "Script error: %v\n", err)
		os.Exit(1)
	}
	sidebars := engine.Sidebars()
	if len(sidebars) == 0 {
		fmt.Fprintln(os.Stderr, "Page constructed no sticky sidebars")
		os.Exit(1)
	}

	positions, err := scrollPositions(os.Args[3:], m.DocumentHeight())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bad scroll position: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	renderer := render.NewRenderer(480, 640)
	s := sidebars[0]
	for i, pos := range positions {
		m.SetScroll(pos, 0)
		for _, sb := range sidebars {
			sb.HandleScroll()
		}

		frame := render.Capture(s, m, 0, 0, m.DocumentHeight())
		out := filepath.Join(outDir, fmt.Sprintf("frame-%03d.png", i))
		if err := renderer.SavePNG(out, frame); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving frame: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("frame %3d: scroll=%-6.0f mode=%-17s translateY=%.0f\n",
			i, pos, s.Mode(), s.TranslateY())
	}
	fmt.Printf("Rendered %d frames to %s\n", len(positions), outDir)
}

// scrollPositions parses explicit positions, or sweeps the scrollable
// range in even steps when none are given.
func scrollPositions(args []string, documentHeight float64) ([]float64, error) {
	if len(args) > 0 {
		out := make([]float64, len(args))
		for i, a := range args {
			v, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", a, err)
			}
			out[i] = v
		}
		return out, nil
	}

	const steps = 12
	maxScroll := documentHeight - viewportHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	out := make([]float64, 0, steps+1)
	for i := 0; i <= steps; i++ {
		out = append(out, maxScroll*float64(i)/steps)
	}
	return out, nil
}
