// Command figures draws two figures on a 500x500 SVG canvas and animates
// them trading places.
//
// Usage:
//
//	figures -choice1 lion -x1 100 -y1 100 -choice2 dog -x2 300 -y2 300 -out scene.svg
//	figures -config scene.toml -frames frames/ -fps 30
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	figures "github.com/vasalvit/svgfigures"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run parses args, renders the scene and writes it. Errors are logged to
// stderr before being returned.
func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("figures", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML scene file; flags set explicitly override it")
	choice1 := fs.String("choice1", "lion", "First figure: lion, dog, dog2 or trumpeter")
	x1 := fs.Float64("x1", 100, "First figure origin x")
	y1 := fs.Float64("y1", 100, "First figure origin y")
	mode1 := fs.String("mode1", "normal", "First figure mode")
	choice2 := fs.String("choice2", "dog", "Second figure")
	x2 := fs.Float64("x2", 300, "Second figure origin x")
	y2 := fs.Float64("y2", 300, "Second figure origin y")
	mode2 := fs.String("mode2", "normal", "Second figure mode")
	origins := fs.String("origins", "no", "Mark figure origins: yes or no")
	out := fs.String("out", "", "Output SVG path (default stdout)")
	settle := fs.Bool("settle", false, "Write the state after the swap instead of the animation")
	framesDir := fs.String("frames", "", "Write one SVG per animation frame into this directory")
	fps := fs.Int("fps", 30, "Frames per second for -frames")
	verbose := fs.Bool("v", false, "Verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := figures.DefaultSceneConfig()
	if *configPath != "" {
		var err error
		cfg, err = figures.LoadSceneConfig(*configPath)
		if err != nil {
			log.Error("loading config", "path", *configPath, "err", err)
			return err
		}
		log.Debug("loaded config", "path", *configPath)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "choice1":
			cfg.First.Kind = figures.Kind(*choice1)
		case "x1":
			cfg.First.X = *x1
		case "y1":
			cfg.First.Y = *y1
		case "mode1":
			cfg.First.Mode = figures.Mode(*mode1)
		case "choice2":
			cfg.Second.Kind = figures.Kind(*choice2)
		case "x2":
			cfg.Second.X = *x2
		case "y2":
			cfg.Second.Y = *y2
		case "mode2":
			cfg.Second.Mode = figures.Mode(*mode2)
		case "origins":
			cfg.ShowOrigin = *origins == "yes"
		}
	})

	for _, sel := range []figures.Selection{cfg.First, cfg.Second} {
		f, ok := figures.Lookup(sel.Kind)
		switch {
		case !ok:
			log.Warn("unknown figure, leaving its slot empty", "kind", sel.Kind)
		case sel.Mode != "" && !f.Supports(sel.Mode):
			log.Warn("figure has no such mode, drawing it normally", "kind", sel.Kind, "mode", sel.Mode)
		}
	}

	doc, _ := cfg.Render()
	log.Debug("composed scene", "first", cfg.First.Kind, "second", cfg.Second.Kind, "span", doc.Span())

	if *framesDir != "" {
		paths, err := doc.WriteFrames(*framesDir, *fps)
		if err != nil {
			log.Error("writing frames", "err", err)
			return err
		}
		log.Info("wrote frames", "count", len(paths), "dir", *framesDir)
		return nil
	}

	if *settle {
		doc.Settle()
	}
	if err := writeDocument(doc, stdout, *out, *settle); err != nil {
		log.Error("writing svg", "err", err)
		return err
	}
	return nil
}

func writeDocument(doc *figures.Document, stdout io.Writer, path string, static bool) error {
	encode := doc.Encode
	if static {
		encode = doc.EncodeFrame
	}
	if path == "" {
		return encode(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
