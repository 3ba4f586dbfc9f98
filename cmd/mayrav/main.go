// Command mayrav renders the recital pitch page to a PNG.
//
// The page is mounted in a headless engine, scrolled end to end so every
// section plays its reveal animation, then scrolled back to the top and
// rasterized once the tree settles.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/mafeblanco565/mayrav/cmd/mayrav/internal/config"
	"github.com/mafeblanco565/mayrav/internal/page"
	"github.com/mafeblanco565/mayrav/pkg/engine"
	"github.com/mafeblanco565/mayrav/pkg/graphics"
	"github.com/mafeblanco565/mayrav/pkg/widgets"
)

const maxFramesPerSettle = 600

func main() {
	log.SetFlags(0)
	log.SetPrefix("mayrav: ")

	root := flag.String("root", "", "project root (default: nearest go.mod)")
	output := flag.String("o", "", "output path (default: render.output from site.yaml)")
	flag.Parse()

	if err := run(*root, *output); err != nil {
		log.Fatal(err)
	}
}

func run(root, output string) error {
	var err error
	if root == "" {
		root, err = config.FindProjectRoot()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	site := page.DefaultSite()
	if cfg.Description != "" {
		site.Description = cfg.Description
	}
	if cfg.Contact != "" {
		site.Contact = cfg.Contact
	}

	controller := widgets.NewScrollController()
	app := page.App{
		Site:       site,
		Controller: controller,
		OnContact: func(email string) {
			log.Printf("contact: mailto:%s", email)
		},
	}

	size := graphics.Size{Width: cfg.Width, Height: cfg.Height}
	eng := engine.New(size)
	if err := eng.Mount(app); err != nil {
		return err
	}
	log.Printf("rendering %s (%s) at %.0fx%.0f", cfg.SiteName, cfg.ModulePath, size.Width, size.Height)

	frame := eng.PumpUntilSettled(maxFramesPerSettle)

	// Walk the full page so every section reveals, then return to the top.
	for controller.Offset() < controller.MaxScrollExtent() {
		controller.ScrollBy(controller.ViewportExtent() * 0.8)
		if f := eng.PumpUntilSettled(maxFramesPerSettle); f != nil {
			frame = f
		}
	}
	controller.JumpTo(0)
	if f := eng.PumpUntilSettled(maxFramesPerSettle); f != nil {
		frame = f
	}
	if frame == nil {
		return fmt.Errorf("no frame produced")
	}

	canvas := graphics.NewRasterCanvas(size, graphics.ColorWhite)
	frame.Paint(canvas)

	out := output
	if out == "" {
		out = filepath.Join(root, cfg.Output)
	}
	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, canvas.Image()); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	log.Printf("wrote %s (%d ops)", out, frame.OpCount())
	return nil
}
