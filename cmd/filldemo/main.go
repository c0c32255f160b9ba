// Command filldemo renders line-series area fills described in a YAML file.
//
// Usage:
//
//	filldemo -config band.yaml -output band.png -phase 0.5 -lang de
//
// Without -config the built-in demo chart is rendered.
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/cmd/filldemo/internal/config"
	"github.com/gogpu/chart/describe"
	"github.com/gogpu/chart/raster"
)

//go:embed demo.yaml
var demoConfig []byte

func main() {
	var (
		configPath = flag.String("config", "", "chart description (YAML); built-in demo when empty")
		output     = flag.String("output", "fill.png", "output file")
		width      = flag.Int("width", 0, "image width, overrides the config")
		height     = flag.Int("height", 0, "image height, overrides the config")
		phase      = flag.Float64("phase", 1, "animation phase in [0, 1]")
		lang       = flag.String("lang", "", "print an accessibility description in this language (BCP 47)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		chart.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	res, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	c := raster.New(res.Width, res.Height)
	c.Clear(res.Background)

	view := chart.NewCombined()
	if err := view.Register(chart.LineLayer{
		Renderer: chart.NewLineRenderer(res.Options...),
		Series:   res.Series,
	}); err != nil {
		log.Fatalf("Failed to register line layer: %v", err)
	}
	if err := view.Draw(c, res.Viewport, *phase); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	if err := c.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	if *lang != "" {
		tag, err := language.Parse(*lang)
		if err != nil {
			log.Fatalf("Invalid language %q: %v", *lang, err)
		}
		fmt.Println(describe.Chart(tag, res.Series))
	}

	log.Printf("Chart saved to %s (%dx%d)\n", *output, res.Width, res.Height)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Parse(demoConfig)
	}
	return config.Load(path)
}
