package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/hexify/internal/config"
	"github.com/ironsheep/hexify/internal/mosaic"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version before flag parsing so it works without -input
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("hexify %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	input := flag.String("input", "",
		"Path to the input image file (required)")
	output := flag.String("output", "",
		`Path to the output SVG file (default "output.svg")`)
	size := flag.Float64("size", 0,
		"Hexagon circumradius in pixels (default: image height / (10*sqrt(3)))")
	maxWidth := flag.Int("max-width", 0,
		"Downscale images wider than this many pixels before sampling (0 = off)")
	smooth := flag.Float64("smooth", 0,
		"Gaussian smoothing radius applied before sampling (0 = off)")
	stroke := flag.String("stroke", "",
		`Polygon stroke color as "#rrggbb" (default: no stroke)`)
	strokeWidth := flag.Float64("stroke-width", 1,
		"Polygon stroke width in pixels, used with -stroke")
	configPath := flag.String("config", "",
		"Path to a YAML config file; explicit flags override its values")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := mosaic.Config{
		InputPath:   *input,
		OutputPath:  *output,
		HexSize:     *size,
		MaxWidth:    *maxWidth,
		SmoothSigma: *smooth,
		Stroke:      *stroke,
		StrokeWidth: *strokeWidth,
	}

	if *configPath != "" {
		opts, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

		if !set["input"] {
			cfg.InputPath = opts.Input
		}
		if !set["output"] {
			cfg.OutputPath = opts.Output
		}
		if !set["size"] {
			cfg.HexSize = opts.HexSize
		}
		if !set["max-width"] {
			cfg.MaxWidth = opts.MaxWidth
		}
		if !set["smooth"] {
			cfg.SmoothSigma = opts.SmoothSigma
		}
		if !set["stroke"] {
			cfg.Stroke = opts.Stroke
		}
		if !set["stroke-width"] {
			cfg.StrokeWidth = opts.StrokeWidth
		}
	}

	if cfg.InputPath == "" {
		fmt.Fprintln(os.Stderr, "hexify: -input is required")
		flag.Usage()
		os.Exit(1)
	}

	res, err := mosaic.Convert(cfg)
	if err != nil {
		log.Fatalf("Conversion failed: %v", err)
	}

	fmt.Printf("Wrote %s: %d hexagons (%dx%d, hex size %.2f)\n",
		res.OutputPath, res.Cells, res.Width, res.Height, res.HexSize)
}
