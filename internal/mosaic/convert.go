package mosaic

import (
	"bytes"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/hexify/internal/imaging"
)

// Config parameterizes a single conversion run.
type Config struct {
	// InputPath is the raster image to convert. Required.
	InputPath string

	// OutputPath is where the SVG document is written.
	// Empty defaults to "output.svg".
	OutputPath string

	// HexSize overrides the derived circumradius when positive. Zero
	// derives it from the image height as height / (10·√3).
	HexSize float64

	// MaxWidth and SmoothSigma configure preprocessing; see
	// imaging.PrepareOptions.
	MaxWidth    int
	SmoothSigma float64

	// Stroke is an optional polygon outline color ("#rrggbb"); empty
	// renders stroke="none". StrokeWidth applies only with Stroke.
	Stroke      string
	StrokeWidth float64
}

// Result summarizes a completed conversion.
type Result struct {
	OutputPath string  // Path the SVG was written to
	Width      int     // Sampled image width in pixels
	Height     int     // Sampled image height in pixels
	HexSize    float64 // Circumradius used for the grid
	Cells      int     // Number of polygons emitted
}

// Convert runs the full pipeline: load, preprocess, derive the grid size,
// sample, render, and write the SVG document to cfg.OutputPath.
//
// Errors wrap imaging.ErrDecode for unreadable inputs and
// ErrInvalidParameter for degenerate dimensions or sizes. An image whose
// sweep populates no cells still produces a valid empty document.
func Convert(cfg Config) (*Result, error) {
	out := cfg.OutputPath
	if out == "" {
		out = "output.svg"
	}

	var strokeHex string
	if cfg.Stroke != "" {
		c, err := colorful.Hex(cfg.Stroke)
		if err != nil {
			return nil, fmt.Errorf("%w: stroke color %q: %v", ErrInvalidParameter, cfg.Stroke, err)
		}
		strokeHex = c.Hex()
	}

	img, err := imaging.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	img = imaging.Prepare(img, imaging.PrepareOptions{
		MaxWidth:    cfg.MaxWidth,
		SmoothSigma: cfg.SmoothSigma,
	})

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	size := cfg.HexSize
	if size <= 0 {
		size, err = HexSize(height)
		if err != nil {
			return nil, err
		}
	}

	acc, err := Sample(img, size)
	if err != nil {
		return nil, err
	}

	doc := Document{
		Width:  width,
		Height: height,
		Shapes: Render(acc, size),
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, doc, SVGOptions{Stroke: strokeHex, StrokeWidth: cfg.StrokeWidth}); err != nil {
		return nil, err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", out, err)
	}

	return &Result{
		OutputPath: out,
		Width:      width,
		Height:     height,
		HexSize:    size,
		Cells:      len(doc.Shapes),
	}, nil
}
