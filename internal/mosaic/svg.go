package mosaic

import (
	"fmt"
	"io"
	"strings"
)

// Document is a rendered mosaic ready for serialization.
type Document struct {
	Width  int     // Source image width in pixels
	Height int     // Source image height in pixels
	Shapes []Shape // Polygons in emission order
}

// SVGOptions controls the polygon stroke attributes. The zero value
// renders stroke="none".
type SVGOptions struct {
	// Stroke is the polygon outline color as lowercase "#rrggbb";
	// empty disables the outline.
	Stroke string

	// StrokeWidth is the outline width in pixels. Only written when
	// Stroke is set.
	StrokeWidth float64
}

// WriteSVG serializes doc to w.
//
// The document is UTF-8 text: an <svg> header carrying the pixel
// dimensions, one <polygon> line per shape, and a closing </svg>. Every
// coordinate carries exactly two digits after the decimal point. Lines
// are joined with single newlines and the document does not end in one.
func WriteSVG(w io.Writer, doc Document, opts SVGOptions) error {
	lines := make([]string, 0, len(doc.Shapes)+2)
	lines = append(lines, fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`,
		doc.Width, doc.Height))
	for _, s := range doc.Shapes {
		lines = append(lines, polygonLine(s, opts))
	}
	lines = append(lines, "</svg>")

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	if err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}

func polygonLine(s Shape, opts SVGOptions) string {
	pts := make([]string, len(s.Points))
	for i, p := range s.Points {
		pts[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
	}

	stroke := `stroke="none"`
	if opts.Stroke != "" {
		stroke = fmt.Sprintf(`stroke="%s" stroke-width="%g"`, opts.Stroke, opts.StrokeWidth)
	}

	return fmt.Sprintf(`<polygon points="%s" fill="%s" %s />`,
		strings.Join(pts, " "), s.Fill, stroke)
}
