package mosaic

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/hexify/internal/hexgrid"
)

// createInMemoryImage creates a uniform in-memory test image.
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant.
func createPatternImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestHexSize(t *testing.T) {
	size, err := HexSize(100)
	if err != nil {
		t.Fatalf("HexSize failed: %v", err)
	}
	// 100 / (10·√3) = 5.7735...
	if size < 5.7735 || size > 5.7736 {
		t.Errorf("HexSize(100) = %v, want ~5.7735", size)
	}
}

func TestHexSize_DegenerateHeight(t *testing.T) {
	for _, h := range []int{0, -1, -100} {
		_, err := HexSize(h)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("HexSize(%d): got %v, want ErrInvalidParameter", h, err)
		}
	}
}

func TestSample_UniformImage(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})
	size, err := HexSize(100)
	if err != nil {
		t.Fatalf("HexSize failed: %v", err)
	}

	acc, err := Sample(img, size)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if acc.Len() == 0 {
		t.Fatal("expected at least one populated cell")
	}

	// stride = int(5.7735/2) = 2, so the sweep visits 50x50 points
	total := 0
	acc.Each(func(cell hexgrid.Axial, samples []RGB) {
		total += len(samples)
		for _, s := range samples {
			if s != (RGB{255, 0, 0}) {
				t.Fatalf("cell %+v: unexpected sample %+v", cell, s)
			}
		}
	})
	if total != 50*50 {
		t.Errorf("total sample count = %d, want %d", total, 50*50)
	}
}

func TestSample_FirstCellIsOrigin(t *testing.T) {
	img := createInMemoryImage(60, 60, color.RGBA{0, 0, 0, 255})

	acc, err := Sample(img, 4)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	// The sweep starts at pixel (0,0), which lies in cell (0,0).
	if first := acc.Cells()[0]; first != (hexgrid.Axial{Q: 0, R: 0}) {
		t.Errorf("first touched cell = %+v, want (0,0)", first)
	}
}

// The sweep order is part of the output contract: all y for a given x,
// then the next x. Verify against an independent walk of the same grid.
func TestSample_SweepOrder(t *testing.T) {
	img := createPatternImage(40, 30)
	const size = 5.0 // stride 2

	acc, err := Sample(img, size)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}

	var want []hexgrid.Axial
	seen := make(map[hexgrid.Axial]bool)
	for x := 0; x < 40; x += 2 {
		for y := 0; y < 30; y += 2 {
			cell, err := hexgrid.PixelToPointyHex(float64(x), float64(y), size)
			if err != nil {
				t.Fatalf("PixelToPointyHex failed: %v", err)
			}
			if !seen[cell] {
				seen[cell] = true
				want = append(want, cell)
			}
		}
	}

	got := acc.Cells()
	if len(got) != len(want) {
		t.Fatalf("cell count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("cell order diverges at %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSample_StrideGuard(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{0, 0, 0, 255})

	// Sizes below 2 truncate the stride to zero; the reference behavior
	// is an infinite loop, the hardened one is an explicit error.
	for _, size := range []float64{1.9, 1.0, 0.23, 0} {
		_, err := Sample(img, size)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Sample with size %v: got %v, want ErrInvalidParameter", size, err)
		}
	}
}

func TestSample_NonZeroOriginBounds(t *testing.T) {
	// Sub-images may have bounds that do not start at (0,0); sampling
	// must still index pixels inside them.
	img := image.NewRGBA(image.Rect(5, 7, 45, 47))
	for y := 7; y < 47; y++ {
		for x := 5; x < 45; x++ {
			img.Set(x, y, color.RGBA{0, 255, 0, 255})
		}
	}

	acc, err := Sample(img, 6)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	acc.Each(func(cell hexgrid.Axial, samples []RGB) {
		for _, s := range samples {
			if s != (RGB{0, 255, 0}) {
				t.Fatalf("cell %+v: unexpected sample %+v", cell, s)
			}
		}
	})
}
