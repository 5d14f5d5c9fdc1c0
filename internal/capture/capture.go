// Package capture grabs screen content and turns it into PNG artifacts.
package capture

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kbinani/screenshot"

	"github.com/mskpairprogrammer/barchart/internal/config"
)

// Screen captures the primary display, or a fixed region of it when one
// is configured.
type Screen struct {
	region *config.Region
}

func NewScreen(region *config.Region) *Screen {
	return &Screen{region: region}
}

// Capture grabs the configured screen area.
func (s *Screen) Capture() (image.Image, error) {
	if screenshot.NumActiveDisplays() <= 0 {
		return nil, fmt.Errorf("no active displays found")
	}

	bounds := screenshot.GetDisplayBounds(0)
	if s.region != nil {
		min := image.Point{X: s.region.Left, Y: s.region.Top}
		bounds = image.Rectangle{
			Min: min,
			Max: min.Add(image.Point{X: s.region.Width, Y: s.region.Height}),
		}
	}

	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("capture %v: %w", bounds, err)
	}
	return img, nil
}

// SavePNG writes img to path, creating parent directories as needed.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
