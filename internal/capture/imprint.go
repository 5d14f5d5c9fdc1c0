package capture

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Imprint appends a caption strip to the bottom of the image.
func Imprint(img image.Image, caption string) image.Image {
	const padding = 12
	const borderSize = 1

	w := img.Bounds().Dx()
	h := img.Bounds().Dy() + padding*2 + borderSize
	dc := gg.NewContext(w, h)

	dc.DrawImage(img, 0, 0)

	yLine := float64(img.Bounds().Dy())
	dc.SetColor(color.White)
	dc.DrawRectangle(0, yLine, float64(w), float64(padding*2+borderSize))
	dc.Fill()
	dc.SetColor(color.Black)
	dc.DrawLine(0, yLine, float64(w), yLine)
	dc.SetLineWidth(float64(borderSize))
	dc.Stroke()
	dc.SetFontFace(basicfont.Face7x13)
	dc.DrawStringAnchored(caption, float64(w)/2, yLine+padding, 0.5, 0.35)

	return dc.Image()
}
