package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"axisviz/internal/scene"
)

// Image is a Canvas backed by an RGBA image.
type Image struct {
	*image.RGBA
	Face font.Face
}

func NewImage(width, height int, background color.RGBA) *Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Image{RGBA: img, Face: basicfont.Face7x13}
}

func (img *Image) Plot(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	offset := img.PixOffset(x, y)
	img.Pix[offset] = c.R
	img.Pix[offset+1] = c.G
	img.Pix[offset+2] = c.B
	img.Pix[offset+3] = 255
}

func (img *Image) Fill(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(img.Rect) {
		return
	}
	if c.A == 255 {
		img.Plot(x, y, c)
		return
	}
	// c is not premultiplied; blend it over the opaque background.
	offset := img.PixOffset(x, y)
	a := uint32(c.A)
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		dst := uint32(img.Pix[offset+i])
		img.Pix[offset+i] = uint8((uint32(v)*a + dst*(255-a)) / 255)
	}
	img.Pix[offset+3] = 255
}

// Text draws s with its baseline origin just below-right of (x, y).
func (img *Image) Text(x, y int, s string, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img.RGBA,
		Src:  image.NewUniform(c),
		Face: img.Face,
		Dot:  fixed.P(x+4, y+img.Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// Panel writes the lines in the top-left corner.
func (img *Image) Panel(lines []string) {
	for i, line := range lines {
		img.Text(10, 10+i*18, line, scene.White)
	}
}

// Snapshot renders f into a new image of the frame's size.
func Snapshot(f scene.Frame) *Image {
	img := NewImage(f.Width, f.Height, scene.Black)
	Draw(img, f)
	return img
}

// WritePNG encodes the image as PNG.
func (img *Image) WritePNG(w io.Writer) error {
	return errors.Wrap(png.Encode(w, img.RGBA), "encoding png")
}
