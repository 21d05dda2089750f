// Package render draws scene frames, either into an image or onto a
// terminal screen.
package render

import (
	"image"
	"image/color"

	"axisviz/internal/camera"
	"axisviz/internal/scene"
)

// Canvas is a surface a frame can be drawn on. Coordinates are in the
// canvas's own bounds; Draw rescales the frame to fit.
type Canvas interface {
	Bounds() image.Rectangle
	// Plot draws an opaque stroke pixel.
	Plot(x, y int, c color.RGBA)
	// Fill draws a polygon interior pixel, honoring alpha.
	Fill(x, y int, c color.RGBA)
	Text(x, y int, s string, c color.RGBA)
	Panel(lines []string)
}

// Draw renders f onto cv: polygons first, then segments, markers, labels and
// the text panel.
func Draw(cv Canvas, f scene.Frame) {
	b := cv.Bounds()
	sx := float64(b.Dx()) / float64(max(f.Width, 1))
	sy := float64(b.Dy()) / float64(max(f.Height, 1))
	at := func(p camera.Projection) image.Point {
		return image.Point{
			X: b.Min.X + int(float64(p.X)*sx),
			Y: b.Min.Y + int(float64(p.Y)*sy),
		}
	}
	scale := func(n int) int {
		return int(float64(n) * min(sx, sy))
	}

	for _, poly := range f.Polygons {
		corners := make([]image.Point, len(poly.Corners))
		for i, c := range poly.Corners {
			corners[i] = at(c)
		}
		fillPolygon(corners, b, func(x, y int) { cv.Fill(x, y, poly.Color) })
	}

	for _, s := range f.Segments {
		a, e := at(s.A), at(s.B)
		r := scale(s.Width) / 2
		walkLine(a.X, a.Y, e.X, e.Y, func(x, y int) {
			brush(x, y, r, func(x, y int) { cv.Plot(x, y, s.Color) })
		})
	}

	for _, m := range f.Markers {
		p := at(m.At)
		disc(p.X, p.Y, scale(m.Radius), func(x, y int) { cv.Plot(x, y, m.Color) })
	}

	for _, l := range f.Labels {
		p := at(l.At)
		cv.Text(p.X, p.Y, l.Text, l.Color)
	}

	cv.Panel(f.Info)
}
