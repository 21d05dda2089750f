package render

import (
	"image/color"

	"axisviz/internal/camera"
	"axisviz/internal/scene"
)

// VertexFloats is the stride of the GPU vertex layout: x, y in normalized
// device coordinates followed by r, g, b, a in [0, 1].
const VertexFloats = 6

// Vertices flattens f for a GL_TRIANGLES pass (polygons as fans, markers as
// quads) and a GL_LINES pass (segments). Labels and the panel are not part of
// it.
func Vertices(f scene.Frame) (triangles, lines []float32) {
	w, h := float32(max(f.Width, 1)), float32(max(f.Height, 1))
	ndc := func(x, y float32) (float32, float32) {
		return 2*x/w - 1, 1 - 2*y/h
	}
	put := func(dst []float32, x, y float32, c color.RGBA) []float32 {
		nx, ny := ndc(x, y)
		return append(dst, nx, ny,
			float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	}
	at := func(p camera.Projection) (float32, float32) {
		return float32(p.X), float32(p.Y)
	}

	for _, poly := range f.Polygons {
		if len(poly.Corners) < 3 {
			continue
		}
		x0, y0 := at(poly.Corners[0])
		for i := 1; i+1 < len(poly.Corners); i++ {
			x1, y1 := at(poly.Corners[i])
			x2, y2 := at(poly.Corners[i+1])
			triangles = put(triangles, x0, y0, poly.Color)
			triangles = put(triangles, x1, y1, poly.Color)
			triangles = put(triangles, x2, y2, poly.Color)
		}
	}

	for _, m := range f.Markers {
		x, y := at(m.At)
		r := float32(m.Radius)
		for _, c := range [6][2]float32{{-r, -r}, {r, -r}, {r, r}, {-r, -r}, {r, r}, {-r, r}} {
			triangles = put(triangles, x+c[0], y+c[1], m.Color)
		}
	}

	for _, s := range f.Segments {
		ax, ay := at(s.A)
		bx, by := at(s.B)
		lines = put(lines, ax, ay, s.Color)
		lines = put(lines, bx, by, s.Color)
	}
	return triangles, lines
}
