package render

import (
	"image"
	"math"
	"sort"
)

// walkLine visits the pixels from (x1, y1) to (x2, y2) with a DDA walk.
func walkLine(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		plot(x1, y1)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		plot(int(math.Round(x)), int(math.Round(y)))
		x += xInc
		y += yInc
	}
}

// brush visits a (2r+1) square around (x, y).
func brush(x, y, r int, plot func(x, y int)) {
	for oy := -r; oy <= r; oy++ {
		for ox := -r; ox <= r; ox++ {
			plot(x+ox, y+oy)
		}
	}
}

// disc visits the pixels within radius r of (cx, cy).
func disc(cx, cy, r int, plot func(x, y int)) {
	for oy := -r; oy <= r; oy++ {
		for ox := -r; ox <= r; ox++ {
			if ox*ox+oy*oy <= r*r {
				plot(cx+ox, cy+oy)
			}
		}
	}
}

// fillPolygon visits the interior of the polygon with an even-odd scanline
// fill, limited to clip.
func fillPolygon(corners []image.Point, clip image.Rectangle, plot func(x, y int)) {
	if len(corners) < 3 {
		return
	}
	minY, maxY := corners[0].Y, corners[0].Y
	for _, c := range corners[1:] {
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	minY = max(minY, clip.Min.Y)
	maxY = min(maxY, clip.Max.Y-1)

	xs := make([]int, 0, len(corners))
	for y := minY; y <= maxY; y++ {
		// Sample at the pixel centre so shared vertices are not counted twice.
		sy := float64(y) + 0.5
		xs = xs[:0]
		for i, a := range corners {
			b := corners[(i+1)%len(corners)]
			ay, by := float64(a.Y), float64(b.Y)
			if (ay <= sy) == (by <= sy) {
				continue
			}
			t := (sy - ay) / (by - ay)
			xs = append(xs, int(math.Round(float64(a.X)+t*float64(b.X-a.X))))
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(xs[i], clip.Min.X); x < min(xs[i+1], clip.Max.X); x++ {
				plot(x, y)
			}
		}
	}
}
