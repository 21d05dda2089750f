package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(fn func(plot func(x, y int))) map[image.Point]int {
	seen := map[image.Point]int{}
	fn(func(x, y int) { seen[image.Point{X: x, Y: y}]++ })
	return seen
}

func TestWalkLine(t *testing.T) {
	testCases := []struct {
		name           string
		x1, y1, x2, y2 int
		count          int
	}{
		{name: "horizontal", x1: 0, y1: 0, x2: 9, y2: 0, count: 10},
		{name: "vertical", x1: 3, y1: 8, x2: 3, y2: 2, count: 7},
		{name: "diagonal", x1: 0, y1: 0, x2: 4, y2: 4, count: 5},
		{name: "single point", x1: 5, y1: 5, x2: 5, y2: 5, count: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seen := collect(func(plot func(x, y int)) { walkLine(tc.x1, tc.y1, tc.x2, tc.y2, plot) })
			assert.Len(t, seen, tc.count)
			assert.Contains(t, seen, image.Point{X: tc.x1, Y: tc.y1})
			assert.Contains(t, seen, image.Point{X: tc.x2, Y: tc.y2})
		})
	}
}

func TestFillPolygonSquare(t *testing.T) {
	square := []image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	seen := collect(func(plot func(x, y int)) { fillPolygon(square, image.Rect(0, 0, 100, 100), plot) })

	assert.Len(t, seen, 100)
	for p, n := range seen {
		assert.Equal(t, 1, n, "%v visited twice", p)
	}
	assert.Contains(t, seen, image.Point{X: 0, Y: 0})
	assert.Contains(t, seen, image.Point{X: 9, Y: 9})
	assert.NotContains(t, seen, image.Point{X: 10, Y: 5})
}

func TestFillPolygonClips(t *testing.T) {
	square := []image.Point{{-5, -5}, {5, -5}, {5, 5}, {-5, 5}}
	seen := collect(func(plot func(x, y int)) { fillPolygon(square, image.Rect(0, 0, 3, 3), plot) })
	assert.Len(t, seen, 9)
}

func TestFillPolygonDegenerate(t *testing.T) {
	seen := collect(func(plot func(x, y int)) {
		fillPolygon([]image.Point{{0, 0}, {5, 5}}, image.Rect(0, 0, 10, 10), plot)
	})
	assert.Empty(t, seen)
}

func TestDisc(t *testing.T) {
	seen := collect(func(plot func(x, y int)) { disc(10, 10, 2, plot) })
	assert.Len(t, seen, 13)
	assert.NotContains(t, seen, image.Point{X: 12, Y: 12})

	seen = collect(func(plot func(x, y int)) { disc(1, 1, 0, plot) })
	assert.Equal(t, map[image.Point]int{{X: 1, Y: 1}: 1}, seen)
}
