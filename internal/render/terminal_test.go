package render

import (
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axisviz/internal/axisrot"
	"axisviz/internal/camera"
	"axisviz/internal/geom"
	"axisviz/internal/scene"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func screenRows(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(c.Runes[0])
		}
		rows[y] = sb.String()
	}
	return rows
}

func TestTerminalBounds(t *testing.T) {
	s := newSimScreen(t, 80, 30)
	term := NewTerminal(s)
	b := term.Bounds()
	assert.Equal(t, 80, b.Dx())
	assert.Equal(t, 22, b.Dy())
	assert.Equal(t, 8, b.Min.Y)

	s.SetSize(80, 5)
	assert.True(t, term.Bounds().Empty())
}

func TestTerminalDrawScene(t *testing.T) {
	s := newSimScreen(t, 200, 100)
	term := NewTerminal(s)

	axis := axisrot.Axis{P1: geom.Vec3{1, -0.5, 1.5}, P2: geom.Vec3{3, -2, -2.5}}
	tr := axisrot.Run(geom.Vec3{-2.5, 1.5, 0.5}, axis, math.Pi/2)
	f := scene.NewBuilder(1200, 800, nil).Build(&tr, axisrot.RotatedX, camera.DefaultState())

	Draw(term, f)
	s.Show()

	rows := screenRows(s)
	assert.True(t, strings.HasPrefix(rows[0], " Stage 4: rotated-x"), rows[0])

	var strokes, fills int
	for _, row := range rows[term.PanelRows:] {
		strokes += strings.Count(row, "●")
		fills += strings.Count(row, "░")
	}
	assert.Greater(t, strokes, 3)
	assert.Greater(t, fills, 0)

	body := strings.Join(rows[term.PanelRows:], "\n")
	assert.Contains(t, body, "P1")
	assert.Contains(t, body, "X")
}

func TestTerminalMultiByteRunes(t *testing.T) {
	s := newSimScreen(t, 40, 20)
	term := NewTerminal(s)

	term.Panel([]string{"a°b", "theta = 90.00°"})
	term.Text(2, 10, "P°'", scene.White)
	s.Show()

	rows := screenRows(s)
	assert.True(t, strings.HasPrefix(rows[0], " a°b "), rows[0])
	assert.True(t, strings.HasPrefix(rows[1], " theta = 90.00° "), rows[1])
	assert.Equal(t, "P°'", rows[10][3:3+len("P°'")])
}
