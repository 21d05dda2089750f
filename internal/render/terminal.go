package render

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Terminal is a Canvas over a tcell screen, one cell per plotted point. The
// top PanelRows rows are reserved for the text panel.
type Terminal struct {
	Screen    tcell.Screen
	PanelRows int
}

func NewTerminal(s tcell.Screen) *Terminal {
	return &Terminal{Screen: s, PanelRows: 8}
}

func (t *Terminal) Bounds() image.Rectangle {
	w, h := t.Screen.Size()
	if h <= t.PanelRows {
		return image.Rect(0, h, w, h)
	}
	return image.Rect(0, t.PanelRows, w, h)
}

func (t *Terminal) Plot(x, y int, c color.RGBA) {
	t.set(x, y, '●', c)
}

func (t *Terminal) Fill(x, y int, c color.RGBA) {
	// Alpha has no meaning per cell; a light shade reads as translucent.
	t.set(x, y, '░', c)
}

func (t *Terminal) Text(x, y int, s string, c color.RGBA) {
	style := tcell.StyleDefault.Foreground(rgb(c)).Bold(true)
	col := x + 1
	for _, r := range s {
		if (image.Point{X: col, Y: y}).In(t.Bounds()) {
			t.Screen.SetContent(col, y, r, nil, style)
		}
		col += runewidth.RuneWidth(r)
	}
}

func (t *Terminal) Panel(lines []string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	w, _ := t.Screen.Size()
	for row, line := range lines {
		if row >= t.PanelRows {
			break
		}
		col := 1
		for _, r := range line {
			if col >= w {
				break
			}
			t.Screen.SetContent(col, row, r, nil, style)
			col += runewidth.RuneWidth(r)
		}
	}
}

func (t *Terminal) set(x, y int, r rune, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(t.Bounds()) {
		return
	}
	t.Screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(rgb(c)))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
