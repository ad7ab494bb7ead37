package render

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ErrNilScreen is returned when a terminal display is built without a screen
var ErrNilScreen = errors.New("render: nil screen")

// halfBlock shows the upper dot as foreground and the lower dot as background
const halfBlock = '▀'

// TerminalDisplay presents canvases on a tcell screen, two dots per cell
type TerminalDisplay struct {
	screen tcell.Screen
	hud    tcell.Style
}

// NewTerminalDisplay wraps an initialised screen
func NewTerminalDisplay(screen tcell.Screen) (*TerminalDisplay, error) {
	if screen == nil {
		return nil, ErrNilScreen
	}
	return &TerminalDisplay{
		screen: screen,
		hud:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(RGBToTcell(DefaultBackground)),
	}, nil
}

// Present writes the frame to the screen, then the HUD line below it, and shows it
func (d *TerminalDisplay) Present(frame *Canvas, hud string) error {
	w, h := frame.Size()
	rows := (h + 1) / 2
	for row := 0; row < rows; row++ {
		for x := 0; x < w; x++ {
			top, _ := frame.At(x, row*2)
			bottom, _ := frame.At(x, row*2+1)
			style := tcell.StyleDefault.Foreground(RGBToTcell(top)).Background(RGBToTcell(bottom))
			d.screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
	d.DrawText(0, rows, hud, w)
	d.screen.Show()
	return nil
}

// DrawText writes s at (x, y), padding with spaces up to width cells
func (d *TerminalDisplay) DrawText(x, y int, s string, width int) {
	col := x
	for _, r := range s {
		d.screen.SetContent(col, y, r, nil, d.hud)
		col++
	}
	for ; col < x+width; col++ {
		d.screen.SetContent(col, y, ' ', nil, d.hud)
	}
}
