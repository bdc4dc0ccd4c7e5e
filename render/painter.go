package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/orbital/parameter"
	"github.com/mattn/go-runewidth"
)

// upperHalf paints the top pixel as foreground and the bottom pixel as background
const upperHalf = '▀'

// Painter writes sample grids and HUD text to a tcell screen
type Painter struct {
	screen tcell.Screen
}

func NewPainter(screen tcell.Screen) *Painter {
	return &Painter{screen: screen}
}

// Field paints a w×h sample grid into the cols×rows cell rectangle at (x0, y0)
// Each cell covers two pixel rows; the grid is resampled nearest-neighbor when
// its size differs from the rectangle
func (p *Painter) Field(x0, y0, cols, rows int, buf []float64, w, h int, pal Palette) {
	if cols <= 0 || rows <= 0 || w <= 0 || h <= 0 || len(buf) < w*h {
		return
	}
	pixRows := rows * parameter.PixelRowsPerCell

	for cy := 0; cy < rows; cy++ {
		topY := (2 * cy) * h / pixRows
		botY := (2*cy + 1) * h / pixRows
		for cx := 0; cx < cols; cx++ {
			sx := cx * w / cols
			top := pal.Color(buf[topY*w+sx])
			bot := pal.Color(buf[botY*w+sx])
			style := tcell.StyleDefault.Foreground(top).Background(bot)
			p.screen.SetContent(x0+cx, y0+cy, upperHalf, nil, style)
		}
	}
}

// Bars paints a sample series as vertical bars filling the cols×rows rectangle
// Bar height is proportional to the sample, in half-cell steps
func (p *Painter) Bars(x0, y0, cols, rows int, buf []float64, pal Palette) {
	if cols <= 0 || rows <= 0 || len(buf) == 0 {
		return
	}
	pixRows := rows * parameter.PixelRowsPerCell
	bg := tcell.StyleDefault.Background(RgbBackground)

	for cx := 0; cx < cols; cx++ {
		v := buf[cx*len(buf)/cols]
		fill := int(v*float64(pixRows) + 0.5)
		color := pal.Color(v)
		for cy := 0; cy < rows; cy++ {
			// Pixel rows counted from the bottom edge
			top := pixRows - 2*cy
			bot := top - 1
			topOn, botOn := top <= fill, bot <= fill
			var style tcell.Style
			switch {
			case topOn && botOn:
				style = bg.Foreground(color).Background(color)
			case botOn:
				style = bg.Foreground(RgbBackground).Background(color)
			default:
				style = bg.Foreground(RgbBackground)
			}
			p.screen.SetContent(x0+cx, y0+cy, upperHalf, nil, style)
		}
	}
}

// Text draws s at (x, y) clipped to maxWidth cells and returns the columns used
func (p *Painter) Text(x, y, maxWidth int, s string, style tcell.Style) int {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > maxWidth {
			break
		}
		p.screen.SetContent(x+col, y, r, nil, style)
		col += w
	}
	return col
}

// Fill clears the rectangle with style
func (p *Painter) Fill(x0, y0, cols, rows int, style tcell.Style) {
	for y := y0; y < y0+rows; y++ {
		for x := x0; x < x0+cols; x++ {
			p.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
