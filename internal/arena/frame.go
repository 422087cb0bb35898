package arena

import "github.com/vovakirdan/robot-arena/internal/core"

// Glyph drawn at the center of every blast.
const BlastGlyph = '*'

// DrawEvent asks the renderer to paint one arena cell.
type DrawEvent struct {
	At    core.Coord
	Glyph rune
	Color core.Color
}

// Frame is everything a renderer needs to bring its picture up to date after
// a Step: the cells painted by the previous frame, to be blanked first, and
// the new draw events in paint order. Later events overwrite earlier ones on
// the same cell. Cells outside the arena are never included.
type Frame struct {
	Clear []core.Coord
	Draws []DrawEvent
}

// Apply renders the frame into dst with the arena's (0,0) at origin.
func (f Frame) Apply(dst *core.Screen, origin core.Coord) {
	for _, c := range f.Clear {
		dst.Set(origin.X+c.X, origin.Y+c.Y, ' ')
	}
	for _, d := range f.Draws {
		dst.SetColor(origin.X+d.At.X, origin.Y+d.At.Y, d.Glyph, d.Color)
	}
}

// draw appends a draw event and remembers the cell for the next frame's
// clear list.
func (g *Game[S]) draw(f *Frame, at core.Coord, glyph rune, color core.Color) {
	if !g.arena.Contains(at) {
		return
	}
	f.Draws = append(f.Draws, DrawEvent{At: at, Glyph: glyph, Color: color})
	g.drawn = append(g.drawn, at)
}

// Redraw returns a frame that clears the previous picture and paints every
// live robot at its current position. Renderers call it before the first
// Step or after their screen was reset; the painted cells are cleared by the
// next Step like any other frame.
func (g *Game[S]) Redraw() Frame {
	f := Frame{Clear: g.drawn}
	g.drawn = nil
	for _, r := range g.robots {
		g.draw(&f, r.position, r.glyph, core.ColorRobot)
	}
	return f
}
