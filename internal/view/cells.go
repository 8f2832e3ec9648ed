package view

// Glyph codes beyond ASCII that the atlas draws.
const (
	GlyphShadeLight = 176
	GlyphShadeDark  = 178
	GlyphBlock      = 219
	GlyphSquare     = 254
	GlyphHLine      = 196
	GlyphVLine      = 179
	GlyphTopLeft    = 218
	GlyphTopRight   = 191
	GlyphBotLeft    = 192
	GlyphBotRight   = 217
)

// Cell is one character of the text overlay.
type Cell struct {
	Glyph byte
	FG    uint8 // palette index
	BG    uint8 // palette index, ColorBlack leaves the scene visible
}

// CellBuffer is the text overlay grid.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

var blank = Cell{Glyph: ' ', FG: ColorWhite, BG: ColorBlack}

// NewCellBuffer creates a blank overlay.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

// Set writes a single cell. Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, glyph byte, fg, bg uint8) {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		b.Cells[y*b.Cols+x] = Cell{Glyph: glyph, FG: fg, BG: bg}
	}
}

// Get reads a single cell. Out-of-bounds reads return the zero cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if x >= 0 && x < b.Cols && y >= 0 && y < b.Rows {
		return b.Cells[y*b.Cols+x]
	}
	return Cell{}
}

// Clear blanks every cell.
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blank
	}
}

// WriteString writes s from (x, y) and returns the number of cells used.
// Runes outside Latin-1 print as '?'.
func (b *CellBuffer) WriteString(x, y int, s string, fg, bg uint8) int {
	n := 0
	for _, ch := range s {
		if ch > 255 {
			ch = '?'
		}
		b.Set(x+n, y, byte(ch), fg, bg)
		n++
	}
	return n
}

// Fill paints a rectangle with one glyph.
func (b *CellBuffer) Fill(x, y, w, h int, glyph byte, fg, bg uint8) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, glyph, fg, bg)
		}
	}
}

// Frame draws a single-line border around a rectangle and clears its inside.
func (b *CellBuffer) Frame(x, y, w, h int, fg, bg uint8) {
	if w < 2 || h < 2 {
		return
	}
	b.Fill(x+1, y+1, w-2, h-2, ' ', fg, bg)
	for col := x + 1; col < x+w-1; col++ {
		b.Set(col, y, GlyphHLine, fg, bg)
		b.Set(col, y+h-1, GlyphHLine, fg, bg)
	}
	for row := y + 1; row < y+h-1; row++ {
		b.Set(x, row, GlyphVLine, fg, bg)
		b.Set(x+w-1, row, GlyphVLine, fg, bg)
	}
	b.Set(x, y, GlyphTopLeft, fg, bg)
	b.Set(x+w-1, y, GlyphTopRight, fg, bg)
	b.Set(x, y+h-1, GlyphBotLeft, fg, bg)
	b.Set(x+w-1, y+h-1, GlyphBotRight, fg, bg)
}

// Bar draws a width-cell meter filled to pct percent.
func (b *CellBuffer) Bar(x, y, width int, pct float64, fg, bg uint8) {
	filled := int(pct / 100 * float64(width))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	for i := 0; i < width; i++ {
		if i < filled {
			b.Set(x+i, y, GlyphBlock, fg, bg)
		} else {
			b.Set(x+i, y, GlyphShadeLight, ColorDarkGray, bg)
		}
	}
}
