package view

import (
	"image"

	"github.com/cosmicfolio/cosmicfolio/internal/game"
)

// Overlay grid, in 16x16 pixel cells on a 1280x720 window.
const (
	CellSize = 16
	GridCols = 80
	GridRows = 45
)

const (
	hudX, hudY     = 1, 2
	hudMeterWidth  = 20
	panelX, panelY = 50, 2
	panelW         = 30
	panelMaxH      = 34
	bannerY        = 37
	logX, logY     = 1, 36
	logRows        = 8
)

// Compose writes the whole text overlay for the frame and returns the
// rectangles, in cells, that need an opaque backdrop.
func Compose(buf *CellBuffer, s *game.Scene, cam *Camera) []image.Rectangle {
	buf.Clear()
	var backdrops []image.Rectangle

	drawNav(buf, s.Section())
	drawHUD(buf, s)

	title := game.SectionName(s.Section())
	lines := BuildPanel(s.Section(), s)
	if t, detail, ok := DetailPanel(s); ok {
		title, lines = t, append(detail, gap(), Line{"Esc to close", ColorDarkGray})
	}
	backdrops = append(backdrops, drawBox(buf, panelX, panelY, panelMaxH, title, lines))

	if b, ok := s.Banner(); ok {
		backdrops = append(backdrops, drawBox(buf, panelX, bannerY, GridRows-bannerY, "", BannerLines(b)))
	}

	for i, m := range s.Log.Recent(logRows) {
		buf.WriteString(logX, logY+i, m.Text, messageInk(m.Priority), ColorBlack)
	}

	drawHoverLabel(buf, s, cam)
	return backdrops
}

func drawNav(buf *CellBuffer, current game.Section) {
	x := 1
	for sec := game.Section(0); sec < game.SectionCount; sec++ {
		fg := uint8(ColorDarkGray)
		if sec == current {
			fg = ColorYellow
		}
		x += buf.WriteString(x, 0, string(rune('1'+sec))+" "+game.SectionName(sec), fg, ColorBlack)
		x += 2
	}
}

func drawHUD(buf *CellBuffer, s *game.Scene) {
	for i, l := range ProgressHUD(s) {
		buf.WriteString(hudX, hudY+i, l.Text, l.FG, ColorBlack)
	}
	buf.Bar(hudX, hudY+1, hudMeterWidth, s.State().Progress, ColorLightGreen, ColorBlack)
}

// drawBox frames lines with an optional title, clipped to maxH rows.
func drawBox(buf *CellBuffer, x, y, maxH int, title string, lines []Line) image.Rectangle {
	h := len(lines) + 2
	if title != "" {
		h += 2
	}
	if h > maxH {
		h = maxH
	}
	buf.Frame(x, y, panelW, h, ColorLightBlue, ColorBlack)

	row := y + 1
	if title != "" {
		buf.WriteString(x+2, row, title, ColorWhite, ColorBlack)
		row += 2
	}
	for _, l := range lines {
		if row >= y+h-1 {
			buf.WriteString(x+panelW-5, y+h-1, "...", ColorDarkGray, ColorBlack)
			break
		}
		buf.WriteString(x+2, row, l.Text, l.FG, ColorBlack)
		row++
	}
	return image.Rect(x, y, x+panelW, y+h)
}

func drawHoverLabel(buf *CellBuffer, s *game.Scene, cam *Camera) {
	b, ok := s.Hovered()
	if !ok || cam == nil {
		return
	}
	for _, p := range s.Primitives() {
		if p.BodyID != b.ID || p.Project >= 0 {
			continue
		}
		x, y, depth, visible := cam.Project(p.Position)
		if !visible {
			return
		}
		r := cam.ProjectRadius(p.Radius, depth)
		col := int((x+r)/CellSize) + 1
		row := int(y / CellSize)
		buf.WriteString(col, row, p.Label, ColorWhite, ColorBlack)
		return
	}
}
