package pdf

import (
	"github.com/muesli/reflow/ansi"
)

// GridCell describes one body cell's geometry as handed to a draw
// override. X and Y are the cell's top-left corner; Row is the
// zero-based body row index.
type GridCell struct {
	Row  int
	Col  int
	Text string
	X    float64
	Y    float64
	W    float64
	H    float64
}

// CellOverride may take over drawing a body cell's content. Returning
// true suppresses the default single-line text draw. The grid always
// draws borders and fills itself.
type CellOverride func(cell GridCell) bool

// drawGrid lays header and body rows out as a bordered grid whose top
// edge sits at startY. Rows that would cross the bottom margin move to
// a fresh page with the header repeated. Returns the y of the grid's
// bottom edge.
func (e *engine) drawGrid(header []string, body [][]string, startY float64, override CellOverride) float64 {
	cols := len(header)
	for _, row := range body {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return startY
	}
	widths := e.columnWidths(header, body, cols)
	rowH := e.lineHeight() + 2*e.cfg.CellPadding
	lc := e.cfg.TableLineRGB
	e.canvas.SetDrawColor(lc[0], lc[1], lc[2])

	y := e.drawHeaderRow(header, widths, startY, rowH)
	for r, row := range body {
		if y+rowH > e.bottomLimit() {
			e.addPage()
			e.canvas.SetDrawColor(lc[0], lc[1], lc[2])
			y = e.drawHeaderRow(header, widths, e.cfg.Margin, rowH)
		}
		x := e.cfg.Margin
		for c := 0; c < cols; c++ {
			text := ""
			if c < len(row) {
				text = row[c]
			}
			e.canvas.Rect(x, y, widths[c], rowH, "D")
			cell := GridCell{Row: r, Col: c, Text: text, X: x, Y: y, W: widths[c], H: rowH}
			if override == nil || !override(cell) {
				e.drawCellText(cell, false)
			}
			x += widths[c]
		}
		y += rowH
	}
	return y
}

func (e *engine) drawHeaderRow(header []string, widths []float64, y, rowH float64) float64 {
	f := e.cfg.TableHeaderRGB
	e.canvas.SetFillColor(f[0], f[1], f[2])
	x := e.cfg.Margin
	for c := 0; c < len(widths); c++ {
		text := ""
		if c < len(header) {
			text = header[c]
		}
		e.canvas.Rect(x, y, widths[c], rowH, "FD")
		e.drawCellText(GridCell{Col: c, Text: text, X: x, Y: y, W: widths[c], H: rowH}, true)
		x += widths[c]
	}
	e.restoreBodyStyle()
	return y + rowH
}

// drawCellText draws a cell's content as a single padded line,
// truncating with an ellipsis when the measured width overflows.
func (e *engine) drawCellText(cell GridCell, bold bool) {
	if cell.Text == "" {
		return
	}
	style := ""
	if bold {
		style = "B"
	}
	e.canvas.SetFont(style, e.cfg.FontSize)
	tc := e.cfg.TextRGB
	e.canvas.SetTextColor(tc[0], tc[1], tc[2])
	interior := cell.W - 2*e.cfg.CellPadding
	text := cell.Text
	if e.canvas.StringWidth(text) > interior {
		text = e.truncateToWidth(text, interior)
	}
	e.canvas.Text(cell.X+e.cfg.CellPadding, cell.Y+e.cfg.CellPadding+e.cfg.FontSize, text)
}

// columnWidths sizes columns proportionally to their widest cell,
// counted in printable rune columns, normalized to the content width.
// A floor keeps near-empty columns visible.
func (e *engine) columnWidths(header []string, body [][]string, cols int) []float64 {
	weights := make([]float64, cols)
	note := func(row []string) {
		for c := 0; c < cols && c < len(row); c++ {
			if w := float64(ansi.PrintableRuneWidth(row[c])); w > weights[c] {
				weights[c] = w
			}
		}
	}
	note(header)
	for _, row := range body {
		note(row)
	}
	total := 0.0
	for c := range weights {
		if weights[c] < 3 {
			weights[c] = 3
		}
		total += weights[c]
	}
	out := make([]float64, cols)
	for c := range weights {
		out[c] = e.contentWidth() * weights[c] / total
	}
	return out
}
