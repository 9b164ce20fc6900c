package pdf

import (
	"strings"

	stockgpt "github.com/ryar001/Stock-GPT"
)

// maxTableReserveRows caps the page-break reservation for a table so an
// oversized table still starts on a partially used page and relies on
// the grid's own row splitting.
const maxTableReserveRows = 6

// parseTable splits buffered pipe-table lines into header and body.
// Line 0 is the header, line 1 the Markdown alignment separator
// (discarded without inspection), lines 2+ the body. Ragged rows pass
// through as-is; the grid pads them.
func parseTable(lines []string) (header []string, body [][]string) {
	if len(lines) == 0 {
		return nil, nil
	}
	header = splitRow(lines[0])
	if len(lines) > 2 {
		body = make([][]string, 0, len(lines)-2)
		for _, line := range lines[2:] {
			body = append(body, splitRow(line))
		}
	}
	return header, body
}

// splitRow breaks "| a | b |" into trimmed cells, dropping the empty
// leading and trailing fields produced by the outer pipes.
func splitRow(line string) []string {
	fields := strings.Split(line, "|")
	if len(fields) > 0 && strings.TrimSpace(fields[0]) == "" {
		fields = fields[1:]
	}
	if len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}
	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = strings.TrimSpace(f)
	}
	return cells
}

func (e *engine) flushTable() {
	if len(e.table) == 0 {
		return
	}
	lines := e.table
	e.table = e.table[:0]
	e.renderTable(lines)
}

func (e *engine) renderTable(lines []string) {
	header, body := parseTable(lines)
	if len(header) == 0 {
		return
	}
	rowH := e.lineHeight() + 2*e.cfg.CellPadding
	rows := len(body) + 1
	if rows > maxTableReserveRows {
		rows = maxTableReserveRows
	}
	e.ensureRoom(float64(rows) * rowH)
	bottom := e.drawGrid(header, body, e.cur.y, e.linkCellOverride)
	e.cur.y = bottom + e.lineHeight()
}

// linkCellOverride routes URL-bearing cells through the span renderer
// so the cell carries a clickable hyperlink instead of the grid's plain
// truncated text. The display text is shortened to the cell interior
// while the annotation keeps the full URL.
func (e *engine) linkCellOverride(cell GridCell) bool {
	if !stockgpt.IsURL(cell.Text) {
		return false
	}
	interior := cell.W - 2*e.cfg.CellPadding
	e.restoreBodyStyle()
	spans := stockgpt.Tokenize(cell.Text)
	for i := range spans {
		if spans[i].Link {
			spans[i].Text = e.fitURL(spans[i].URL, interior)
		}
	}
	baseline := cell.Y + e.cfg.CellPadding + e.cfg.FontSize
	e.renderSpans(spans, cell.X+e.cfg.CellPadding, baseline, interior, e.bodyStyle(), false)
	return true
}
