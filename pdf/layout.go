package pdf

import (
	"fmt"
	"strings"
	"time"

	stockgpt "github.com/ryar001/Stock-GPT"
)

const (
	bulletGlyph                  = "• "
	blankAdvanceFactor           = 0.6
	headingSpaceBeforeMultiplier = 0.35
	headingSpaceAfterMultiplier  = 0.3
	titleSpaceAfterMultiplier    = 0.4
)

// cursor is the current write position in page space. Owned by the
// engine; renderer calls receive and return y explicitly.
type cursor struct {
	x    float64
	y    float64 // baseline of the next text line
	page int
}

// engine walks the document line by line, classifies each line's block
// type and drives the vertical layout with page-break insertion.
type engine struct {
	canvas Canvas
	cfg    Config
	cur    cursor
	pageW  float64
	pageH  float64
	table  []string // pending pipe-table lines

	// chartReserve is the horizontal width claimed by the first page's
	// corner sparkline; the title wraps short of it.
	chartReserve float64
}

func newEngine(canvas Canvas, cfg Config) *engine {
	e := &engine{canvas: canvas, cfg: cfg}
	e.pageW, e.pageH = canvas.PageSize()
	return e
}

func (e *engine) contentWidth() float64 { return e.pageW - 2*e.cfg.Margin }
func (e *engine) lineHeight() float64   { return e.cfg.FontSize * e.cfg.LineHeight }
func (e *engine) bottomLimit() float64  { return e.pageH - e.cfg.Margin }

func (e *engine) addPage() {
	e.canvas.AddPage()
	e.cur.page++
	e.cur.x = e.cfg.Margin
	e.cur.y = e.cfg.Margin + e.cfg.FontSize
}

// ensureRoom starts a new page when fewer than need points remain
// before the bottom margin. The reservation is approximate: wrapped
// blocks are re-checked per physical line, so a long block can still
// run past a check that passed.
func (e *engine) ensureRoom(need float64) {
	if e.cur.y+need > e.bottomLimit() {
		e.addPage()
	}
}

// render runs the classifier state machine over the document.
func (e *engine) render(doc string) {
	for _, raw := range strings.Split(doc, "\n") {
		line := strings.TrimSpace(strings.TrimRight(raw, "\r"))
		switch {
		case line == "":
			e.flushTable()
			e.cur.y += e.lineHeight() * blankAdvanceFactor
		case isTableRow(line):
			e.table = append(e.table, line)
		default:
			e.flushTable()
			e.renderBlock(line)
		}
	}
	e.flushTable()
}

func isTableRow(trimmed string) bool {
	return strings.HasPrefix(trimmed, "|")
}

func (e *engine) renderBlock(line string) {
	switch {
	case strings.HasPrefix(line, "## "):
		e.renderHeading(strings.TrimSpace(line[3:]), 2)
	case strings.HasPrefix(line, "### "):
		e.renderHeading(strings.TrimSpace(line[4:]), 3)
	case strings.HasPrefix(line, "- "):
		e.renderBullet(line[2:])
	default:
		e.renderParagraph(line)
	}
}

// blockStyle is the base style a block renders its spans with. Bold
// spans inside a non-bold block switch weight per span; a bold block
// forces weight for every span.
type blockStyle struct {
	size  float64
	bold  bool
	color [3]int
}

func (e *engine) bodyStyle() blockStyle {
	return blockStyle{size: e.cfg.FontSize, color: e.cfg.TextRGB}
}

func (e *engine) headingStyle(level int) blockStyle {
	if level == 3 {
		return blockStyle{size: e.cfg.FontSize * e.cfg.H3Scale, bold: true, color: e.cfg.AccentRGB}
	}
	return blockStyle{size: e.cfg.FontSize * e.cfg.H2Scale, bold: true, color: e.cfg.TextRGB}
}

func (e *engine) renderHeading(text string, level int) {
	st := e.headingStyle(level)
	e.ensureRoom(st.size*e.cfg.LineHeight + e.lineHeight())
	if e.cur.y > e.cfg.Margin+e.cfg.FontSize {
		e.cur.y += st.size * headingSpaceBeforeMultiplier
	}
	e.cur.y = e.renderSpans(stockgpt.Tokenize(text), e.cfg.Margin, e.cur.y, e.contentWidth(), st, true)
	e.cur.y += st.size * headingSpaceAfterMultiplier
}

func (e *engine) renderBullet(text string) {
	e.ensureRoom(e.lineHeight())
	spans := stockgpt.Tokenize(bulletGlyph + text)
	x := e.cfg.Margin + e.cfg.BulletIndent
	e.cur.y = e.renderSpans(spans, x, e.cur.y, e.contentWidth()-e.cfg.BulletIndent, e.bodyStyle(), true)
}

func (e *engine) renderParagraph(line string) {
	e.ensureRoom(e.lineHeight())
	e.cur.y = e.renderSpans(stockgpt.Tokenize(line), e.cfg.Margin, e.cur.y, e.contentWidth(), e.bodyStyle(), true)
}

// renderTitle draws the report title line. chartReserve shrinks the
// usable width so the title wraps left of the corner sparkline.
func (e *engine) renderTitle(ticker string) {
	st := blockStyle{size: e.cfg.FontSize * e.cfg.TitleScale, bold: true, color: e.cfg.TextRGB}
	e.cur.y = e.cfg.Margin + st.size
	title := strings.ToUpper(strings.TrimSpace(ticker)) + " Financial Analysis"
	spans := []stockgpt.Span{{Text: title, Bold: true}}
	e.cur.y = e.renderSpans(spans, e.cfg.Margin, e.cur.y, e.contentWidth()-e.chartReserve, st, true)
	e.cur.y += st.size * titleSpaceAfterMultiplier
}

// renderSubtitle draws the generation date under the title in the
// footer color.
func (e *engine) renderSubtitle(now time.Time) {
	e.canvas.SetFont("", e.cfg.FooterFontSize)
	c := e.cfg.FooterRGB
	e.canvas.SetTextColor(c[0], c[1], c[2])
	e.canvas.Text(e.cfg.Margin, e.cur.y, "Generated "+now.Format("2 January 2006"))
	e.restoreBodyStyle()
	e.cur.y += e.lineHeight()
}

// stampPageNumbers is the finalization pass: once the page count is
// known, every page gets a centered footer.
func (e *engine) stampPageNumbers() {
	total := e.canvas.PageCount()
	e.canvas.SetFont("", e.cfg.FooterFontSize)
	c := e.cfg.FooterRGB
	e.canvas.SetTextColor(c[0], c[1], c[2])
	for i := 1; i <= total; i++ {
		e.canvas.SetPage(i)
		label := fmt.Sprintf("Page %d of %d", i, total)
		w := e.canvas.StringWidth(label)
		e.canvas.Text((e.pageW-w)/2, e.pageH-e.cfg.Margin/2, label)
	}
	e.canvas.SetPage(total)
	e.restoreBodyStyle()
}
