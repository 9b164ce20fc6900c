package pdf

import (
	"unicode/utf8"
)

// fakeCanvas records drawing calls with deterministic metrics: every
// rune measures half the current font size. That keeps layout tests
// independent of real font tables.
type fakeCanvas struct {
	pageW, pageH float64
	size         float64
	pages        int
	curPage      int
	texts        []fakeText
	links        []fakeLink
	rects        []fakeRect
}

type fakeText struct {
	page int
	x, y float64
	text string
}

type fakeLink struct {
	page       int
	x, y, w, h float64
	url        string
}

type fakeRect struct {
	page       int
	x, y, w, h float64
	style      string
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{pageW: 595.28, pageH: 841.89, size: 11}
}

func (c *fakeCanvas) SetFont(style string, size float64) { c.size = size }
func (c *fakeCanvas) SetTextColor(r, g, b int) {}
func (c *fakeCanvas) SetDrawColor(r, g, b int) {}
func (c *fakeCanvas) SetFillColor(r, g, b int) {}

func (c *fakeCanvas) StringWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * c.size / 2
}

func (c *fakeCanvas) Text(x, y float64, text string) {
	c.texts = append(c.texts, fakeText{page: c.curPage, x: x, y: y, text: text})
}

func (c *fakeCanvas) LinkString(x, y, w, h float64, url string) {
	c.links = append(c.links, fakeLink{page: c.curPage, x: x, y: y, w: w, h: h, url: url})
}

func (c *fakeCanvas) Rect(x, y, w, h float64, style string) {
	c.rects = append(c.rects, fakeRect{page: c.curPage, x: x, y: y, w: w, h: h, style: style})
}

func (c *fakeCanvas) AddPage() {
	c.pages++
	c.curPage = c.pages
}

func (c *fakeCanvas) PageCount() int               { return c.pages }
func (c *fakeCanvas) SetPage(page int)             { c.curPage = page }
func (c *fakeCanvas) PageSize() (float64, float64) { return c.pageW, c.pageH }

func newTestEngine() (*engine, *fakeCanvas) {
	canvas := newFakeCanvas()
	e := newEngine(canvas, DefaultConfig())
	e.addPage()
	return e, canvas
}

func (c *fakeCanvas) textsOnPage(page int) []fakeText {
	var out []fakeText
	for _, t := range c.texts {
		if t.page == page {
			out = append(out, t)
		}
	}
	return out
}

func (c *fakeCanvas) hasText(s string) bool {
	for _, t := range c.texts {
		if t.text == s {
			return true
		}
	}
	return false
}
