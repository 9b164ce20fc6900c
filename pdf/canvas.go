package pdf

import "codeberg.org/go-pdf/fpdf"

// Canvas is the text-measurement and drawing surface the layout engine
// writes to. Coordinates are in points; y is the text baseline. The
// production implementation wraps fpdf; tests substitute a recorder
// with deterministic metrics.
type Canvas interface {
	// SetFont selects the weight ("" or "B") and size for subsequent
	// measurement and drawing.
	SetFont(style string, size float64)
	SetTextColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetFillColor(r, g, b int)
	StringWidth(text string) float64
	Text(x, y float64, text string)
	// LinkString draws nothing but anchors a clickable rectangle to url.
	LinkString(x, y, w, h float64, url string)
	// Rect draws a rectangle. style is "D" (border), "F" (fill) or "FD".
	Rect(x, y, w, h float64, style string)
	AddPage()
	PageCount() int
	SetPage(page int)
	PageSize() (w, h float64)
}

// fpdfCanvas adapts *fpdf.Fpdf to Canvas. Text is passed through a
// cp1252 translator so bullet glyphs and typographic characters survive
// the core-font encoding.
type fpdfCanvas struct {
	pdf    *fpdf.Fpdf
	family string
	tr     func(string) string
}

func newFpdfCanvas(pdf *fpdf.Fpdf, family string) *fpdfCanvas {
	return &fpdfCanvas{
		pdf:    pdf,
		family: family,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *fpdfCanvas) SetFont(style string, size float64) {
	c.pdf.SetFont(c.family, style, size)
}

func (c *fpdfCanvas) SetTextColor(r, g, b int) { c.pdf.SetTextColor(r, g, b) }
func (c *fpdfCanvas) SetDrawColor(r, g, b int) { c.pdf.SetDrawColor(r, g, b) }
func (c *fpdfCanvas) SetFillColor(r, g, b int) { c.pdf.SetFillColor(r, g, b) }

func (c *fpdfCanvas) StringWidth(text string) float64 {
	return c.pdf.GetStringWidth(c.tr(text))
}

func (c *fpdfCanvas) Text(x, y float64, text string) {
	c.pdf.Text(x, y, c.tr(text))
}

func (c *fpdfCanvas) LinkString(x, y, w, h float64, url string) {
	c.pdf.LinkString(x, y, w, h, url)
}

func (c *fpdfCanvas) Rect(x, y, w, h float64, style string) {
	c.pdf.Rect(x, y, w, h, style)
}

func (c *fpdfCanvas) AddPage()         { c.pdf.AddPage() }
func (c *fpdfCanvas) PageCount() int   { return c.pdf.PageCount() }
func (c *fpdfCanvas) SetPage(page int) { c.pdf.SetPage(page) }
func (c *fpdfCanvas) PageSize() (float64, float64) {
	w, h := c.pdf.GetPageSize()
	return w, h
}
