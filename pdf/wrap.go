package pdf

import (
	"strings"
	"unicode/utf8"

	stockgpt "github.com/ryar001/Stock-GPT"
)

// renderSpans draws spans starting at (x, y) and wraps within maxWidth,
// returning the baseline after the final physical line. Line breaks
// fall wherever the measured width runs out; a span's style survives
// the break. pageBreaks allows wrapped lines to start a new page;
// in-cell rendering passes false so a cell never paginates.
func (e *engine) renderSpans(spans []stockgpt.Span, x, y, maxWidth float64, st blockStyle, pageBreaks bool) float64 {
	curX := x
	lh := st.size * e.cfg.LineHeight
	for _, sp := range spans {
		e.applySpanStyle(sp, st)
		text := sp.Text
		for text != "" {
			fit, rest := e.fitPrefix(text, x+maxWidth-curX)
			if fit == "" {
				if curX > x {
					curX = x
					y += lh
					if pageBreaks && y > e.bottomLimit() {
						e.addPage()
						y = e.cfg.Margin + st.size
					}
					text = strings.TrimPrefix(text, " ")
					continue
				}
				// Degenerate width: emit one rune so the loop always
				// makes progress.
				_, size := utf8.DecodeRuneInString(text)
				fit, rest = text[:size], text[size:]
			}
			w := e.canvas.StringWidth(fit)
			e.canvas.Text(curX, y, fit)
			if sp.Link && sp.URL != "" {
				e.canvas.LinkString(curX, y-st.size, w, st.size*1.1, sp.URL)
			}
			curX += w
			text = rest
		}
	}
	e.restoreBodyStyle()
	return y + lh
}

func (e *engine) applySpanStyle(sp stockgpt.Span, st blockStyle) {
	style := ""
	if st.bold || sp.Bold {
		style = "B"
	}
	e.canvas.SetFont(style, st.size)
	c := st.color
	if sp.Link {
		c = e.cfg.LinkRGB
	}
	e.canvas.SetTextColor(c[0], c[1], c[2])
}

func (e *engine) restoreBodyStyle() {
	e.canvas.SetFont("", e.cfg.FontSize)
	c := e.cfg.TextRGB
	e.canvas.SetTextColor(c[0], c[1], c[2])
}

// fitPrefix returns the longest prefix of text whose measured width
// stays within budget, plus the remainder. Measurement is rune by rune
// with the canvas's current font.
func (e *engine) fitPrefix(text string, budget float64) (fit, rest string) {
	if budget <= 0 {
		return "", text
	}
	width := 0.0
	i := 0
	for i < len(text) {
		_, size := utf8.DecodeRuneInString(text[i:])
		w := e.canvas.StringWidth(text[i : i+size])
		if width+w > budget {
			break
		}
		width += w
		i += size
	}
	return text[:i], text[i:]
}

// truncateToWidth cuts text so that it fits limit with a trailing
// ellipsis. An empty string comes back when even the ellipsis alone
// does not fit.
func (e *engine) truncateToWidth(text string, limit float64) string {
	const ellipsis = "..."
	ellW := e.canvas.StringWidth(ellipsis)
	if ellW > limit {
		return ""
	}
	fit, rest := e.fitPrefix(text, limit-ellW)
	if rest == "" {
		return text
	}
	return fit + ellipsis
}

// fitURL shortens a URL for single-line display. The full URL wins if
// it fits, then the scheme-less form, then a measured truncation.
func (e *engine) fitURL(url string, limit float64) string {
	if e.canvas.StringWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if e.canvas.StringWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return e.truncateToWidth(url, limit)
}
