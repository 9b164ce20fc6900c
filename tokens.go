package stockgpt

import "regexp"

// Span is a contiguous run of text sharing one formatting style and
// link status. Ordering within a line is left-to-right render order.
type Span struct {
	Text string
	Bold bool
	Link bool
	URL  string
}

var (
	boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)
	urlPattern  = regexp.MustCompile(`https?://\S+`)
)

// IsURL reports whether text contains a bare http(s) URL.
func IsURL(text string) bool {
	return urlPattern.MatchString(text)
}

// Tokenize splits a single logical line into styled spans. A line with
// no markers yields exactly one plain span; empty input yields none.
// Bold delimiters are stripped and their interior re-tokenized so a URL
// inside a bold span becomes a bold link span. Bold is inherited, not
// toggled: nesting bold inside bold has no additional effect.
func Tokenize(line string) []Span {
	return tokenize(line, false)
}

func tokenize(line string, bold bool) []Span {
	if line == "" {
		return nil
	}
	spans := make([]Span, 0, 4)
	for line != "" {
		bm := boldPattern.FindStringSubmatchIndex(line)
		um := urlPattern.FindStringIndex(line)
		if bm == nil && um == nil {
			spans = append(spans, Span{Text: line, Bold: bold})
			break
		}
		if bm != nil && (um == nil || bm[0] < um[0]) {
			if bm[0] > 0 {
				spans = append(spans, Span{Text: line[:bm[0]], Bold: bold})
			}
			spans = append(spans, tokenize(line[bm[2]:bm[3]], true)...)
			line = line[bm[1]:]
			continue
		}
		if um[0] > 0 {
			spans = append(spans, Span{Text: line[:um[0]], Bold: bold})
		}
		url := line[um[0]:um[1]]
		spans = append(spans, Span{Text: url, Bold: bold, Link: true, URL: url})
		line = line[um[1]:]
	}
	return spans
}
