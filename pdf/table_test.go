package pdf

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestSplitRow(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"| a | b |", []string{"a", "b"}},
		{"|a|b|c|", []string{"a", "b", "c"}},
		{"| only |", []string{"only"}},
		{"| a | | c |", []string{"a", "", "c"}},
		{"a | b", []string{"a", "b"}},
	}
	for _, tc := range tests {
		if got := splitRow(tc.line); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("splitRow(%q) = %v, want %v", tc.line, got, tc.want)
		}
	}
}

func TestParseTable(t *testing.T) {
	lines := []string{
		"| Metric | Value |",
		"|---|---|",
		"| EPS | 3.71 |",
		"| P/E | 28.4 |",
	}
	header, body := parseTable(lines)
	if !reflect.DeepEqual(header, []string{"Metric", "Value"}) {
		t.Errorf("header = %v", header)
	}
	if len(body) != 2 || body[0][0] != "EPS" || body[1][1] != "28.4" {
		t.Errorf("body = %v", body)
	}
}

func TestParseTableHeaderOnly(t *testing.T) {
	header, body := parseTable([]string{"| A | B |", "|---|---|"})
	if len(header) != 2 || body != nil {
		t.Errorf("got header %v body %v", header, body)
	}
}

func TestRenderTableDrawsGrid(t *testing.T) {
	e, canvas := newTestEngine()
	e.render("| Metric | Value |\n|---|---|\n| EPS | 3.71 |\n| P/E | 28.4 |")

	// 3 rows of 2 cells
	if len(canvas.rects) != 6 {
		t.Fatalf("expected 6 cell rects, got %d", len(canvas.rects))
	}
	fills := 0
	for _, r := range canvas.rects {
		if r.style == "FD" {
			fills++
		}
	}
	if fills != 2 {
		t.Errorf("expected 2 filled header cells, got %d", fills)
	}
	for _, want := range []string{"Metric", "Value", "EPS", "3.71", "P/E", "28.4"} {
		if !canvas.hasText(want) {
			t.Errorf("missing cell text %q", want)
		}
	}
}

func TestRenderTableFlushesOnBlankAndEOF(t *testing.T) {
	e, canvas := newTestEngine()
	e.render("| A | B |\n|---|---|\n| 1 | 2 |\n\nafter\n| C | D |\n|---|---|\n| 3 | 4 |")

	for _, want := range []string{"A", "1", "after", "C", "3"} {
		if !canvas.hasText(want) {
			t.Errorf("missing %q", want)
		}
	}
	// both tables drew their grids
	if len(canvas.rects) != 8 {
		t.Errorf("expected 8 rects across two tables, got %d", len(canvas.rects))
	}
}

func TestColumnWidthsProportional(t *testing.T) {
	e, _ := newTestEngine()
	header := []string{"Short", "A considerably longer column header"}
	widths := e.columnWidths(header, nil, 2)

	sum := widths[0] + widths[1]
	if math.Abs(sum-e.contentWidth()) > 0.01 {
		t.Errorf("widths sum to %f, want %f", sum, e.contentWidth())
	}
	if widths[1] <= widths[0] {
		t.Errorf("longer column not wider: %v", widths)
	}
}

func TestGridRepeatsHeaderAcrossPages(t *testing.T) {
	e, canvas := newTestEngine()
	var b strings.Builder
	b.WriteString("| Row | Value |\n|---|---|\n")
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&b, "| r%d | v%d |\n", i, i)
	}
	e.render(b.String())

	if canvas.pages < 2 {
		t.Fatalf("expected table to split, got %d pages", canvas.pages)
	}
	headerOnSecond := false
	for _, txt := range canvas.textsOnPage(2) {
		if txt.text == "Row" {
			headerOnSecond = true
		}
	}
	if !headerOnSecond {
		t.Error("header not repeated on page 2")
	}
}

func TestLinkCellRendersHyperlink(t *testing.T) {
	e, canvas := newTestEngine()
	url := "https://example.com/doc"
	e.render(fmt.Sprintf("| Source | Link |\n|---|---|\n| 10-K | %s |", url))

	if len(canvas.links) != 1 {
		t.Fatalf("expected 1 link annotation, got %v", canvas.links)
	}
	if canvas.links[0].url != url {
		t.Errorf("annotation url = %q, want %q", canvas.links[0].url, url)
	}
	if !canvas.hasText("10-K") {
		t.Error("plain cell lost its default draw")
	}
	// the default draw is suppressed, so the URL is drawn exactly once
	draws := 0
	for _, txt := range canvas.texts {
		if strings.Contains(txt.text, "example.com") {
			draws++
		}
	}
	if draws != 1 {
		t.Errorf("link cell drawn %d times, want exactly 1", draws)
	}
}

func TestLinkCellShortensLongURL(t *testing.T) {
	e, canvas := newTestEngine()
	url := "https://www.sec.gov/cgi-bin/browse-edgar?action=getcompany&CIK=0000320193&type=10-K&dateb=&owner=include&count=40"
	e.render(fmt.Sprintf("| Source |\n|---|\n| %s |", url))

	if len(canvas.links) != 1 {
		t.Fatalf("expected 1 link annotation, got %v", canvas.links)
	}
	if canvas.links[0].url != url {
		t.Errorf("annotation must keep the full URL, got %q", canvas.links[0].url)
	}
	if canvas.hasText(url) {
		t.Error("display text should be shortened, full URL was drawn")
	}
}
