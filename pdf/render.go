// Package pdf renders analysis Markdown into downloadable PDF reports.
//
// The renderer understands the dialect the analysis service produces:
// "## " and "### " headings, "- " bullets, **bold** emphasis, bare
// https?:// links and pipe tables. Everything else renders as a plain
// paragraph. Layout is cursor driven with explicit page breaks and a
// final pass that stamps "Page i of N" footers once the page count is
// known.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"codeberg.org/go-pdf/fpdf"
)

// RenderRequest carries everything one report render needs.
type RenderRequest struct {
	// Ticker names the instrument; it is uppercased into the title.
	Ticker string
	// Markdown is the analysis body in the renderer's dialect.
	Markdown string
	// Writer receives the finished PDF bytes.
	Writer io.Writer
	// Config overrides; zero fields fall back to DefaultConfig.
	Config Config
	// Prices, when it has at least two points, draws a closing-price
	// sparkline in the top-right corner of the first page.
	Prices []float64
}

// Render lays out the request's Markdown into a complete PDF document
// and writes it to req.Writer. The writer sees no bytes until the
// document is finished, so a failed render never leaves a partial file
// behind.
func Render(req RenderRequest) (err error) {
	if req.Writer == nil {
		return fmt.Errorf("pdf render: nil writer")
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if !isCoreFont(cfg.FontFamily) {
		return fmt.Errorf("pdf render: %q is not a core font family", cfg.FontFamily)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf render: %v", r)
		}
	}()

	doc := fpdf.New("P", "pt", cfg.PageSize, "")
	doc.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	doc.SetAutoPageBreak(false, cfg.Margin)
	if cfg.NoCompression {
		doc.SetCompression(false)
	}
	doc.SetFont(cfg.FontFamily, "", cfg.FontSize)
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: font setup: %w", err)
	}

	eng := newEngine(newFpdfCanvas(doc, cfg.FontFamily), cfg)
	eng.addPage()

	if len(req.Prices) >= 2 {
		png, err := renderSparkline(req.Prices, cfg)
		if err != nil {
			return err
		}
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		doc.RegisterImageOptionsReader(sparklineImageName, opts, bytes.NewReader(png))
		doc.ImageOptions(sparklineImageName,
			eng.pageW-cfg.Margin-cfg.ChartWidth, cfg.Margin,
			cfg.ChartWidth, cfg.ChartHeight, false, opts, 0, "")
		eng.chartReserve = cfg.ChartWidth + 2*cfg.CellPadding
	}

	eng.renderTitle(req.Ticker)
	eng.renderSubtitle(time.Now())
	if eng.chartReserve > 0 {
		// Body starts below the sparkline regardless of title height.
		if floor := cfg.Margin + cfg.ChartHeight + eng.lineHeight(); eng.cur.y < floor {
			eng.cur.y = floor
		}
	}
	eng.render(req.Markdown)
	eng.stampPageNumbers()

	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := doc.Output(req.Writer); err != nil {
		return fmt.Errorf("pdf render: output: %w", err)
	}
	return nil
}

// Filename is the suggested download name for a ticker's report.
func Filename(ticker string) string {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	t = strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			return '_'
		}
	}, t)
	if t == "" {
		t = "REPORT"
	}
	return t + "_Financial_Analysis.pdf"
}
