package analysis

import (
	"fmt"
	"strings"

	stockgpt "github.com/ryar001/Stock-GPT"
)

// dialectInstructions pins the generator to the Markdown subset the PDF
// renderer understands. Anything outside it degrades to plain text on
// paper, so the constraint lives in every prompt.
const dialectInstructions = `Format the response with this restricted Markdown only:
- "## " section headings and "### " sub-headings
- "- " bullet points
- **bold** for key figures
- pipe tables with a |---| separator row for any tabular data
- bare https:// URLs for sources (no bracket link syntax)
Do not use code blocks, blockquotes, images, or numbered lists.`

func buildPrompt(req Request) string {
	var b strings.Builder
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))

	switch req.Kind {
	case KindQuick:
		fmt.Fprintf(&b, "Give a concise investment summary of %s: business model, latest results, one-line bull and bear case, and a small table of key valuation metrics.\n", ticker)
	case KindDeep:
		fmt.Fprintf(&b, "Write a thorough fundamental analysis of %s covering business segments, revenue and margin trends, balance sheet health, competitive moat, management, risks, and valuation. Include metric tables and cite sources.\n", ticker)
	case KindTechnical:
		fmt.Fprintf(&b, "Analyze the recent price action of %s: trend, support and resistance levels, momentum indicators, and notable volume behavior. Summarize the levels in a table.\n", ticker)
	default: // KindChat
		fmt.Fprintf(&b, "Answer the following question about %s.\nQuestion: %s\n", ticker, strings.TrimSpace(req.Question))
	}

	if ctx := fundamentalsContext(req.Fundamentals); ctx != "" {
		b.WriteString("\n")
		b.WriteString(ctx)
	}

	b.WriteString("\n")
	b.WriteString(dialectInstructions)
	return b.String()
}

// fundamentalsContext renders locally computed fair-value estimates
// into prompt context so the generator grounds its valuation language.
// dcfYears is the projection horizon for the prompt-context DCF.
const dcfYears = 5

func fundamentalsContext(f *stockgpt.Fundamentals) string {
	if f == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("Known fundamentals and locally computed fair-value estimates:\n")
	fmt.Fprintf(&b, "- EPS: %.2f, revenue/share: %.2f, growth rate: %.1f%%\n",
		f.EPS, f.RevenuePerShare, f.GrowthRate*100)
	if dcf := stockgpt.FairValueDCF(f.EPS, f.GrowthRate, f.DiscountRate, dcfYears, f.PeerPE); dcf > 0 {
		fmt.Fprintf(&b, "- DCF fair value: %.2f\n", dcf)
	}
	if pe := stockgpt.FairValuePE(f.EPS, f.PeerPE); pe > 0 {
		fmt.Fprintf(&b, "- P/E fair value: %.2f\n", pe)
	}
	if ps := stockgpt.FairValuePS(f.RevenuePerShare, f.PeerPS); ps > 0 {
		fmt.Fprintf(&b, "- P/S fair value: %.2f\n", ps)
	}
	return b.String()
}
