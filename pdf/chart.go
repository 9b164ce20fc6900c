package pdf

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
)

// sparklineImageName keys the rendered chart in the document's image
// registry.
const sparklineImageName = "price-sparkline"

// chartScale renders the PNG at a multiple of its placed size so it
// stays sharp at print resolution.
const chartScale = 2

// renderSparkline draws a minimal closing-price line chart with hidden
// axes and returns it as PNG bytes. Needs at least two points.
func renderSparkline(prices []float64, cfg Config) ([]byte, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("pdf render: sparkline needs at least 2 prices, got %d", len(prices))
	}
	xs := make([]float64, len(prices))
	for i := range xs {
		xs[i] = float64(i)
	}
	stroke := chart.ColorBlue
	graph := chart.Chart{
		Width:  int(cfg.ChartWidth) * chartScale,
		Height: int(cfg.ChartHeight) * chartScale,
		XAxis:  chart.XAxis{Style: chart.Hidden()},
		YAxis:  chart.YAxis{Style: chart.Hidden()},
		Background: chart.Style{
			Padding: chart.Box{Top: 4, Left: 4, Right: 4, Bottom: 4},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: prices,
				Style: chart.Style{
					StrokeColor: stroke,
					StrokeWidth: 1.5,
					FillColor:   stroke.WithAlpha(40),
				},
			},
		},
	}
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("pdf render: sparkline: %w", err)
	}
	return buf.Bytes(), nil
}
