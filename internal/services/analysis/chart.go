package analysis

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

// RenderFootballField renders the valuation ranges as a PNG: one floating
// bar per method plus a dashed line at the current price.
func (s *Service) RenderFootballField(ctx context.Context, report *models.ValuationReport) ([]byte, error) {
	return renderFootballField(report.BasicInfo.Ticker, report.FootballField)
}

func renderFootballField(ticker string, field models.FootballField) ([]byte, error) {
	if len(field.Bars) == 0 {
		return nil, fmt.Errorf("no resolved valuation methods to chart")
	}

	series := make([]chart.Series, 0, len(field.Bars)+2)
	ticks := make([]chart.Tick, 0, len(field.Bars)+2)
	ticks = append(ticks, chart.Tick{Value: 0, Label: ""})

	for i, bar := range field.Bars {
		x := float64(i + 1)
		// Each bar is a thick vertical segment from low to high.
		series = append(series, chart.ContinuousSeries{
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
				StrokeWidth: 22,
			},
			XValues: []float64{x, x},
			YValues: []float64{bar.Low, bar.High},
		})
		// Mid marker.
		series = append(series, chart.ContinuousSeries{
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex("1e3a8a"), // blue-900
				StrokeWidth: 4,
			},
			XValues: []float64{x - 0.12, x + 0.12},
			YValues: []float64{bar.Mid, bar.Mid},
		})
		ticks = append(ticks, chart.Tick{Value: x, Label: bar.Method})
	}

	maxX := float64(len(field.Bars)) + 1
	ticks = append(ticks, chart.Tick{Value: maxX, Label: ""})

	if field.CurrentPrice > 0 {
		series = append(series, chart.ContinuousSeries{
			Name: "Current Price",
			Style: chart.Style{
				StrokeColor:     drawing.ColorFromHex("dc2626"), // red-600
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5.0, 3.0},
			},
			XValues: []float64{0, maxX},
			YValues: []float64{field.CurrentPrice, field.CurrentPrice},
		})
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s Valuation Ranges", ticker),
		Width:  900,
		Height: 450,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
