package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/zenithfin/zenith"
)

// HistoryChartPNG renders the net-worth series as a PNG line chart and
// returns the raw bytes.
func HistoryChartPNG(r *zenith.HistoryReport) ([]byte, error) {
	if len(r.Values) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(r.Values))
	}

	xValues := make([]time.Time, len(r.Days))
	yValues := make([]float64, len(r.Values))
	for i, d := range r.Days {
		xValues[i] = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		yValues[i] = float64(r.Values[i]) / 100
	}

	series := chart.TimeSeries{
		Name: "Net Worth",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  "Net Worth",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 2")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}
