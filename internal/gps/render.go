package gps

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	routeLineColor   = drawing.ColorFromHex("2563eb")
	routeStartColor  = drawing.ColorFromHex("16a34a")
	routeEndColor    = drawing.ColorFromHex("dc2626")
	routeBackground  = drawing.ColorFromHex("f8fafc")
	routeMutedColor  = drawing.ColorFromHex("64748b")
	routeMarkerWidth = 5.0
)

// RenderPNG draws the schematic route as a 600x250 PNG. An empty route
// renders a placeholder message.
func RenderPNG(route Route) ([]byte, error) {
	graph := chart.Chart{
		Width:  CanvasWidth,
		Height: CanvasHeight,
		Background: chart.Style{
			FillColor: routeBackground,
		},
		Canvas: chart.Style{
			FillColor: routeBackground,
		},
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: 0, Max: CanvasWidth},
		},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			// Canvas y grows downwards.
			Range: &chart.ContinuousRange{Min: 0, Max: CanvasHeight, Descending: true},
		},
	}

	if len(route.Points) == 0 {
		graph.Series = []chart.Series{boundsSeries()}
		graph.Elements = []chart.Renderable{placeholder("No location pings recorded")}
		return render(graph)
	}

	xs := make([]float64, len(route.Points))
	ys := make([]float64, len(route.Points))
	for i, p := range route.Points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	first := route.Points[0]
	last := route.Points[len(route.Points)-1]

	graph.Series = []chart.Series{
		boundsSeries(),
		chart.ContinuousSeries{
			Name:    "route",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: routeLineColor,
				StrokeWidth: 2,
				DotColor:    routeLineColor,
				DotWidth:    3,
			},
		},
		marker("start", first.X, first.Y, routeStartColor),
		marker("end", last.X, last.Y, routeEndColor),
	}
	return render(graph)
}

// boundsSeries spans the canvas with transparent ink. go-chart refuses to
// render unless at least one series is visible, so it must not be Hidden.
func boundsSeries() chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    "bounds",
		XValues: []float64{0, CanvasWidth},
		YValues: []float64{0, CanvasHeight},
		Style: chart.Style{
			StrokeColor: drawing.ColorTransparent,
			DotColor:    drawing.ColorTransparent,
		},
	}
}

func marker(name string, x, y float64, color drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: []float64{x},
		YValues: []float64{y},
		Style: chart.Style{
			StrokeColor: color,
			DotColor:    color,
			DotWidth:    routeMarkerWidth,
		},
	}
}

func placeholder(msg string) chart.Renderable {
	return func(r chart.Renderer, cb chart.Box, _ chart.Style) {
		r.SetFontColor(routeMutedColor)
		r.SetFontSize(12.0)
		tb := r.MeasureText(msg)
		x := (cb.Width() - tb.Width()) / 2
		y := (cb.Height() + tb.Height()) / 2
		r.Text(msg, x, y)
	}
}

func render(graph chart.Chart) ([]byte, error) {
	buf := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render route png: %w", err)
	}
	return buf.Bytes(), nil
}
