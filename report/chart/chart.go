// Package chart renders the learning curves of the solvers as HTML line
// charts.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is a named sequence of values plotted against their index
type Series struct {
	Name   string
	Values []float64
}

// Convergence writes a page charting the largest utility change of each
// sweep of a dynamic programming solver
func Convergence(w io.Writer, title string, deltas []float64) error {
	return Lines(w, title, "sweep", Series{Name: "max delta", Values: deltas})
}

// Returns writes a page charting the return of each Q-Learning episode
func Returns(w io.Writer, title string, returns []float64) error {
	return Lines(w, title, "episode", Series{Name: "return", Values: returns})
}

// Lines writes a page with one line chart holding every series. The
// x axis runs from 1 to the length of the longest series.
func Lines(w io.Writer, title, xName string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("lines: no series to chart")
	}

	steps := 0
	for _, s := range series {
		steps = max(steps, len(s.Values))
	}
	xAxis := make([]int, steps)
	for i := range xAxis {
		xAxis[i] = i + 1
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName}),
		charts.WithLegendOpts(opts.Legend{}),
	)
	line.SetXAxis(xAxis)

	for _, s := range series {
		data := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data)
	}

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}
