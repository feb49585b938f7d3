package report

import (
	"fmt"
	"io"
	"os"

	"SignalBench/internal/model"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderEquityChart writes an HTML line chart of the equity curve.
func RenderEquityChart(w io.Writer, result *model.BacktestResult) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s equity curve", result.Symbol),
			Subtitle: fmt.Sprintf("run %s", result.RunID),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	timestamps := make([]string, len(result.EquityCurve))
	values := make([]opts.LineData, len(result.EquityCurve))
	for i, p := range result.EquityCurve {
		timestamps[i] = p.Time.Format("2006-01-02")
		values[i] = opts.LineData{Value: p.Value}
	}

	line.SetXAxis(timestamps).AddSeries("equity", values)
	return line.Render(w)
}

// WriteEquityChart renders the equity chart to a file.
func WriteEquityChart(path string, result *model.BacktestResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	return RenderEquityChart(f, result)
}
