package render

import (
	"io"

	"crm/src/utils"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// BarSeries is one labelled value of a bar chart.
type BarSeries struct {
	Label string
	Value float64
}

// RenderBarGraph writes a standalone HTML page with a single-series bar
// chart. Bars keep the order of data and take their colors from the chart
// palette.
func RenderBarGraph(w io.Writer, title, seriesName string, data []BarSeries) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithYAxisOpts(opts.YAxis{Name: seriesName}),
	)

	labels := make([]string, 0, len(data))
	items := make([]opts.BarData, 0, len(data))
	for i, d := range data {
		labels = append(labels, d.Label)
		items = append(items, opts.BarData{
			Name:      d.Label,
			Value:     d.Value,
			ItemStyle: &opts.ItemStyle{Color: utils.GetChartColor(i)},
		})
	}
	bar.SetXAxis(labels).AddSeries(seriesName, items)

	return bar.Render(w)
}
