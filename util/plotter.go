package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"pd-server/models"
)

// PlotMergedHourlySeries renders a merged hourly series to a standalone HTML
// line chart. Inspection helper for development and data debugging; the
// dashboard frontend does its own rendering.
func PlotMergedHourlySeries(series []models.MergedHourlyPoint, title, outputPath string) {
	labels := make([]string, len(series))
	actualValues := make([]opts.LineData, len(series))
	predictedValues := make([]opts.LineData, len(series))

	for i, p := range series {
		labels[i] = fmt.Sprintf("%s %02d:00", p.Date, p.Hour)
		if p.Actual != nil {
			actualValues[i] = opts.LineData{Value: *p.Actual}
		} else {
			actualValues[i] = opts.LineData{Value: nil}
		}
		if p.Predicted != nil {
			predictedValues[i] = opts.LineData{Value: *p.Predicted}
		} else {
			predictedValues[i] = opts.LineData{Value: nil}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	line.SetXAxis(labels).
		AddSeries("Actual", actualValues).
		AddSeries("Predicted", predictedValues,
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}),
		)

	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Merged series chart generated: " + outputPath)
}
