/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/rizqia/glucograph/db"
	"github.com/rizqia/glucograph/glycemia"
	"github.com/rizqia/glucograph/model"
)

// bandColors maps each ADA band to its display color.
var bandColors = map[glycemia.Band]string{
	glycemia.BandNormal:      "#2e7d32",
	glycemia.BandPrediabetes: "#f9a825",
	glycemia.BandDiabetes:    "#c62828",
}

// generateProbabilityChart renders the two class probabilities as a
// bar chart.
func generateProbabilityChart(outcome model.Outcome) (string, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Prediction Probability",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "%",
			Max:  100,
		}),
	)

	bar.SetXAxis([]string{"Non-Diabetic", "Diabetic"}).
		AddSeries("Probability", []opts.BarData{
			{
				Value:     roundPercent(outcome.ProbabilityNonDiabetic()),
				ItemStyle: &opts.ItemStyle{Color: bandColors[glycemia.BandNormal]},
			},
			{
				Value:     roundPercent(outcome.Probability),
				ItemStyle: &opts.ItemStyle{Color: bandColors[glycemia.BandDiabetes]},
			},
		})

	return renderChart(bar)
}

// generateImportanceChart renders the normalized model feature weights
// as a bar chart, largest first.
func generateImportanceChart(importances []model.FeatureImportance) (string, error) {
	sorted := make([]model.FeatureImportance, len(importances))
	copy(sorted, importances)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})

	xAxis := make([]string, 0, len(sorted))
	yData := make([]opts.BarData, 0, len(sorted))
	for _, imp := range sorted {
		xAxis = append(xAxis, imp.Name)
		yData = append(yData, opts.BarData{Value: imp.Weight})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Feature Importance",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Show:   opts.Bool(true),
				Rotate: 30,
			},
		}),
	)

	bar.SetXAxis(xAxis).AddSeries("Weight", yData)

	return renderChart(bar)
}

// generateMeasurementChart renders one measurement against its ADA
// band cut points as a single bar with dashed threshold mark lines.
func generateMeasurementChart(kind glycemia.MeasurementKind, value float64) (string, error) {
	rules, err := glycemia.BoundsFor(kind)
	if err != nil {
		return "", err
	}

	bound, err := glycemia.BoundFor(kind)
	if err != nil {
		return "", err
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: kind.Label(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: kind.Unit(),
			Min:  bound.Min,
			Max:  bound.Max,
		}),
	)

	seriesOpts := []charts.SeriesOpts{
		withThresholdMarkLines(rules),
	}

	bar.SetXAxis([]string{kind.Label()}).
		AddSeries("Value", []opts.BarData{{Value: value}}).
		SetSeriesOptions(seriesOpts...)

	return renderChart(bar)
}

// generateHistoryTrendChart renders the glucose values of past
// screenings as a line chart, oldest first. Threshold mark lines are
// only drawn when every screening used the same glucose
// interpretation.
func generateHistoryTrendChart(predictions []db.Prediction) (string, error) {
	if len(predictions) < 2 {
		return "", nil
	}

	// ListPredictions returns newest first; the trend reads oldest to
	// newest.
	xAxis := make([]string, 0, len(predictions))
	yData := make([]opts.LineData, 0, len(predictions))

	sameKind := true
	kind := predictions[0].GlucoseKind

	for i := len(predictions) - 1; i >= 0; i-- {
		p := predictions[i]
		xAxis = append(xAxis, p.CreatedAt.Format("Jan 2, 15:04"))
		yData = append(yData, opts.LineData{Value: p.Glucose})

		if p.GlucoseKind != kind {
			sameKind = false
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Glucose Trend",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: kind.Unit(),
		}),
	)

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(true),
		}),
	}

	if sameKind {
		rules, err := glycemia.BoundsFor(kind)
		if err != nil {
			return "", err
		}
		seriesOpts = append(seriesOpts, withThresholdMarkLines(rules))
	}

	line.SetXAxis(xAxis).
		AddSeries("Glucose", yData).
		SetSeriesOptions(seriesOpts...)

	return renderChart(line)
}

// withThresholdMarkLines draws a dashed horizontal line at each band
// cut point.
func withThresholdMarkLines(rules []glycemia.ThresholdRule) charts.SeriesOpts {
	var markLineItems []interface{}
	for _, rule := range rules {
		if rule.Lower == nil {
			continue
		}

		markLineItems = append(markLineItems, opts.MarkLineNameYAxisItem{
			Name:  fmt.Sprintf("%s cut point", rule.Band),
			YAxis: *rule.Lower,
		})
	}

	return func(s *charts.SingleSeries) {
		s.MarkLines = &opts.MarkLines{
			Data: markLineItems,
			MarkLineStyle: opts.MarkLineStyle{
				Symbol: []string{"none", "none"},
				LineStyle: &opts.LineStyle{
					Color: "rgba(128, 128, 128, 0.6)",
					Type:  "dashed",
					Width: 1.5,
				},
			},
		}
	}
}

func renderChart(r interface{ Render(w io.Writer) error }) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// roundPercent matches the display rounding used by the templates so
// charts and text agree at band boundaries.
func roundPercent(p float64) float64 {
	return math.Round(p*1000) / 10
}
