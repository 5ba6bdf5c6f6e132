/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	htmltemplate "html/template"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/rizqia/glucograph/db"
	"github.com/rizqia/glucograph/model"
)

// ViewPrediction displays one stored screening result with its
// charts. Results are scoped to the submitting session.
func ViewPrediction(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	ctx := c.Request().Context()
	id := c.Param("id")

	prediction, err := db.GetPrediction(ctx, id, s.ID())
	if err != nil {
		if !errors.Is(err, db.ErrPredictionNotFound) {
			logger.Error("Failed to fetch prediction", "id", id, "error", err)
		}
		SetErrorFlash(s, "Screening result not found")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	outcome := model.Outcome{
		Label:       prediction.RiskLabel,
		Probability: prediction.RiskProbability,
	}

	probChart, err := generateProbabilityChart(outcome)
	if err != nil {
		logger.Error("Failed to generate probability chart", "id", id, "error", err)
	} else {
		data["ProbabilityChart"] = htmltemplate.HTML(probChart)
	}

	glucoseChart, err := generateMeasurementChart(prediction.GlucoseKind, prediction.Glucose)
	if err != nil {
		logger.Error("Failed to generate glucose chart", "id", id, "error", err)
	} else {
		data["GlucoseChart"] = htmltemplate.HTML(glucoseChart)
	}

	if p, err := getPredictor(); err == nil {
		impChart, err := generateImportanceChart(p.FeatureImportances())
		if err != nil {
			logger.Error("Failed to generate importance chart", "id", id, "error", err)
		} else {
			data["ImportanceChart"] = htmltemplate.HTML(impChart)
		}
	}

	data["Prediction"] = prediction
	data["IsDiabetic"] = prediction.IsDiabetic()
	data["RiskPercent"] = roundPercent(prediction.RiskProbability)
	data["GlucoseKindLabel"] = prediction.GlucoseKind.Label()
	data["BandColor"] = bandColors[prediction.OverallBand]
	data["GlucoseBandColor"] = bandColors[prediction.GlucoseBand]
	if prediction.HbA1cBand != nil {
		data["HbA1cBandColor"] = bandColors[*prediction.HbA1cBand]
	}

	t.HTML(http.StatusOK, "result")
}
