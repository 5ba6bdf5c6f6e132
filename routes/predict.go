/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/flamego/flamego"
	"github.com/flamego/session"

	"github.com/rizqia/glucograph/db"
	"github.com/rizqia/glucograph/glycemia"
	"github.com/rizqia/glucograph/model"
)

var (
	predictorOnce sync.Once
	predictor     *model.Predictor
	predictorErr  error
)

// getPredictor loads the embedded model parameters once.
func getPredictor() (*model.Predictor, error) {
	predictorOnce.Do(func() {
		predictor, predictorErr = model.Load()
	})

	return predictor, predictorErr
}

// Predict handles a screening form submission: it validates the
// inputs, runs the risk model and the ADA band classifier, stores the
// result, and redirects to the result page.
func Predict(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()

	if err := c.Request().ParseForm(); err != nil {
		logger.Error("Failed to parse screening form", "error", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	form := c.Request().Form

	values := make(map[string]float64, len(screeningFields))
	for _, field := range screeningFields {
		value, err := parseFieldValue(form, field)
		if err != nil {
			SetErrorFlash(s, fmt.Sprintf("%s: %s (allowed range %g to %g)", field.Label, err, field.Min, field.Max))
			c.Redirect("/", http.StatusSeeOther)
			return
		}
		values[field.Name] = value
	}

	// HbA1c is optional; when present it participates in the overall
	// band.
	var hba1c *float64
	if raw := strings.TrimSpace(form.Get(hba1cField.Name)); raw != "" {
		value, err := parseFieldValue(form, hba1cField)
		if err != nil {
			SetErrorFlash(s, fmt.Sprintf("%s: %s (allowed range %g to %g)", hba1cField.Label, err, hba1cField.Min, hba1cField.Max))
			c.Redirect("/", http.StatusSeeOther)
			return
		}
		hba1c = &value
	}

	glucoseKind, err := parseGlucoseKind(form.Get("glucose_kind"))
	if err != nil {
		SetErrorFlash(s, "Unknown glucose interpretation")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	features := model.Features{
		Pregnancies:      values["pregnancies"],
		Glucose:          values["glucose"],
		BloodPressure:    values["blood_pressure"],
		SkinThickness:    values["skin_thickness"],
		Insulin:          values["insulin"],
		BMI:              values["bmi"],
		DiabetesPedigree: values["diabetes_pedigree"],
		Age:              values["age"],
	}

	p, err := getPredictor()
	if err != nil {
		logger.Error("Failed to load risk model", "error", err)
		SetErrorFlash(s, "Risk model is unavailable")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	outcome := p.Predict(features)

	glucoseResult, err := glycemia.Classify(glycemia.Measurement{
		Kind:  glucoseKind,
		Value: features.Glucose,
	})
	if err != nil {
		logger.Error("Failed to classify glucose", "kind", glucoseKind, "value", features.Glucose, "error", err)
		SetErrorFlash(s, "Glucose value could not be classified")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	results := []glycemia.Result{glucoseResult}

	var hba1cBand *glycemia.Band
	if hba1c != nil {
		hba1cResult, err := glycemia.Classify(glycemia.Measurement{
			Kind:  glycemia.HbA1c,
			Value: *hba1c,
		})
		if err != nil {
			logger.Error("Failed to classify HbA1c", "value", *hba1c, "error", err)
			SetErrorFlash(s, "HbA1c value could not be classified")
			c.Redirect("/", http.StatusSeeOther)
			return
		}

		results = append(results, hba1cResult)
		hba1cBand = &hba1cResult.Band
	}

	overall, err := glycemia.Aggregate(results)
	if err != nil {
		logger.Error("Failed to aggregate bands", "error", err)
		SetErrorFlash(s, "Screening could not be completed")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	prediction := &db.Prediction{
		SessionID:        s.ID(),
		Pregnancies:      features.Pregnancies,
		Glucose:          features.Glucose,
		BloodPressure:    features.BloodPressure,
		SkinThickness:    features.SkinThickness,
		Insulin:          features.Insulin,
		BMI:              features.BMI,
		DiabetesPedigree: features.DiabetesPedigree,
		Age:              features.Age,
		HbA1c:            hba1c,
		GlucoseKind:      glucoseKind,
		RiskLabel:        outcome.Label,
		RiskProbability:  outcome.Probability,
		GlucoseBand:      glucoseResult.Band,
		HbA1cBand:        hba1cBand,
		OverallBand:      overall,
		Recommendation:   glycemia.Recommendation(overall),
	}

	if err := db.InsertPrediction(ctx, prediction); err != nil {
		logger.Error("Failed to store prediction", "error", err)
		SetErrorFlash(s, "Failed to store screening result")
		c.Redirect("/", http.StatusSeeOther)
		return
	}

	logger.Info("Stored screening result",
		"id", prediction.ID,
		"risk_label", prediction.RiskLabel,
		"overall_band", prediction.OverallBand,
	)

	c.Redirect("/predictions/"+prediction.ID.String(), http.StatusSeeOther)
}
