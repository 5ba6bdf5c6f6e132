/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/rizqia/glucograph/glycemia"
	"github.com/rizqia/glucograph/model"
)

// Prediction is one stored screening result: the raw inputs, the model
// outcome, and the rule-based ADA bands derived at submission time.
// Rows are keyed by the submitting web session.
type Prediction struct {
	ID               uuid.UUID
	SessionID        string
	Pregnancies      float64
	Glucose          float64
	BloodPressure    float64
	SkinThickness    float64
	Insulin          float64
	BMI              float64
	DiabetesPedigree float64
	Age              float64
	HbA1c            *float64
	// GlucoseKind records whether the glucose value was interpreted as
	// fasting or 2-hour OGTT.
	GlucoseKind     glycemia.MeasurementKind
	RiskLabel       model.RiskLabel
	RiskProbability float64
	GlucoseBand     glycemia.Band
	HbA1cBand       *glycemia.Band
	OverallBand     glycemia.Band
	Recommendation  string
	CreatedAt       time.Time
}

// Features returns the stored inputs as a model feature vector.
func (p *Prediction) Features() model.Features {
	return model.Features{
		Pregnancies:      p.Pregnancies,
		Glucose:          p.Glucose,
		BloodPressure:    p.BloodPressure,
		SkinThickness:    p.SkinThickness,
		Insulin:          p.Insulin,
		BMI:              p.BMI,
		DiabetesPedigree: p.DiabetesPedigree,
		Age:              p.Age,
	}
}

// IsDiabetic reports whether the model labelled this row diabetic.
func (p *Prediction) IsDiabetic() bool {
	return p.RiskLabel == model.LabelDiabetic
}

// GlucoseThreshold is the stored copy of one in-code threshold rule,
// kept for display and audit. The glycemia package is authoritative.
type GlucoseThreshold struct {
	ID              uuid.UUID
	MeasurementKind glycemia.MeasurementKind
	Band            glycemia.Band
	LowerBound      *float64
	UpperBound      *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
