/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */

// Package model runs the pre-trained diabetes risk classifier. The
// model is a logistic regression over the eight Pima features; its
// coefficients and standard-scaler parameters are embedded at build
// time and loaded once into an immutable Predictor that callers pass
// around explicitly.
package model

import (
	"embed"
	"encoding/json"
	"fmt"
	"math"
)

//go:embed params.json
var paramsFS embed.FS

// FeatureCount is the number of model inputs.
const FeatureCount = 8

// Features holds the eight raw clinical inputs, in Pima dataset order.
type Features struct {
	Pregnancies      float64
	Glucose          float64
	BloodPressure    float64
	SkinThickness    float64
	Insulin          float64
	BMI              float64
	DiabetesPedigree float64
	Age              float64
}

func (f Features) vector() [FeatureCount]float64 {
	return [FeatureCount]float64{
		f.Pregnancies, f.Glucose, f.BloodPressure, f.SkinThickness,
		f.Insulin, f.BMI, f.DiabetesPedigree, f.Age,
	}
}

// RiskLabel is the binary model outcome.
type RiskLabel string

const (
	LabelNonDiabetic RiskLabel = "non_diabetic"
	LabelDiabetic    RiskLabel = "diabetic"
)

// Outcome is a single prediction: the label plus both class probabilities.
type Outcome struct {
	Label RiskLabel
	// Probability is the diabetic-class probability, in [0, 1].
	Probability float64
}

// ProbabilityNonDiabetic returns the complementary class probability.
func (o Outcome) ProbabilityNonDiabetic() float64 {
	return 1 - o.Probability
}

// FeatureImportance is a feature's normalized weight in the model.
type FeatureImportance struct {
	Name   string
	Weight float64
}

// params mirrors the embedded parameter file.
type params struct {
	FeatureNames []string  `json:"feature_names"`
	Means        []float64 `json:"means"`
	Scales       []float64 `json:"scales"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

// Predictor is an immutable, process-wide classifier instance.
type Predictor struct {
	p params
}

// Load parses and validates the embedded model parameters.
func Load() (*Predictor, error) {
	data, err := paramsFS.ReadFile("params.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read model parameters: %w", err)
	}

	var p params
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse model parameters: %w", err)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	logger.Info("Loaded diabetes model", "features", len(p.FeatureNames))

	return &Predictor{p: p}, nil
}

func (p params) validate() error {
	if len(p.FeatureNames) != FeatureCount {
		return fmt.Errorf("expected %d feature names, got %d: %w", FeatureCount, len(p.FeatureNames), ErrInvalidParams)
	}
	if len(p.Means) != FeatureCount || len(p.Scales) != FeatureCount || len(p.Coefficients) != FeatureCount {
		return fmt.Errorf("parameter vectors must have %d entries: %w", FeatureCount, ErrInvalidParams)
	}
	for i, s := range p.Scales {
		if s <= 0 {
			return fmt.Errorf("scale for %s must be positive, got %g: %w", p.FeatureNames[i], s, ErrInvalidParams)
		}
	}
	return nil
}

// Predict classifies a feature vector. It scales each input with the
// training-set mean and deviation, then applies the logistic function.
func (p *Predictor) Predict(f Features) Outcome {
	v := f.vector()

	z := p.p.Intercept
	for i := 0; i < FeatureCount; i++ {
		z += p.p.Coefficients[i] * (v[i] - p.p.Means[i]) / p.p.Scales[i]
	}

	prob := 1 / (1 + math.Exp(-z))

	label := LabelNonDiabetic
	if prob >= 0.5 {
		label = LabelDiabetic
	}

	return Outcome{Label: label, Probability: prob}
}

// FeatureImportances returns each feature's share of the total absolute
// coefficient weight, in feature order. Weights sum to 1.
func (p *Predictor) FeatureImportances() []FeatureImportance {
	total := 0.0
	for _, c := range p.p.Coefficients {
		total += math.Abs(c)
	}

	out := make([]FeatureImportance, 0, FeatureCount)
	for i, name := range p.p.FeatureNames {
		weight := 0.0
		if total > 0 {
			weight = math.Abs(p.p.Coefficients[i]) / total
		}
		out = append(out, FeatureImportance{Name: name, Weight: weight})
	}

	return out
}

// FeatureNames returns the model's input names in order.
func (p *Predictor) FeatureNames() []string {
	out := make([]string, FeatureCount)
	copy(out, p.p.FeatureNames)
	return out
}
