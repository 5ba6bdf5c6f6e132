// SPDX-FileCopyrightText: 2025 Rizqia Maulina
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"math"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	p, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	names := p.FeatureNames()
	if len(names) != FeatureCount {
		t.Fatalf("expected %d feature names, got %d", FeatureCount, len(names))
	}
	if names[1] != "Glucose" {
		t.Fatalf("unexpected feature order: %v", names)
	}
}

func TestPredictMonotonicInGlucose(t *testing.T) {
	t.Parallel()

	p, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	base := Features{
		Pregnancies:      1,
		Glucose:          90,
		BloodPressure:    70,
		SkinThickness:    20,
		Insulin:          80,
		BMI:              25,
		DiabetesPedigree: 0.5,
		Age:              30,
	}

	low := p.Predict(base)

	high := base
	high.Glucose = 250
	highOutcome := p.Predict(high)

	if highOutcome.Probability <= low.Probability {
		t.Fatalf("probability should rise with glucose: %g vs %g", low.Probability, highOutcome.Probability)
	}
	if highOutcome.Label != LabelDiabetic {
		t.Fatalf("expected diabetic label at glucose 250, got %s", highOutcome.Label)
	}
	if low.Label != LabelNonDiabetic {
		t.Fatalf("expected non-diabetic label at glucose 90, got %s", low.Label)
	}
}

func TestPredictProbabilitiesComplementary(t *testing.T) {
	t.Parallel()

	p, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	outcome := p.Predict(Features{Glucose: 120, BloodPressure: 70, BMI: 28, Age: 40, DiabetesPedigree: 0.4, Insulin: 80, SkinThickness: 20, Pregnancies: 2})
	if outcome.Probability < 0 || outcome.Probability > 1 {
		t.Fatalf("probability out of range: %g", outcome.Probability)
	}

	sum := outcome.Probability + outcome.ProbabilityNonDiabetic()
	if math.Abs(sum-1) > 1e-12 {
		t.Fatalf("class probabilities do not sum to 1: %g", sum)
	}
}

func TestPredictDeterministic(t *testing.T) {
	t.Parallel()

	p, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	f := Features{Pregnancies: 3, Glucose: 145, BloodPressure: 80, SkinThickness: 25, Insulin: 130, BMI: 33, DiabetesPedigree: 0.6, Age: 45}
	if p.Predict(f) != p.Predict(f) {
		t.Fatal("Predict is not deterministic")
	}
}

func TestFeatureImportancesNormalized(t *testing.T) {
	t.Parallel()

	p, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	importances := p.FeatureImportances()
	if len(importances) != FeatureCount {
		t.Fatalf("expected %d importances, got %d", FeatureCount, len(importances))
	}

	sum := 0.0
	maxName := ""
	maxWeight := -1.0
	for _, fi := range importances {
		if fi.Weight < 0 {
			t.Fatalf("negative weight for %s", fi.Name)
		}
		sum += fi.Weight
		if fi.Weight > maxWeight {
			maxWeight = fi.Weight
			maxName = fi.Name
		}
	}

	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("importances do not sum to 1: %g", sum)
	}
	if maxName != "Glucose" {
		t.Fatalf("expected Glucose to dominate, got %s", maxName)
	}
}
