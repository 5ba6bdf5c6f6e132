/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */

// Package glycemia classifies clinical glucose measurements into the
// American Diabetes Association risk bands (Normal, Prediabetes,
// Diabetes). All operations are pure: the threshold table is fixed at
// compile time and classification derives only from its inputs.
package glycemia

// MeasurementKind identifies which clinical measurement a value represents.
type MeasurementKind string

const (
	// FastingGlucose is plasma glucose after an 8-hour fast, in mg/dL.
	FastingGlucose MeasurementKind = "fasting_glucose"
	// TwoHourGlucose is plasma glucose 2 hours into an OGTT, in mg/dL.
	TwoHourGlucose MeasurementKind = "two_hour_glucose"
	// HbA1c is glycated hemoglobin, in percent.
	HbA1c MeasurementKind = "hba1c"
)

// Kinds returns all supported measurement kinds.
func Kinds() []MeasurementKind {
	return []MeasurementKind{FastingGlucose, TwoHourGlucose, HbA1c}
}

// Unit returns the measurement unit for display.
func (k MeasurementKind) Unit() string {
	if k == HbA1c {
		return "%"
	}
	return "mg/dL"
}

// Label returns a human-readable name for the measurement kind.
func (k MeasurementKind) Label() string {
	switch k {
	case FastingGlucose:
		return "Fasting Glucose"
	case TwoHourGlucose:
		return "2-Hour Glucose"
	case HbA1c:
		return "HbA1c"
	default:
		return string(k)
	}
}

// Band is a categorical risk level derived from a single measurement.
type Band string

const (
	BandNormal      Band = "Normal"
	BandPrediabetes Band = "Prediabetes"
	BandDiabetes    Band = "Diabetes"
)

// Severity orders bands from least to most severe.
// Normal < Prediabetes < Diabetes.
func (b Band) Severity() int {
	switch b {
	case BandPrediabetes:
		return 1
	case BandDiabetes:
		return 2
	default:
		return 0
	}
}

// Measurement is a single raw clinical value of a given kind.
type Measurement struct {
	Kind  MeasurementKind
	Value float64
}

// Result pairs the matched band with its recommendation text.
type Result struct {
	Band           Band
	Recommendation string
}
