/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package glycemia

// ThresholdRule is one band interval for a measurement kind. Lower is
// inclusive and Upper is exclusive; nil stands for an open end, so for
// each kind the rules partition the real line with no gaps or overlaps.
type ThresholdRule struct {
	Kind  MeasurementKind
	Band  Band
	Lower *float64
	Upper *float64
}

// PracticalBound is the input-validity range enforced on a measurement
// kind before classification.
type PracticalBound struct {
	Min float64
	Max float64
}

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}

// thresholdTable is the single source of truth for the ADA diagnostic
// bands. The database copy is synced from here for display only.
//
// ADA criteria:
//
//	Fasting glucose:  Normal < 100, Prediabetes 100-125, Diabetes >= 126 mg/dL
//	2-hour glucose:   Normal < 140, Prediabetes 140-199, Diabetes >= 200 mg/dL
//	HbA1c:            Normal < 5.7, Prediabetes 5.7-6.4, Diabetes >= 6.5 %
var thresholdTable = map[MeasurementKind][]ThresholdRule{
	FastingGlucose: {
		{Kind: FastingGlucose, Band: BandNormal, Lower: nil, Upper: ptr(100)},
		{Kind: FastingGlucose, Band: BandPrediabetes, Lower: ptr(100), Upper: ptr(126)},
		{Kind: FastingGlucose, Band: BandDiabetes, Lower: ptr(126), Upper: nil},
	},
	TwoHourGlucose: {
		{Kind: TwoHourGlucose, Band: BandNormal, Lower: nil, Upper: ptr(140)},
		{Kind: TwoHourGlucose, Band: BandPrediabetes, Lower: ptr(140), Upper: ptr(200)},
		{Kind: TwoHourGlucose, Band: BandDiabetes, Lower: ptr(200), Upper: nil},
	},
	HbA1c: {
		{Kind: HbA1c, Band: BandNormal, Lower: nil, Upper: ptr(5.7)},
		{Kind: HbA1c, Band: BandPrediabetes, Lower: ptr(5.7), Upper: ptr(6.5)},
		{Kind: HbA1c, Band: BandDiabetes, Lower: ptr(6.5), Upper: nil},
	},
}

// practicalBounds holds the validity range per measurement kind.
var practicalBounds = map[MeasurementKind]PracticalBound{
	FastingGlucose: {Min: 50, Max: 400},
	TwoHourGlucose: {Min: 50, Max: 400},
	HbA1c:          {Min: 3, Max: 15},
}

// BoundsFor returns the threshold rules for a measurement kind, ordered
// by ascending lower bound. The returned slice is a copy.
func BoundsFor(kind MeasurementKind) ([]ThresholdRule, error) {
	rules, ok := thresholdTable[kind]
	if !ok {
		return nil, ErrUnknownKind
	}

	out := make([]ThresholdRule, len(rules))
	copy(out, rules)
	return out, nil
}

// BoundFor returns the practical bound for a measurement kind.
func BoundFor(kind MeasurementKind) (PracticalBound, error) {
	bound, ok := practicalBounds[kind]
	if !ok {
		return PracticalBound{}, ErrUnknownKind
	}
	return bound, nil
}

// contains reports whether the rule's interval contains the value.
func (r ThresholdRule) contains(value float64) bool {
	if r.Lower != nil && value < *r.Lower {
		return false
	}
	if r.Upper != nil && value >= *r.Upper {
		return false
	}
	return true
}
