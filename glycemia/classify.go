/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package glycemia

import "fmt"

// recommendations maps each band to its advice text.
var recommendations = map[Band]string{
	BandNormal:      "Maintain current lifestyle",
	BandPrediabetes: "Lifestyle modification advised; retest in 3-6 months",
	BandDiabetes:    "Consult a physician; confirm with repeat testing",
}

// Recommendation returns the advice text for a band.
func Recommendation(band Band) string {
	return recommendations[band]
}

// Classify resolves a measurement to its ADA band and recommendation.
// It returns ErrInvalidMeasurement when the value falls outside the
// kind's practical bound.
func Classify(m Measurement) (Result, error) {
	bound, err := BoundFor(m.Kind)
	if err != nil {
		return Result{}, err
	}

	if m.Value < bound.Min || m.Value > bound.Max {
		return Result{}, fmt.Errorf("%s value %g not in [%g, %g]: %w",
			m.Kind.Label(), m.Value, bound.Min, bound.Max, ErrInvalidMeasurement)
	}

	for _, rule := range thresholdTable[m.Kind] {
		if rule.contains(m.Value) {
			return Result{Band: rule.Band, Recommendation: recommendations[rule.Band]}, nil
		}
	}

	// Unreachable: the rules partition the real line.
	return Result{}, fmt.Errorf("no rule matched %s value %g: %w", m.Kind.Label(), m.Value, ErrUnknownKind)
}

// Aggregate combines per-measurement results into the overall band,
// taking the maximum by severity. Any single measurement in the
// Diabetes band makes the aggregate Diabetes, mirroring the ADA rule
// that meeting any one diagnostic criterion is sufficient.
func Aggregate(results []Result) (Band, error) {
	if len(results) == 0 {
		return "", ErrEmptyInput
	}

	overall := results[0].Band
	for _, r := range results[1:] {
		if r.Band.Severity() > overall.Severity() {
			overall = r.Band
		}
	}

	return overall, nil
}
