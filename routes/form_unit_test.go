// SPDX-FileCopyrightText: 2025 Rizqia Maulina
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"errors"
	"net/url"
	"testing"

	"github.com/rizqia/glucograph/glycemia"
)

func TestParseFieldValue(t *testing.T) {
	t.Parallel()

	field := FormField{Name: "glucose", Label: "Glucose", Min: 50, Max: 400}

	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr error
	}{
		{name: "valid", raw: "120", want: 120},
		{name: "valid with spaces", raw: " 120 ", want: 120},
		{name: "lower bound", raw: "50", want: 50},
		{name: "upper bound", raw: "400", want: 400},
		{name: "missing", raw: "", wantErr: errValueRequired},
		{name: "not numeric", raw: "abc", wantErr: errValueNotNumeric},
		{name: "below range", raw: "49.9", wantErr: errValueOutOfRange},
		{name: "above range", raw: "400.1", wantErr: errValueOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := url.Values{}
			if tt.raw != "" {
				form.Set(field.Name, tt.raw)
			}

			got, err := parseFieldValue(form, field)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseFieldValue error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseFieldValue returned error: %v", err)
			}

			if got != tt.want {
				t.Fatalf("parseFieldValue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseGlucoseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    glycemia.MeasurementKind
		wantErr bool
	}{
		{name: "fasting", raw: "fasting_glucose", want: glycemia.FastingGlucose},
		{name: "two hour", raw: "two_hour_glucose", want: glycemia.TwoHourGlucose},
		{name: "empty defaults to two hour", raw: "", want: glycemia.TwoHourGlucose},
		{name: "unknown", raw: "random_glucose", wantErr: true},
		{name: "hba1c is not a selector value", raw: "hba1c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseGlucoseKind(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, errUnknownGlucoseKind) {
					t.Fatalf("parseGlucoseKind error = %v, want errUnknownGlucoseKind", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("parseGlucoseKind returned error: %v", err)
			}

			if got != tt.want {
				t.Fatalf("parseGlucoseKind = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreeningFieldsCoverModelInputs(t *testing.T) {
	t.Parallel()

	if len(screeningFields) != 8 {
		t.Fatalf("expected 8 screening fields, got %d", len(screeningFields))
	}

	seen := make(map[string]bool, len(screeningFields))
	for _, field := range screeningFields {
		if seen[field.Name] {
			t.Fatalf("duplicate field name %q", field.Name)
		}
		seen[field.Name] = true

		if field.Min >= field.Max {
			t.Errorf("field %q has invalid range [%g, %g]", field.Name, field.Min, field.Max)
		}
		if field.Default < field.Min || field.Default > field.Max {
			t.Errorf("field %q default %g outside [%g, %g]", field.Name, field.Default, field.Min, field.Max)
		}
	}
}
