/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/rizqia/glucograph/glycemia"
)

// FormField describes one numeric input on the screening form. Min and
// Max bound what the form accepts; submissions outside the range are
// rejected server-side as well.
type FormField struct {
	Name    string
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Help    string
}

// screeningFields lists the eight model inputs in Pima dataset order.
var screeningFields = []FormField{
	{Name: "pregnancies", Label: "Pregnancies", Min: 0, Max: 20, Step: 1, Default: 1,
		Help: "Number of times pregnant"},
	{Name: "glucose", Label: "Glucose", Unit: "mg/dL", Min: 50, Max: 400, Step: 1, Default: 120,
		Help: "Plasma glucose concentration"},
	{Name: "blood_pressure", Label: "Blood Pressure", Unit: "mm Hg", Min: 40, Max: 180, Step: 1, Default: 70,
		Help: "Diastolic blood pressure"},
	{Name: "skin_thickness", Label: "Skin Thickness", Unit: "mm", Min: 0, Max: 99, Step: 1, Default: 20,
		Help: "Triceps skin fold thickness"},
	{Name: "insulin", Label: "Insulin", Unit: "µU/mL", Min: 0, Max: 1000, Step: 1, Default: 80,
		Help: "2-hour serum insulin"},
	{Name: "bmi", Label: "BMI", Unit: "kg/m²", Min: 10, Max: 60, Step: 0.1, Default: 25,
		Help: "Body Mass Index"},
	{Name: "diabetes_pedigree", Label: "Diabetes Pedigree", Min: 0.08, Max: 2.5, Step: 0.01, Default: 0.5,
		Help: "Family history function"},
	{Name: "age", Label: "Age", Unit: "years", Min: 0, Max: 100, Step: 1, Default: 30,
		Help: "Age in years"},
}

// hba1cField is the optional HbA1c input. Its range follows the
// practical bounds used by the classifier.
var hba1cField = FormField{
	Name: "hba1c", Label: "HbA1c", Unit: "%", Min: 3, Max: 15, Step: 0.1,
	Help: "Glycated hemoglobin, if known",
}

// glucoseKindOption is one entry of the fasting/2-hour selector.
type glucoseKindOption struct {
	Value    glycemia.MeasurementKind
	Label    string
	Selected bool
}

func glucoseKindOptions(selected glycemia.MeasurementKind) []glucoseKindOption {
	return []glucoseKindOption{
		{Value: glycemia.TwoHourGlucose, Label: "2-hour OGTT", Selected: selected == glycemia.TwoHourGlucose},
		{Value: glycemia.FastingGlucose, Label: "Fasting (8-hour)", Selected: selected == glycemia.FastingGlucose},
	}
}

// ScreeningForm renders the screening input form.
func ScreeningForm(c flamego.Context, t template.Template, data template.Data) {
	data["IsScreening"] = true
	data["Fields"] = screeningFields
	data["HbA1cField"] = hba1cField
	data["GlucoseKinds"] = glucoseKindOptions(glycemia.TwoHourGlucose)
	t.HTML(http.StatusOK, "form")
}

// parseFieldValue reads and validates one numeric form value against
// its field bounds.
func parseFieldValue(form url.Values, field FormField) (float64, error) {
	raw := strings.TrimSpace(form.Get(field.Name))
	if raw == "" {
		return 0, errValueRequired
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errValueNotNumeric
	}

	if value < field.Min || value > field.Max {
		return 0, errValueOutOfRange
	}

	return value, nil
}

// parseGlucoseKind validates the fasting/2-hour selector value.
func parseGlucoseKind(raw string) (glycemia.MeasurementKind, error) {
	kind := glycemia.MeasurementKind(strings.TrimSpace(raw))
	switch kind {
	case glycemia.FastingGlucose, glycemia.TwoHourGlucose:
		return kind, nil
	case "":
		// The original screening form interprets glucose as a 2-hour
		// OGTT value, so that stays the default.
		return glycemia.TwoHourGlucose, nil
	default:
		return "", errUnknownGlucoseKind
	}
}
