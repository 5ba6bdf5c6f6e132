/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/rizqia/glucograph/db"
	"github.com/rizqia/glucograph/glycemia"
)

// thresholdGroup is one measurement kind's rows on the reference page.
type thresholdGroup struct {
	Kind       glycemia.MeasurementKind
	Label      string
	Unit       string
	Thresholds []db.GlucoseThreshold
}

// Thresholds displays the ADA diagnostic criteria the classifier
// applies, read back from the synced database table.
func Thresholds(c flamego.Context, t template.Template, data template.Data) {
	data["IsThresholds"] = true
	ctx := c.Request().Context()

	grouped, err := db.ListGlucoseThresholds(ctx)
	if err != nil {
		logger.Error("Failed to list glucose thresholds", "error", err)
		data["Error"] = "Failed to load diagnostic criteria"
		t.HTML(http.StatusOK, "thresholds")
		return
	}

	groups := make([]thresholdGroup, 0, len(glycemia.Kinds()))
	for _, kind := range glycemia.Kinds() {
		groups = append(groups, thresholdGroup{
			Kind:       kind,
			Label:      kind.Label(),
			Unit:       kind.Unit(),
			Thresholds: grouped[kind],
		})
	}

	data["Groups"] = groups
	t.HTML(http.StatusOK, "thresholds")
}
