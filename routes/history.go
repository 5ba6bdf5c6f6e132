/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/rizqia/glucograph/db"
)

// History lists the session's past screenings, newest first, with a
// glucose trend chart once there are at least two.
func History(c flamego.Context, s session.Session, t template.Template, data template.Data) {
	data["IsHistory"] = true
	ctx := c.Request().Context()

	predictions, err := db.ListPredictions(ctx, s.ID())
	if err != nil {
		logger.Error("Failed to list predictions", "error", err)
		data["Error"] = "Failed to load screening history"
		t.HTML(http.StatusOK, "history")
		return
	}

	data["Predictions"] = predictions
	data["Count"] = len(predictions)

	trendChart, err := generateHistoryTrendChart(predictions)
	if err != nil {
		logger.Error("Failed to generate trend chart", "error", err)
	} else if trendChart != "" {
		data["TrendChart"] = htmltemplate.HTML(trendChart)
	}

	t.HTML(http.StatusOK, "history")
}

// ClearHistory deletes all of the session's stored screenings.
func ClearHistory(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()

	cleared, err := db.ClearPredictions(ctx, s.ID())
	if err != nil {
		logger.Error("Failed to clear predictions", "error", err)
		SetErrorFlash(s, "Failed to clear screening history")
	} else if cleared > 0 {
		SetSuccessFlash(s, "Screening history cleared")
	} else {
		SetInfoFlash(s, "No screenings to clear")
	}

	c.Redirect("/history", http.StatusSeeOther)
}
