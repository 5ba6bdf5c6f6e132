/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/skip2/go-qrcode"

	"github.com/rizqia/glucograph/db"
)

// PredictionQR serves a QR code PNG that links back to a screening
// result. The result itself stays session-scoped; the code only
// encodes the URL.
func PredictionQR(c flamego.Context, s session.Session) {
	ctx := c.Request().Context()
	id := c.Param("id")

	prediction, err := db.GetPrediction(ctx, id, s.ID())
	if err != nil {
		if !errors.Is(err, db.ErrPredictionNotFound) {
			logger.Error("Failed to fetch prediction for QR", "id", id, "error", err)
		}
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
		return
	}

	link := resultURL(c, prediction.ID.String())

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		logger.Error("Failed to generate QR code", "id", id, "error", err)
		c.ResponseWriter().WriteHeader(http.StatusInternalServerError)
		return
	}

	w := c.ResponseWriter()
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(png); err != nil {
		logger.Error("Failed to write QR code response", "id", id, "error", err)
	}
}

func resultURL(c flamego.Context, id string) string {
	scheme := "http"
	if c.Request().TLS != nil || c.Request().Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}

	return scheme + "://" + c.Request().Host + "/predictions/" + id
}
