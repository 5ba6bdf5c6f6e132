/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"

	"github.com/rizqia/glucograph/glycemia"
)

// SyncGlucoseThresholds synchronizes the in-code ADA threshold table to
// the database. Called on application startup so the stored copy always
// matches the authoritative table in the glycemia package.
func SyncGlucoseThresholds(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	query := `
		INSERT INTO glucose_thresholds (measurement_kind, band, lower_bound, upper_bound)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (measurement_kind, band)
		DO UPDATE SET
			lower_bound = EXCLUDED.lower_bound,
			upper_bound = EXCLUDED.upper_bound,
			updated_at = now()
	`

	syncCount := 0

	for _, kind := range glycemia.Kinds() {
		rules, err := glycemia.BoundsFor(kind)
		if err != nil {
			return fmt.Errorf("failed to read threshold rules for %s: %w", kind, err)
		}

		for _, rule := range rules {
			_, err := pool.Exec(ctx, query, rule.Kind, rule.Band, rule.Lower, rule.Upper)
			if err != nil {
				return fmt.Errorf("failed to sync threshold for %s/%s: %w", rule.Kind, rule.Band, err)
			}

			syncCount++
		}
	}

	logger.Infof("Successfully synced %d glucose thresholds", syncCount)

	return nil
}

// ListGlucoseThresholds returns the stored threshold rows grouped by
// measurement kind, each group ordered by band severity.
func ListGlucoseThresholds(ctx context.Context) (map[glycemia.MeasurementKind][]GlucoseThreshold, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `
		SELECT id, measurement_kind, band, lower_bound, upper_bound, created_at, updated_at
		FROM glucose_thresholds
		ORDER BY measurement_kind, lower_bound ASC NULLS FIRST
	`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list glucose thresholds: %w", err)
	}
	defer rows.Close()

	out := make(map[glycemia.MeasurementKind][]GlucoseThreshold)
	for rows.Next() {
		var t GlucoseThreshold
		err := rows.Scan(&t.ID, &t.MeasurementKind, &t.Band, &t.LowerBound, &t.UpperBound, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan threshold: %w", err)
		}
		out[t.MeasurementKind] = append(out[t.MeasurementKind], t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating thresholds: %w", err)
	}

	return out, nil
}
