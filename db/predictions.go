/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const predictionColumns = `
	id, session_id, pregnancies, glucose, blood_pressure, skin_thickness,
	insulin, bmi, diabetes_pedigree, age, hba1c, glucose_kind,
	risk_label, risk_probability, glucose_band, hba1c_band, overall_band,
	recommendation, created_at
`

func scanPrediction(row pgx.Row) (*Prediction, error) {
	var p Prediction
	err := row.Scan(
		&p.ID, &p.SessionID, &p.Pregnancies, &p.Glucose, &p.BloodPressure, &p.SkinThickness,
		&p.Insulin, &p.BMI, &p.DiabetesPedigree, &p.Age, &p.HbA1c, &p.GlucoseKind,
		&p.RiskLabel, &p.RiskProbability, &p.GlucoseBand, &p.HbA1cBand, &p.OverallBand,
		&p.Recommendation, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// InsertPrediction stores a screening result and fills in its generated
// ID and timestamp.
func InsertPrediction(ctx context.Context, p *Prediction) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	query := `
		INSERT INTO predictions (
			session_id, pregnancies, glucose, blood_pressure, skin_thickness,
			insulin, bmi, diabetes_pedigree, age, hba1c, glucose_kind,
			risk_label, risk_probability, glucose_band, hba1c_band, overall_band,
			recommendation
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at
	`

	err := pool.QueryRow(ctx, query,
		p.SessionID, p.Pregnancies, p.Glucose, p.BloodPressure, p.SkinThickness,
		p.Insulin, p.BMI, p.DiabetesPedigree, p.Age, p.HbA1c, p.GlucoseKind,
		p.RiskLabel, p.RiskProbability, p.GlucoseBand, p.HbA1cBand, p.OverallBand,
		p.Recommendation,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}

	return nil
}

// GetPrediction returns a single prediction by ID, scoped to a session
// so one visitor cannot read another visitor's results.
func GetPrediction(ctx context.Context, id, sessionID string) (*Prediction, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `SELECT ` + predictionColumns + ` FROM predictions WHERE id = $1 AND session_id = $2`

	p, err := scanPrediction(pool.QueryRow(ctx, query, id, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPredictionNotFound
		}
		return nil, fmt.Errorf("failed to get prediction: %w", err)
	}

	return p, nil
}

// ListPredictions returns all predictions for a session, newest first.
func ListPredictions(ctx context.Context, sessionID string) ([]Prediction, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `SELECT ` + predictionColumns + ` FROM predictions WHERE session_id = $1 ORDER BY created_at DESC`

	rows, err := pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	var predictions []Prediction
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		predictions = append(predictions, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating predictions: %w", err)
	}

	return predictions, nil
}

// CountPredictions returns the number of stored predictions for a session.
func CountPredictions(ctx context.Context, sessionID string) (int, error) {
	if pool == nil {
		return 0, ErrDatabaseConnectionNotInitialized
	}

	var count int
	err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM predictions WHERE session_id = $1`, sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count predictions: %w", err)
	}

	return count, nil
}

// ClearPredictions deletes all predictions for a session and returns
// the number of rows removed.
func ClearPredictions(ctx context.Context, sessionID string) (int, error) {
	if pool == nil {
		return 0, ErrDatabaseConnectionNotInitialized
	}

	tag, err := pool.Exec(ctx, `DELETE FROM predictions WHERE session_id = $1`, sessionID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear predictions: %w", err)
	}

	return int(tag.RowsAffected()), nil
}
