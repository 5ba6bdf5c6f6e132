/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package glycemia

import "errors"

var (
	// ErrInvalidMeasurement reports a value outside the practical bound
	// for its measurement kind. The value is rejected, never clamped.
	ErrInvalidMeasurement = errors.New("measurement value outside practical bound")
	// ErrEmptyInput reports an aggregation over zero results.
	ErrEmptyInput = errors.New("no classification results to aggregate")
	// ErrUnknownKind reports an unrecognized measurement kind.
	ErrUnknownKind = errors.New("unknown measurement kind")
)
