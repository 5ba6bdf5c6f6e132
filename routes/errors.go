/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errValueRequired      = errors.New("value is required")
	errValueNotNumeric    = errors.New("value is not numeric")
	errValueOutOfRange    = errors.New("value out of range")
	errUnknownGlucoseKind = errors.New("unknown glucose kind")
)
