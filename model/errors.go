/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package model

import "errors"

var (
	// ErrInvalidParams reports a malformed embedded parameter file.
	ErrInvalidParams = errors.New("invalid model parameters")
)
