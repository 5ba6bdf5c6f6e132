/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package static

import "embed"

// Static contains embedded files from the static directory.
//
//go:embed *.css
var Static embed.FS
