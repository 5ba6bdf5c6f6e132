/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "github.com/rizqia/glucograph/logging"

var logger = logging.Logger(logging.SourceWeb)
