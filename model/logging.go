/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package model

import "github.com/rizqia/glucograph/logging"

var logger = logging.Logger(logging.SourceModel)
