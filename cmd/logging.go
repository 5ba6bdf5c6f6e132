/*
 * Copyright 2025 Rizqia Maulina
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/rizqia/glucograph/logging"

var appLogger = logging.Logger(logging.SourceApp)
