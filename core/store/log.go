// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package store

import "github.com/showreelio/showreel/logging"

var dbDebugEnabled bool

// SetDebug enables or disables store debug logging. Disabled by default.
func SetDebug(enabled bool) {
	dbDebugEnabled = enabled
}

func dbLogf(format string, v ...any) {
	if dbDebugEnabled {
		logging.Debugf(format, v...)
	}
}
