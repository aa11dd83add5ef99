// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.
package carousel

import "time"

// Timer is a cancellable one-shot scheduled callback. Stop is safe to call
// after the timer has fired or been stopped; it reports whether the call
// prevented the callback from running.
type Timer interface {
	Stop() bool
}

// Clock abstracts time for the controller so tests can drive autoplay and
// transition guards deterministically.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// SystemClock returns a Clock backed by the runtime timer wheel.
func SystemClock() Clock { return systemClock{} }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
