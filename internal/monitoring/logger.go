// Package monitoring carries the process-wide diagnostic logger. Trial
// runners report phase transitions through it so long simulations stay
// observable without threading a logger through every call.
package monitoring

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf and
// may be replaced by SetLogger; tests and quiet runs redirect or mute it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// Mute silences the package logger. Used by the CLI quiet mode.
func Mute() {
	SetLogger(nil)
}
