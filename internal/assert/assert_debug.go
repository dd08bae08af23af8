// File: internal/assert/assert_debug.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build circbufdebug

package assert

// Enabled reports whether checks are compiled in.
const Enabled = true

// That panics with msg when cond is false.
func That(cond bool, msg string) {
	if !cond {
		panic("circbuf: " + msg)
	}
}
