// File: internal/assert/assert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

//go:build !circbufdebug

package assert

// Enabled reports whether checks are compiled in.
const Enabled = false

// That is a no-op in release builds; violating the stated condition is a
// documented precondition breach with unspecified behavior.
func That(bool, string) {}
