// Package assert
// Author: momentics <momentics@gmail.com>
//
// Debug-only precondition checks. With the circbufdebug build tag the
// checks panic on violation; without it they compile to nothing, keeping
// cursor stepping branch-free in release builds.
package assert
