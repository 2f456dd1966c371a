// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types for the wsframe codec and its sinks.

package api

import "fmt"

// Recoverable sink-side errors. The codec itself never returns these; they
// surface through write completions.
var (
	ErrSinkClosed   = fmt.Errorf("sink is closed")
	ErrNotSupported = fmt.Errorf("operation not supported")
)

// ContractViolation marks a violated usage contract: a programming error
// on the caller's side, never a runtime or network fault. The codec panics
// with a *ContractViolation instead of returning it, since a correct
// caller cannot trigger one.
type ContractViolation struct {
	Op     string
	Reason string
}

// Error implements the error interface.
func (v *ContractViolation) Error() string {
	return fmt.Sprintf("wsframe: contract violation in %s: %s", v.Op, v.Reason)
}

// Violate aborts the current operation with a *ContractViolation.
func Violate(op, reason string) {
	panic(&ContractViolation{Op: op, Reason: reason})
}
