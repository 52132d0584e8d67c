// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mslip

// StateError indicates a contract violation on the hardening state passed
// by the caller, e.g. a negative slip resistance. It is a caller bug, not a
// runtime physical condition.
type StateError struct {
	Msg string
}

// Error returns the message
func (e *StateError) Error() string { return e.Msg }

// NonFiniteError indicates that an evaluation produced non-finite output
// (overflow in the rate law). It is surfaced to the caller rather than
// masked; only the documented resistance floor and the optional rate clip
// modify results.
type NonFiniteError struct {
	Msg string
}

// Error returns the message
func (e *NonFiniteError) Error() string { return e.Msg }
