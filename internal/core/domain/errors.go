package domain

import (
	"errors"
	"fmt"
)

// Kind classifies failures surfaced by the orchestrator. Each kind maps to
// one user-visible behaviour; see the HTTP adapter for the status codes.
type Kind string

const (
	KindConfiguration       Kind = "configuration"
	KindNotAuthenticated    Kind = "not_authenticated"
	KindAuthTimeout         Kind = "auth_timeout"
	KindAuthCancelled       Kind = "auth_cancelled"
	KindGateBlocked         Kind = "gate_blocked"
	KindValidation          Kind = "validation"
	KindService             Kind = "service"
	KindChannelDisconnected Kind = "channel_disconnected"
)

// Sentinel errors usable with errors.Is. A *Error matches the sentinel of
// its kind.
var (
	ErrConfiguration       = &Error{Kind: KindConfiguration, Message: "configuration error"}
	ErrNotAuthenticated    = &Error{Kind: KindNotAuthenticated, Message: "not authenticated"}
	ErrAuthTimeout         = &Error{Kind: KindAuthTimeout, Message: "authentication timed out"}
	ErrAuthCancelled       = &Error{Kind: KindAuthCancelled, Message: "authentication cancelled"}
	ErrGateBlocked         = &Error{Kind: KindGateBlocked, Message: "readiness score too low for paid validation"}
	ErrValidation          = &Error{Kind: KindValidation, Message: "invalid input"}
	ErrService             = &Error{Kind: KindService, Message: "ad platform request failed"}
	ErrChannelDisconnected = &Error{Kind: KindChannelDisconnected, Message: "realtime channel disconnected"}
)

// Error is the typed failure returned by every orchestrator operation.
// Message is always human readable. Guidance is only set for GateBlocked.
type Error struct {
	Kind     Kind
	Op       string
	Message  string
	Guidance string
	Err      error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality so wrapped errors match the package sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or the empty
// kind when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// NewConfigurationError reports a missing credential or unset mode.
func NewConfigurationError(op, message string) error {
	return &Error{Kind: KindConfiguration, Op: op, Message: message}
}

func NewNotAuthenticated(op string) error {
	return &Error{Kind: KindNotAuthenticated, Op: op, Message: "authenticate with the ad platform first"}
}

func NewValidationError(op, message string) error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

// NewGateBlocked carries the improvement guidance shown instead of a raw error.
func NewGateBlocked(op, guidance string) error {
	return &Error{
		Kind:     KindGateBlocked,
		Op:       op,
		Message:  "readiness score too low for paid validation",
		Guidance: guidance,
	}
}

// NewServiceError wraps a backend failure. cause is the readable summary.
func NewServiceError(op, cause string, err error) error {
	return &Error{Kind: KindService, Op: op, Message: cause, Err: err}
}

func NewAuthTimeout(op string) error {
	return &Error{Kind: KindAuthTimeout, Op: op, Message: "consent was not completed in time"}
}

func NewAuthCancelled(op string) error {
	return &Error{Kind: KindAuthCancelled, Op: op, Message: "consent window was closed before completion"}
}

func NewChannelDisconnected(op string, err error) error {
	return &Error{Kind: KindChannelDisconnected, Op: op, Message: "live updates unavailable, data may be stale", Err: err}
}
