package wire

import "fmt"

// Reason categorizes a decode rejection.
type Reason string

const (
	ReasonMalformed      Reason = "malformed"
	ReasonMissingVersion Reason = "missing_version"
	ReasonUnknownVersion Reason = "unknown_version"
	ReasonMissingStart   Reason = "missing_start"
	ReasonUnknownGoto    Reason = "unknown_goto"
)

// DecodeError reports why a payload was rejected. Field names the JSON
// location when one applies; Value carries the offending literal.
type DecodeError struct {
	Field  string
	Reason Reason
	Value  string
	cause  error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("decode flow: %s", e.Reason)
	if e.Field != "" {
		msg += fmt.Sprintf(" at %s", e.Field)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (%q)", e.Value)
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *DecodeError) Unwrap() error { return e.cause }
