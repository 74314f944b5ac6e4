package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Outcome is the result of one asynchronous request: either a success
// carrying records or a failure carrying a reason.
type Outcome struct {
	records []Record
	err     error
}

// Success creates a successful outcome. The slice is copied so later
// changes by the caller do not leak into the outcome.
func Success(records []Record) Outcome {
	copied := make([]Record, len(records))
	copy(copied, records)
	return Outcome{records: copied}
}

// Failure creates a failed outcome. A nil error is replaced by a generic one
// so that a failure always has a non-empty reason.
func Failure(err error) Outcome {
	if err == nil {
		err = goerr.New("unknown failure")
	}
	return Outcome{err: err}
}

// IsSuccess returns true for a successful outcome
func (o Outcome) IsSuccess() bool {
	return o.err == nil
}

// Records returns a copy of the payload of a successful outcome
func (o Outcome) Records() []Record {
	if o.err != nil {
		return nil
	}
	copied := make([]Record, len(o.records))
	copy(copied, o.records)
	return copied
}

// Err returns the failure cause, or nil for a success
func (o Outcome) Err() error {
	return o.err
}

// Reason returns the human readable failure reason, or "" for a success
func (o Outcome) Reason() string {
	if o.err == nil {
		return ""
	}
	return o.err.Error()
}
