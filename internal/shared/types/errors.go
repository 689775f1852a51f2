package types

import (
	"errors"
	"fmt"
)

var (
	ErrNoResultsByTime    = errors.New("billing response contains no time buckets")
	ErrMalformedGroup     = errors.New("usage group must have exactly 2 keys")
	ErrMissingMetric      = errors.New("usage group has no amount for metric")
	ErrInvalidAmount      = errors.New("usage group amount is not a decimal number")
	ErrMissingReportField = errors.New("cost report is missing a required field")
	ErrDocumentNotFound   = errors.New("document not found in search store")
	ErrFetchMismatch      = errors.New("fetched document does not match the indexed report")
	ErrNoSearchHost       = errors.New("no search host configured or stored in the parameter store")
)

// GroupError points at the usage group that failed validation.
type GroupError struct {
	Index int
	Err   error
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("group %d: %v", e.Index, e.Err)
}

func (e *GroupError) Unwrap() error {
	return e.Err
}

// PhaseError names the publish step that failed.
type PhaseError struct {
	Step string
	Err  error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s step failed: %v", e.Step, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}
