package stats

import (
	"errors"
	"fmt"
)

// ErrInvalidFilter matches every InvalidFilterError.
var ErrInvalidFilter = errors.New("invalid report filter")

// InvalidFilterError rejects a malformed hostel or date-range filter.
type InvalidFilterError struct {
	Field  string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *InvalidFilterError) Is(target error) bool {
	return target == ErrInvalidFilter
}

// DataStoreError is a failed read against the store, tagged with the query that failed.
type DataStoreError struct {
	Op  string
	Err error
}

func (e *DataStoreError) Error() string {
	return fmt.Sprintf("data store: %s: %v", e.Op, e.Err)
}

func (e *DataStoreError) Unwrap() error {
	return e.Err
}

// AggregationError is the single failure surfaced when any part of a report
// cannot be computed. No partial report accompanies it.
type AggregationError struct {
	Report string
	Err    error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregate %s report: %v", e.Report, e.Err)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}
