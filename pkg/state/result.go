package state

import "time"

// ListOptions bounds a single list query.
type ListOptions struct {
	// Filter is a comma separated list of exact equality clauses,
	// e.g. "state=ALIVE,class_name=Trainer". Malformed clauses are
	// ignored. Empty means no filtering.
	Filter string `json:"filter,omitempty" yaml:"filter,omitempty"`

	// Limit caps the number of records returned after filtering and
	// sorting. Zero returns no records.
	Limit int `json:"limit" yaml:"limit"`

	// Timeout bounds each upstream request issued for the query.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// Result is the envelope for every query answer. Data is always
// usable, possibly empty; Warnings carries the degradations that
// occurred while producing it. Queries do not fail: an unreachable
// data source shrinks Data and grows Warnings.
type Result[D any] struct {
	Data     D        `json:"data" yaml:"data"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// NewResult wraps data with the given warnings.
func NewResult[D any](data D, warnings ...string) *Result[D] {
	return &Result[D]{Data: data, Warnings: warnings}
}
