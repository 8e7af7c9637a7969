// Package state defines the canonical record types surfaced by the
// stateview API and the query primitives applied to them.
//
// # Overview
//
// Every cluster entity (actor, task, node, worker, placement group,
// object, runtime environment, job) has exactly one record type here.
// The record struct is the schema: fields not declared on the struct
// are never surfaced, no matter what a data source reports.
//
// Records flow through a fixed pipeline:
//
//	normalize -> filter -> sort -> truncate
//
// Filtering is driven by a comma separated expression of exact
// equality clauses ("state=ALIVE,class_name=Trainer"). Sorting is
// ascending by the record's canonical identifier, and truncation
// keeps the first ListOptions.Limit records. The pipeline never
// fails; malformed filter clauses are dropped and records without a
// usable identifier are skipped during normalization.
//
// Query results are wrapped in a Result envelope that carries the
// data together with any warnings accumulated while producing it.
package state
