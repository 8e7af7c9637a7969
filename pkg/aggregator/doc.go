// Package aggregator composes cluster wide state answers from the
// coordination service and the per node daemons and agents.
//
// # Overview
//
// The Manager is the query engine behind every listing and summary.
// Cluster wide tables (actors, placement groups, nodes, workers,
// jobs) come from the coordination service in a single call. Node
// local state (tasks, objects, runtime environments) is gathered by
// fanning out to every registered peer concurrently and joining all
// replies before post processing.
//
// Queries degrade instead of failing: an unreachable collaborator
// shrinks the data and appends a warning to the result envelope, and
// a query that reaches nothing still returns an empty listing with
// the warnings explaining why. Callers therefore never see an error
// from a list or summary operation.
package aggregator
