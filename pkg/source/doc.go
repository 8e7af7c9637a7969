// Package source defines the boundary between stateview and the
// cluster components it queries.
//
// # Overview
//
// Three collaborator roles feed the aggregation engine:
//
//   - The coordination service holds cluster wide tables: actors,
//     placement groups, nodes, workers and jobs. One authoritative
//     endpoint, queried once per listing.
//   - State daemons run one per node and answer for node local
//     state: tasks and object references held by that node's workers.
//   - State agents run one per node and track the runtime
//     environments installed there.
//
// The interfaces in this package describe those roles; the message
// structs describe their replies. HTTP implementations are provided
// for all of them, plus three peer registries (static, coordination
// backed, Kubernetes backed) that enumerate the daemons and agents
// to fan out to.
//
// Implementations return an error when a collaborator cannot be
// reached; deciding how a failure degrades a query result is the
// caller's concern, not this package's.
package source
