// Package cli implements the command-line interface for the stateview tool.
//
// # Overview
//
// The stateview CLI answers "what is happening in the cluster right now"
// from a terminal. It queries the same sources the stateviewd API server
// does: the coordination service tables for cluster scoped entities, and
// the per node state daemons and agents for distributed ones. It is
// designed for operators debugging live workloads without going through
// a dashboard.
//
// # Commands
//
// list - List the live records of one entity:
//
//	stateview list <entity> [--filter col=val,...] [--limit N] [--timeout D]
//
// Entities: actors, placement_groups, nodes, workers, tasks, objects,
// runtime_envs, jobs. Records are filtered, sorted by identifier, and
// capped at the limit. Output defaults to stdout in JSON format.
//
// summary - Summarize cluster wide state:
//
//	stateview summary [--format table]
//
// Groups tasks by function and state, actors by class and state per
// hosting node, and reports per node resource utilization.
//
// serve - Run the state aggregation API server:
//
//	stateview serve [--config /etc/stateview/config.yaml]
//
// Runs the same HTTP server the stateviewd binary runs, in the
// foreground, with graceful shutdown on SIGINT/SIGTERM.
//
// # Degraded Results
//
// Listings and summaries never fail because a source went away: records
// from unreachable daemons are simply absent and the report carries a
// warning per failed source. An exit code of 0 therefore means the query
// ran, not that every source answered; check the warnings in the output.
//
// # Global Flags
//
//	--output, -o   Output path (default: stdout, supports cm://namespace/name)
//	--format, -f   Output format: json, yaml, table (default: json)
//	--config, -c   Config file path (default: $STATEVIEW_CONFIG)
//	--coord        Coordination service endpoint override
//	--log-level    Logging verbosity (debug, info, warn, error)
//
// # Usage Examples
//
// List alive actors:
//
//	stateview list actors --filter state=ALIVE
//
// List tasks from a remote cluster as a table:
//
//	stateview list tasks --coord http://head-node:8265 --format table
//
// Write the cluster summary to a ConfigMap:
//
//	stateview summary --output cm://observability/cluster-summary
//
// # Environment Variables
//
//	STATEVIEW_CONFIG          Config file path
//	STATEVIEW_COORD_ENDPOINT  Coordination service endpoint
//	STATEVIEW_QUERY_TIMEOUT   Default per source query timeout
//	STATEVIEW_QUERY_LIMIT     Default record limit
//	LOG_LEVEL                 Logging verbosity (debug, info, warn, error)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/config - Configuration loading and source wiring
//   - pkg/aggregator - Fan-out queries and summarization
//   - pkg/serializer - Output formatting
//   - pkg/api - The served HTTP surface (serve command)
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/stateview/pkg/cli.version=1.0.0'"
package cli
