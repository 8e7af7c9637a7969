// Package api provides the HTTP API layer for the stateview service.
//
// This package acts as a thin wrapper around the reusable pkg/server
// package, configuring it with the state listing routes and handlers. It
// exposes the cluster state aggregation engine (pkg/aggregator) via REST.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/NVIDIA/stateview/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer is responsible for:
//   - Configuring structured logging with application name and version
//   - Loading the configuration and wiring the query sources
//   - Translating query parameters into list options
//   - Delegating server lifecycle management to pkg/server
//
// The pkg/server package handles:
//   - HTTP server setup and graceful shutdown
//   - Middleware (rate limiting, logging, metrics, panic recovery)
//   - Health and readiness endpoints
//   - Prometheus metrics
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - GET /api/v0/actors           - List actors
//   - GET /api/v0/placement_groups - List placement groups
//   - GET /api/v0/nodes            - List nodes
//   - GET /api/v0/workers          - List workers
//   - GET /api/v0/tasks            - List tasks (fan-out to node daemons)
//   - GET /api/v0/objects          - List objects (fan-out to node daemons)
//   - GET /api/v0/runtime_envs     - List runtime environments (fan-out to agents)
//   - GET /api/v0/jobs             - List jobs
//   - GET /api/v0/cluster_summary  - Aggregated cluster usage summary
//
// System endpoints (no rate limiting):
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Query Parameters
//
// The listing endpoints accept:
//   - filter: comma-separated key=value clauses, all of which must match
//     (e.g. filter=state=ALIVE,node_id=abc)
//   - limit: maximum number of results to return
//   - timeout: per-query deadline, in whole seconds or as a duration
//     string (e.g. timeout=30 or timeout=1m30s)
//
// Listings always answer 200. Upstream failures degrade the result and
// surface as warnings inside the response body; only unparseable
// parameters produce a 400.
//
// # Response Shape
//
//	{
//	    "data": { "<id>": { ... }, ... },
//	    "warnings": [
//	        "Failed to query data from some state daemons. You might have data loss. ..."
//	    ]
//	}
//
// # Systemd Integration
//
// When running under a systemd unit with Type=notify, Serve signals
// readiness via sd_notify once the query sources are wired.
package api
