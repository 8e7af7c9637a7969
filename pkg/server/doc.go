// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package server provides a reusable HTTP server with middleware, rate
// limiting, and lifecycle management.
//
// The server is route-agnostic: callers register their handlers via options
// and the package wraps them with a standard middleware chain:
//
//   - Prometheus RED metrics (request rate, errors, duration)
//   - API version negotiation via Accept header
//   - Request ID tracking (X-Request-Id, UUID validated)
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request/response logging
//
// # Usage
//
// Basic server startup:
//
//	routes := map[string]http.HandlerFunc{
//	    "/api/v0/actors": handleActors,
//	}
//
//	s := server.New(
//	    server.WithName("stateview-api"),
//	    server.WithVersion("v1.0.0"),
//	    server.WithHandler(routes),
//	)
//
//	if err := s.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 200 // 200 requests/sec
//	cfg.RateLimitBurst = 400
//
//	s := server.New(server.WithConfig(cfg), server.WithHandler(routes))
//
// # System Endpoints
//
// Registered automatically, outside the middleware chain:
//
//   - GET /health  - Liveness probe, always 200 while the process runs
//   - GET /ready   - Readiness probe, 503 until Start() flips readiness
//   - GET /metrics - Prometheus metrics
//
// A default root handler listing the registered routes is installed at /
// unless the caller provides one.
//
// # Error Responses
//
// All error replies share the ErrorResponse JSON shape with a structured
// code, a request ID, and a retryable hint. Handlers can use WriteError or
// WriteErrorFromErr to stay consistent with the middleware's own replies.
//
// # Shutdown
//
// Run blocks until SIGINT/SIGTERM and then drains in-flight requests within
// the configured shutdown timeout. The readiness endpoint starts reporting
// 503 as soon as draining begins so load balancers stop routing new traffic.
package server
