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

package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/NVIDIA/stateview/pkg/aggregator"
	"github.com/NVIDIA/stateview/pkg/errors"
	"github.com/NVIDIA/stateview/pkg/serializer"
	"github.com/NVIDIA/stateview/pkg/server"
	"github.com/NVIDIA/stateview/pkg/state"
)

// Route paths served by the API.
const (
	PathActors          = "/api/v0/actors"
	PathPlacementGroups = "/api/v0/placement_groups"
	PathNodes           = "/api/v0/nodes"
	PathWorkers         = "/api/v0/workers"
	PathTasks           = "/api/v0/tasks"
	PathObjects         = "/api/v0/objects"
	PathRuntimeEnvs     = "/api/v0/runtime_envs"
	PathJobs            = "/api/v0/jobs"
	PathClusterSummary  = "/api/v0/cluster_summary"
)

// handlers binds the query manager to HTTP, translating query parameters
// into list options. List replies are always 200: partial failures travel
// as warnings inside the body, and only unparseable parameters produce
// an error status.
type handlers struct {
	mgr            *aggregator.Manager
	defaultTimeout time.Duration
	defaultLimit   int
}

func newHandlers(mgr *aggregator.Manager, timeout time.Duration, limit int) *handlers {
	return &handlers{
		mgr:            mgr,
		defaultTimeout: timeout,
		defaultLimit:   limit,
	}
}

// routes returns the route table for server registration.
func (h *handlers) routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathActors: h.list(func(ctx context.Context, opts state.ListOptions) any {
			return h.mgr.ListActors(ctx, opts)
		}),
		PathPlacementGroups: h.list(func(ctx context.Context, opts state.ListOptions) any {
			return h.mgr.ListPlacementGroups(ctx, opts)
		}),
		PathNodes: h.list(func(ctx context.Context, opts state.ListOptions) any {
			return h.mgr.ListNodes(ctx, opts)
		}),
		PathWorkers: h.list(func(ctx context.Context, opts state.ListOptions) any {
			return h.mgr.ListWorkers(ctx, opts)
		}),
		PathTasks: h.list(func(ctx context.Context, opts state.ListOptions) any {
			return h.mgr.ListTasks(ctx, opts)
		}),
		PathObjects: h.list(func(ctx context.Context, opts state.ListOptions) any {
			return h.mgr.ListObjects(ctx, opts)
		}),
		PathRuntimeEnvs: h.list(func(ctx context.Context, opts state.ListOptions) any {
			return h.mgr.ListRuntimeEnvs(ctx, opts)
		}),
		PathJobs: h.list(func(ctx context.Context, opts state.ListOptions) any {
			return h.mgr.ListJobs(ctx, opts)
		}),
		PathClusterSummary: h.handleClusterSummary,
	}
}

// list wraps one listing operation with method and parameter handling.
func (h *handlers) list(query func(context.Context, state.ListOptions) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !h.requireGet(w, r) {
			return
		}

		opts, err := h.listOptions(r)
		if err != nil {
			server.WriteErrorFromErr(w, r, err, "Invalid query parameters", nil)
			return
		}

		serializer.RespondJSON(w, http.StatusOK, query(r.Context(), opts))
	}
}

// handleClusterSummary handles GET /api/v0/cluster_summary. The summary
// takes no parameters; its listing bounds are fixed.
func (h *handlers) handleClusterSummary(w http.ResponseWriter, r *http.Request) {
	if !h.requireGet(w, r) {
		return
	}

	serializer.RespondJSON(w, http.StatusOK, h.mgr.Summary(r.Context()))
}

func (h *handlers) requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}

	w.Header().Set("Allow", http.MethodGet)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method": r.Method,
		})
	return false
}

// listOptions reads filter, limit, and timeout query parameters, falling
// back to the configured defaults.
func (h *handlers) listOptions(r *http.Request) (state.ListOptions, error) {
	q := r.URL.Query()

	opts := state.ListOptions{
		Filter:  q.Get("filter"),
		Limit:   h.defaultLimit,
		Timeout: h.defaultTimeout,
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return opts, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"invalid limit parameter", map[string]any{"limit": raw})
		}
		opts.Limit = limit
	}

	if raw := q.Get("timeout"); raw != "" {
		timeout, err := parseTimeout(raw)
		if err != nil {
			return opts, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"invalid timeout parameter", map[string]any{"timeout": raw})
		}
		opts.Timeout = timeout
	}

	return opts, nil
}

// parseTimeout accepts whole seconds ("30") or duration strings ("1m30s").
func parseTimeout(raw string) (time.Duration, error) {
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("timeout must be positive, got %d", secs)
		}
		return time.Duration(secs) * time.Second, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", d)
	}
	return d, nil
}
