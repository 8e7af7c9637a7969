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

package aggregator

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/stateview/pkg/defaults"
	"github.com/NVIDIA/stateview/pkg/state"
)

// Summary builds the cluster rollup: per node utilization and worker
// population, actor breakdowns per node and cluster wide, and the
// cluster wide task breakdown.
//
// The actor, task and worker listings run concurrently with fixed
// summary options; their warnings carry over to the summary
// envelope. Node utilization comes from the resource monitor, and
// when that is unreachable the summary still covers everything the
// listings provided.
func (m *Manager) Summary(ctx context.Context) *state.Result[*state.ClusterSummary] {
	start := time.Now()
	opts := state.ListOptions{
		Timeout: defaults.SummaryQueryTimeout,
		Limit:   defaults.SummaryQueryLimit,
	}

	var (
		actors  *state.Result[map[string]state.Actor]
		tasks   *state.Result[map[string]state.Task]
		workers *state.Result[map[string]state.Worker]
	)

	var g errgroup.Group
	g.Go(func() error { actors = m.ListActors(ctx, opts); return nil })
	g.Go(func() error { tasks = m.ListTasks(ctx, opts); return nil })
	g.Go(func() error { workers = m.ListWorkers(ctx, opts); return nil })
	// Listings degrade instead of erroring; Wait is only the barrier.
	_ = g.Wait()

	var warnings []string
	warnings = append(warnings, actors.Warnings...)
	warnings = append(warnings, tasks.Warnings...)
	warnings = append(warnings, workers.Warnings...)

	sum := state.NewClusterSummary()

	resources, err := m.Resources.GetNodeResourceSummary(ctx)
	if err != nil {
		slog.Warn("node resource summary unavailable", slog.String("error", err.Error()))
		warnings = append(warnings, CoordQueryFailureWarning)
	}
	for _, r := range resources {
		sum.ObserveNodeResources(r)
	}

	for _, a := range actors.Data {
		sum.ObserveActor(a)
	}
	for _, t := range tasks.Data {
		sum.ObserveTask(t)
	}
	for _, w := range workers.Data {
		sum.ObserveWorker(w)
	}

	warnings = dedupeWarnings(warnings)
	observeQuery("summary", time.Since(start).Seconds(), len(warnings) > 0)
	return state.NewResult(sum, warnings...)
}

// dedupeWarnings drops repeated warning strings, keeping first
// occurrence order. A coordination outage would otherwise repeat the
// same warning once per composed listing.
func dedupeWarnings(warnings []string) []string {
	if len(warnings) < 2 {
		return warnings
	}
	seen := make(map[string]struct{}, len(warnings))
	out := warnings[:0]
	for _, w := range warnings {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
