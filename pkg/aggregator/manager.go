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

	"github.com/NVIDIA/stateview/pkg/source"
	"github.com/NVIDIA/stateview/pkg/state"
)

// Manager answers every state query. All four collaborators must be
// set; see pkg/config for the wiring built from a config file.
//
// Operations return a Result, never an error: degradations surface as
// warnings on the envelope so that a partially reachable cluster
// still answers with whatever it has.
type Manager struct {
	// Coord queries the coordination service tables.
	Coord source.CoordinationClient

	// Peers queries individual state daemons and agents.
	Peers source.PeerClient

	// Registry enumerates the daemons and agents to fan out to.
	Registry source.Registry

	// Resources reports per node physical utilization for summaries.
	Resources source.SummaryProvider
}

// New returns a Manager over the given collaborators.
func New(coord source.CoordinationClient, peers source.PeerClient, registry source.Registry, resources source.SummaryProvider) *Manager {
	return &Manager{
		Coord:     coord,
		Peers:     peers,
		Registry:  registry,
		Resources: resources,
	}
}

// listFromCoord is the shared path for listings served by a single
// coordination service table: fetch, normalize, then paginate.
func listFromCoord[M any, R state.Keyed](ctx context.Context, entity string, opts state.ListOptions,
	fetch func(context.Context, time.Duration) ([]M, error),
	normalize func(M) (R, bool)) *state.Result[map[string]R] {

	start := time.Now()
	msgs, err := fetch(ctx, opts.Timeout)
	if err != nil {
		slog.Warn("coordination service query failed",
			slog.String("entity", entity),
			slog.String("error", err.Error()))
		observeQuery(entity, time.Since(start).Seconds(), true)
		return state.NewResult(map[string]R{}, CoordQueryFailureWarning)
	}

	records := make([]R, 0, len(msgs))
	for _, msg := range msgs {
		if rec, ok := normalize(msg); ok {
			records = append(records, rec)
		}
	}

	observeQuery(entity, time.Since(start).Seconds(), false)
	return state.NewResult(state.Paginate(records, opts))
}

// ListActors lists actors from the coordination service.
func (m *Manager) ListActors(ctx context.Context, opts state.ListOptions) *state.Result[map[string]state.Actor] {
	return listFromCoord(ctx, "actors", opts, m.Coord.GetAllActorInfo, state.NormalizeActor)
}

// ListPlacementGroups lists placement groups from the coordination
// service.
func (m *Manager) ListPlacementGroups(ctx context.Context, opts state.ListOptions) *state.Result[map[string]state.PlacementGroup] {
	return listFromCoord(ctx, "placement_groups", opts, m.Coord.GetAllPlacementGroupInfo, state.NormalizePlacementGroup)
}

// ListNodes lists cluster nodes from the coordination service.
func (m *Manager) ListNodes(ctx context.Context, opts state.ListOptions) *state.Result[map[string]state.Node] {
	return listFromCoord(ctx, "nodes", opts, m.Coord.GetAllNodeInfo, state.NormalizeNode)
}

// ListWorkers lists worker processes from the coordination service.
func (m *Manager) ListWorkers(ctx context.Context, opts state.ListOptions) *state.Result[map[string]state.Worker] {
	return listFromCoord(ctx, "workers", opts, m.Coord.GetAllWorkerInfo, state.NormalizeWorker)
}

// ListJobs lists submitted jobs. The job table is small and served
// whole: no sorting, no limit, and the query timeout is left to the
// client's own transport bounds. An empty listing is reported with
// the coordination warning because a live cluster always has at
// least its driver job on record.
func (m *Manager) ListJobs(ctx context.Context, opts state.ListOptions) *state.Result[map[string]state.Job] {
	start := time.Now()
	infos, err := m.Coord.GetJobInfo(ctx)
	if err != nil {
		slog.Warn("job table query failed", slog.String("error", err.Error()))
		observeQuery("jobs", time.Since(start).Seconds(), true)
		return state.NewResult(map[string]state.Job{}, CoordQueryFailureWarning)
	}

	records := make([]state.Job, 0, len(infos))
	for id, info := range infos {
		if rec, ok := state.NormalizeJob(id, info); ok {
			records = append(records, rec)
		}
	}

	kept := state.ApplyFilter(records, opts.Filter)
	if len(kept) == 0 {
		observeQuery("jobs", time.Since(start).Seconds(), true)
		return state.NewResult(map[string]state.Job{}, CoordQueryFailureWarning)
	}

	observeQuery("jobs", time.Since(start).Seconds(), false)
	return state.NewResult(state.KeyMap(kept))
}

// ListTasks lists tasks by fanning out to every state daemon and
// merging the replies. Daemons that fail to reply are reported in a
// warning; their tasks are simply absent.
func (m *Manager) ListTasks(ctx context.Context, opts state.ListOptions) *state.Result[map[string]state.Task] {
	start := time.Now()
	peers, err := m.Registry.Daemons(ctx)
	if err != nil {
		slog.Warn("daemon discovery failed", slog.String("error", err.Error()))
		observeQuery("tasks", time.Since(start).Seconds(), true)
		return state.NewResult(map[string]state.Task{}, CoordQueryFailureWarning)
	}
	fanoutPeers.WithLabelValues("tasks").Set(float64(len(peers)))

	replies, failures := FanOut(ctx, peers, opts.Timeout,
		func(ctx context.Context, p source.Peer) (*source.TaskInfoReply, error) {
			return m.Peers.GetTaskInfo(ctx, p, opts.Timeout)
		})

	var records []state.Task
	for _, reply := range replies {
		for _, msg := range reply.Tasks {
			if rec, ok := state.NormalizeTask(msg); ok {
				records = append(records, rec)
			}
		}
	}

	var warnings []string
	if failures > 0 {
		peerQueryFailures.WithLabelValues("tasks").Add(float64(failures))
		warnings = append(warnings, DaemonQueryFailureWarning(len(peers), failures))
	}

	observeQuery("tasks", time.Since(start).Seconds(), failures > 0)
	return state.NewResult(state.Paginate(records, opts), warnings...)
}

// ListObjects lists object references by fanning out to every state
// daemon, pooling the raw worker reports, and classifying each held
// reference.
func (m *Manager) ListObjects(ctx context.Context, opts state.ListOptions) *state.Result[map[string]state.Object] {
	start := time.Now()
	peers, err := m.Registry.Daemons(ctx)
	if err != nil {
		slog.Warn("daemon discovery failed", slog.String("error", err.Error()))
		observeQuery("objects", time.Since(start).Seconds(), true)
		return state.NewResult(map[string]state.Object{}, CoordQueryFailureWarning)
	}
	fanoutPeers.WithLabelValues("objects").Set(float64(len(peers)))

	replies, failures := FanOut(ctx, peers, opts.Timeout,
		func(ctx context.Context, p source.Peer) (*source.ObjectStatsReply, error) {
			return m.Peers.GetObjectInfo(ctx, p, opts.Timeout)
		})

	// Classification needs the cluster wide pool of worker reports,
	// not per reply slices.
	var stats []source.WorkerStats
	for _, reply := range replies {
		stats = append(stats, reply.WorkersStats...)
	}

	var records []state.Object
	for _, entry := range source.SummarizeWorkerStats(stats) {
		if rec, ok := state.NormalizeObject(entry); ok {
			records = append(records, rec)
		}
	}

	var warnings []string
	if failures > 0 {
		peerQueryFailures.WithLabelValues("objects").Add(float64(failures))
		warnings = append(warnings, DaemonQueryFailureWarning(len(peers), failures))
	}

	observeQuery("objects", time.Since(start).Seconds(), failures > 0)
	return state.NewResult(state.Paginate(records, opts), warnings...)
}

// ListRuntimeEnvs lists runtime environments by fanning out to every
// state agent. Runtime environments carry no identifier, so the
// result is a slice ordered by reference count rather than a keyed
// map.
func (m *Manager) ListRuntimeEnvs(ctx context.Context, opts state.ListOptions) *state.Result[[]state.RuntimeEnv] {
	start := time.Now()
	peers, err := m.Registry.Agents(ctx)
	if err != nil {
		slog.Warn("agent discovery failed", slog.String("error", err.Error()))
		observeQuery("runtime_envs", time.Since(start).Seconds(), true)
		return state.NewResult([]state.RuntimeEnv{}, CoordQueryFailureWarning)
	}
	fanoutPeers.WithLabelValues("runtime_envs").Set(float64(len(peers)))

	replies, failures := FanOut(ctx, peers, opts.Timeout,
		func(ctx context.Context, p source.Peer) (*source.RuntimeEnvStateReply, error) {
			return m.Peers.GetRuntimeEnvState(ctx, p, opts.Timeout)
		})

	var records []state.RuntimeEnv
	for _, reply := range replies {
		for _, msg := range reply.States {
			if rec, ok := state.NormalizeRuntimeEnv(msg); ok {
				records = append(records, rec)
			}
		}
	}

	var warnings []string
	if failures > 0 {
		peerQueryFailures.WithLabelValues("runtime_envs").Add(float64(failures))
		warnings = append(warnings, AgentQueryFailureWarning(len(peers), failures))
	}

	observeQuery("runtime_envs", time.Since(start).Seconds(), failures > 0)
	return state.NewResult(state.PaginateByRefCount(records, opts), warnings...)
}
