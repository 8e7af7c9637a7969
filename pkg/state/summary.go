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

package state

import (
	"math"
	"strconv"

	"github.com/NVIDIA/stateview/pkg/source"
)

// ActorClassSummary counts the actors of one class by lifecycle
// state. Count is the total including states without their own
// bucket.
type ActorClassSummary struct {
	Count           int `json:"cnt" yaml:"cnt"`
	DepUnreadyCount int `json:"dep_unready_cnt" yaml:"dep_unready_cnt"`
	PendingCount    int `json:"pending_cnt" yaml:"pending_cnt"`
	AliveCount      int `json:"alive_cnt" yaml:"alive_cnt"`
	RestartingCount int `json:"restarting_cnt" yaml:"restarting_cnt"`
	DeadCount       int `json:"dead_cnt" yaml:"dead_cnt"`
}

func (s *ActorClassSummary) observe(state string) {
	s.Count++
	switch state {
	case ActorStateDependenciesUnready:
		s.DepUnreadyCount++
	case ActorStatePendingCreation:
		s.PendingCount++
	case ActorStateAlive:
		s.AliveCount++
	case ActorStateRestarting:
		s.RestartingCount++
	case ActorStateDead:
		s.DeadCount++
	}
}

// TaskGroupSummary counts the tasks sharing one name by scheduling
// state. Count is the total including states without their own
// bucket.
type TaskGroupSummary struct {
	Count          int `json:"cnt" yaml:"cnt"`
	WaitingForDeps int `json:"wait_for_dep_cnt" yaml:"wait_for_dep_cnt"`
	ScheduledCount int `json:"scheduled_cnt" yaml:"scheduled_cnt"`
	FinishedCount  int `json:"finished_cnt" yaml:"finished_cnt"`
}

func (s *TaskGroupSummary) observe(state string) {
	s.Count++
	switch state {
	case TaskStateWaitingForDependencies:
		s.WaitingForDeps++
	case TaskStateScheduled:
		s.ScheduledCount++
	case TaskStateFinished:
		s.FinishedCount++
	}
}

// NodeSummary is one node's slice of the cluster summary: formatted
// physical utilization plus the actor and worker population hosted
// there.
type NodeSummary struct {
	CPU                    string `json:"cpu,omitempty" yaml:"cpu,omitempty"`
	DiskUtilization        string `json:"disk_utilization,omitempty" yaml:"disk_utilization,omitempty"`
	DiskRead               string `json:"disk_read,omitempty" yaml:"disk_read,omitempty"`
	DiskWrite              string `json:"disk_write,omitempty" yaml:"disk_write,omitempty"`
	NetworkSentSpeed       string `json:"network_sent_speed,omitempty" yaml:"network_sent_speed,omitempty"`
	NetworkRecvSpeed       string `json:"network_recv_speed,omitempty" yaml:"network_recv_speed,omitempty"`
	MemUtilization         string `json:"mem_utilization,omitempty" yaml:"mem_utilization,omitempty"`
	ObjectStoreUtilization string `json:"object_store_utilization,omitempty" yaml:"object_store_utilization,omitempty"`

	ActorCount   int                           `json:"actor_cnt" yaml:"actor_cnt"`
	Actors       map[string]*ActorClassSummary `json:"actors,omitempty" yaml:"actors,omitempty"`
	AliveWorkers int                           `json:"num_workers" yaml:"num_workers"`
}

func (n *NodeSummary) class(name string) *ActorClassSummary {
	if n.Actors == nil {
		n.Actors = make(map[string]*ActorClassSummary)
	}
	c, ok := n.Actors[name]
	if !ok {
		c = &ActorClassSummary{}
		n.Actors[name] = c
	}
	return c
}

// ClusterSummary is the full rollup: per node summaries plus cluster
// wide actor and task breakdowns. Build one with NewClusterSummary
// and feed it records through the Observe methods; every counter is
// declared on a struct, so the output shape is fixed no matter what
// the records contain.
type ClusterSummary struct {
	Nodes  map[string]*NodeSummary       `json:"nodes" yaml:"nodes"`
	Actors map[string]*ActorClassSummary `json:"actors" yaml:"actors"`
	Tasks  map[string]*TaskGroupSummary  `json:"tasks" yaml:"tasks"`
}

// NewClusterSummary returns an empty summary ready to observe
// records.
func NewClusterSummary() *ClusterSummary {
	return &ClusterSummary{
		Nodes:  make(map[string]*NodeSummary),
		Actors: make(map[string]*ActorClassSummary),
		Tasks:  make(map[string]*TaskGroupSummary),
	}
}

func (s *ClusterSummary) node(nodeID string) *NodeSummary {
	n, ok := s.Nodes[nodeID]
	if !ok {
		n = &NodeSummary{}
		s.Nodes[nodeID] = n
	}
	return n
}

func (s *ClusterSummary) taskGroup(name string) *TaskGroupSummary {
	g, ok := s.Tasks[name]
	if !ok {
		g = &TaskGroupSummary{}
		s.Tasks[name] = g
	}
	return g
}

func (s *ClusterSummary) actorClass(name string) *ActorClassSummary {
	c, ok := s.Actors[name]
	if !ok {
		c = &ActorClassSummary{}
		s.Actors[name] = c
	}
	return c
}

// ObserveActor counts one actor into its node's breakdown and into
// the cluster wide class breakdown. Actors without a node yet, such
// as pending creations, land under the empty node identifier.
func (s *ClusterSummary) ObserveActor(a Actor) {
	n := s.node(a.Address.NodeID)
	n.ActorCount++
	n.class(a.ClassName).observe(a.State)
	s.actorClass(a.ClassName).observe(a.State)
}

// ObserveTask counts one task into the cluster wide task breakdown.
// Actor creation tasks are bookkeeping and are skipped.
func (s *ClusterSummary) ObserveTask(t Task) {
	if t.Type == TaskTypeActorCreation {
		return
	}
	s.taskGroup(t.Name).observe(t.SchedulingState)
}

// ObserveWorker counts one live worker for its node. Dead workers do
// not contribute.
func (s *ClusterSummary) ObserveWorker(w Worker) {
	if !w.IsAlive {
		return
	}
	s.node(w.Address.NodeID).AliveWorkers++
}

// ObserveNodeResources formats one node's physical utilization into
// its summary entry.
func (s *ClusterSummary) ObserveNodeResources(r source.NodeResourceSummary) {
	n := s.node(r.NodeID)
	n.CPU = formatPercent(r.CPUPercent)
	n.MemUtilization = formatPercent(r.MemPercent)
	n.DiskUtilization = formatPercent(r.DiskPercent)
	n.DiskRead = formatScaled(r.DiskReadSpeed, 1024*1024, "MB")
	n.DiskWrite = formatScaled(r.DiskWriteSpeed, 1024*1024, "MB")
	n.NetworkSentSpeed = formatScaled(r.NetworkSentSpeed, 1024, "KB")
	n.NetworkRecvSpeed = formatScaled(r.NetworkRecvSpeed, 1024, "KB")
	n.ObjectStoreUtilization = formatPercent(objectStorePercent(r))
}

// objectStorePercent derives object store usage from the raw byte
// counters. An empty store with no capacity reported reads as zero.
func objectStorePercent(r source.NodeResourceSummary) float64 {
	total := r.ObjectStoreUsedMemory + r.ObjectStoreAvailableMemory
	if total <= 0 {
		return 0
	}
	return round3(r.ObjectStoreUsedMemory / total * 100)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func formatScaled(v, unit float64, suffix string) string {
	return strconv.FormatFloat(round3(v/unit), 'f', -1, 64) + " " + suffix
}
