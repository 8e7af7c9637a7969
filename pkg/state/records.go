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

import "strconv"

// Actor lifecycle states reported by the coordination service.
const (
	ActorStateDependenciesUnready = "DEPENDENCIES_UNREADY"
	ActorStatePendingCreation     = "PENDING_CREATION"
	ActorStateAlive               = "ALIVE"
	ActorStateRestarting          = "RESTARTING"
	ActorStateDead                = "DEAD"
)

// Task scheduling states tracked by cluster summaries.
const (
	TaskStateWaitingForDependencies = "WAITING_FOR_DEPENDENCIES"
	TaskStateScheduled              = "SCHEDULED"
	TaskStateFinished               = "FINISHED"
)

// TaskTypeActorCreation marks the implicit task that instantiates an
// actor. It is bookkeeping, not user work, and summaries skip it.
const TaskTypeActorCreation = "ACTOR_CREATION_TASK"

// Record is the contract every entity record satisfies. Field resolves
// a filter column to its string rendering; ok reports whether the
// record declares that column at all.
type Record interface {
	Field(name string) (value string, ok bool)
}

// Keyed is satisfied by records addressable by a canonical identifier.
// Runtime environment records are the one variant without one.
type Keyed interface {
	Record
	Key() string
}

// Address locates an actor inside the cluster.
type Address struct {
	NodeID string `json:"node_id" yaml:"node_id"`
	IP     string `json:"ip,omitempty" yaml:"ip,omitempty"`
}

// Actor is the surfaced view of a single actor.
type Actor struct {
	ActorID              string  `json:"actor_id" yaml:"actor_id"`
	State                string  `json:"state" yaml:"state"`
	ClassName            string  `json:"class_name" yaml:"class_name"`
	Name                 string  `json:"name,omitempty" yaml:"name,omitempty"`
	PID                  int64   `json:"pid" yaml:"pid"`
	Address              Address `json:"address" yaml:"address"`
	SerializedRuntimeEnv string  `json:"serialized_runtime_env,omitempty" yaml:"serialized_runtime_env,omitempty"`
	IsDetached           bool    `json:"is_detached" yaml:"is_detached"`
}

// Key returns the canonical actor identifier.
func (a Actor) Key() string { return a.ActorID }

// Field implements Record.
func (a Actor) Field(name string) (string, bool) {
	switch name {
	case "actor_id":
		return a.ActorID, true
	case "state":
		return a.State, true
	case "class_name":
		return a.ClassName, true
	case "name":
		return a.Name, true
	case "pid":
		return strconv.FormatInt(a.PID, 10), true
	case "node_id":
		return a.Address.NodeID, true
	case "ip":
		return a.Address.IP, true
	case "is_detached":
		return strconv.FormatBool(a.IsDetached), true
	default:
		return "", false
	}
}

// PlacementGroup is the surfaced view of a placement group.
type PlacementGroup struct {
	PlacementGroupID string               `json:"placement_group_id" yaml:"placement_group_id"`
	State            string               `json:"state" yaml:"state"`
	Name             string               `json:"name,omitempty" yaml:"name,omitempty"`
	Bundles          []map[string]float64 `json:"bundles,omitempty" yaml:"bundles,omitempty"`
	IsDetached       bool                 `json:"is_detached" yaml:"is_detached"`
	CreatorJobID     string               `json:"creator_job_id,omitempty" yaml:"creator_job_id,omitempty"`
}

// Key returns the canonical placement group identifier.
func (p PlacementGroup) Key() string { return p.PlacementGroupID }

// Field implements Record.
func (p PlacementGroup) Field(name string) (string, bool) {
	switch name {
	case "placement_group_id":
		return p.PlacementGroupID, true
	case "state":
		return p.State, true
	case "name":
		return p.Name, true
	case "is_detached":
		return strconv.FormatBool(p.IsDetached), true
	case "creator_job_id":
		return p.CreatorJobID, true
	default:
		return "", false
	}
}

// Node is the surfaced view of a cluster node.
type Node struct {
	NodeID         string             `json:"node_id" yaml:"node_id"`
	State          string             `json:"state" yaml:"state"`
	NodeIP         string             `json:"node_ip,omitempty" yaml:"node_ip,omitempty"`
	NodeName       string             `json:"node_name,omitempty" yaml:"node_name,omitempty"`
	ResourcesTotal map[string]float64 `json:"resources_total,omitempty" yaml:"resources_total,omitempty"`
}

// Key returns the canonical node identifier.
func (n Node) Key() string { return n.NodeID }

// Field implements Record.
func (n Node) Field(name string) (string, bool) {
	switch name {
	case "node_id":
		return n.NodeID, true
	case "state":
		return n.State, true
	case "node_ip":
		return n.NodeIP, true
	case "node_name":
		return n.NodeName, true
	default:
		return "", false
	}
}

// WorkerAddress locates a worker process on its host node.
type WorkerAddress struct {
	WorkerID string `json:"worker_id" yaml:"worker_id"`
	NodeID   string `json:"node_id" yaml:"node_id"`
	IP       string `json:"ip,omitempty" yaml:"ip,omitempty"`
}

// Worker is the surfaced view of a worker process.
type Worker struct {
	WorkerID   string        `json:"worker_id" yaml:"worker_id"`
	IsAlive    bool          `json:"is_alive" yaml:"is_alive"`
	WorkerType string        `json:"worker_type" yaml:"worker_type"`
	ExitType   string        `json:"exit_type,omitempty" yaml:"exit_type,omitempty"`
	PID        int64         `json:"pid" yaml:"pid"`
	Address    WorkerAddress `json:"worker_address" yaml:"worker_address"`
}

// Key returns the canonical worker identifier.
func (w Worker) Key() string { return w.WorkerID }

// Field implements Record.
func (w Worker) Field(name string) (string, bool) {
	switch name {
	case "worker_id":
		return w.WorkerID, true
	case "is_alive":
		return strconv.FormatBool(w.IsAlive), true
	case "worker_type":
		return w.WorkerType, true
	case "exit_type":
		return w.ExitType, true
	case "pid":
		return strconv.FormatInt(w.PID, 10), true
	case "node_id":
		return w.Address.NodeID, true
	case "ip":
		return w.Address.IP, true
	default:
		return "", false
	}
}

// Task is the surfaced view of a task known to a state daemon.
type Task struct {
	TaskID            string             `json:"task_id" yaml:"task_id"`
	Name              string             `json:"name" yaml:"name"`
	SchedulingState   string             `json:"scheduling_state" yaml:"scheduling_state"`
	Type              string             `json:"type" yaml:"type"`
	FuncOrClassName   string             `json:"func_or_class_name,omitempty" yaml:"func_or_class_name,omitempty"`
	Language          string             `json:"language,omitempty" yaml:"language,omitempty"`
	RequiredResources map[string]float64 `json:"required_resources,omitempty" yaml:"required_resources,omitempty"`
}

// Key returns the canonical task identifier.
func (t Task) Key() string { return t.TaskID }

// Field implements Record.
func (t Task) Field(name string) (string, bool) {
	switch name {
	case "task_id":
		return t.TaskID, true
	case "name":
		return t.Name, true
	case "scheduling_state":
		return t.SchedulingState, true
	case "type":
		return t.Type, true
	case "func_or_class_name":
		return t.FuncOrClassName, true
	case "language":
		return t.Language, true
	default:
		return "", false
	}
}

// Object is the surfaced view of one object reference held by a worker.
type Object struct {
	ObjectID              string   `json:"object_id" yaml:"object_id"`
	PID                   int64    `json:"pid" yaml:"pid"`
	IP                    string   `json:"ip,omitempty" yaml:"ip,omitempty"`
	ObjectSize            int64    `json:"object_size" yaml:"object_size"`
	ReferenceType         string   `json:"reference_type" yaml:"reference_type"`
	CallSite              string   `json:"call_site,omitempty" yaml:"call_site,omitempty"`
	TaskStatus            string   `json:"task_status,omitempty" yaml:"task_status,omitempty"`
	LocalRefCount         int64    `json:"local_ref_count" yaml:"local_ref_count"`
	PinnedInMemory        bool     `json:"pinned_in_memory" yaml:"pinned_in_memory"`
	SubmittedTaskRefCount int64    `json:"submitted_task_ref_count" yaml:"submitted_task_ref_count"`
	ContainedInOwned      []string `json:"contained_in_owned,omitempty" yaml:"contained_in_owned,omitempty"`
	WorkerType            string   `json:"type,omitempty" yaml:"type,omitempty"`
}

// Key returns the canonical object identifier.
func (o Object) Key() string { return o.ObjectID }

// Field implements Record.
func (o Object) Field(name string) (string, bool) {
	switch name {
	case "object_id":
		return o.ObjectID, true
	case "pid":
		return strconv.FormatInt(o.PID, 10), true
	case "ip":
		return o.IP, true
	case "object_size":
		return strconv.FormatInt(o.ObjectSize, 10), true
	case "reference_type":
		return o.ReferenceType, true
	case "call_site":
		return o.CallSite, true
	case "task_status":
		return o.TaskStatus, true
	case "pinned_in_memory":
		return strconv.FormatBool(o.PinnedInMemory), true
	case "type":
		return o.WorkerType, true
	default:
		return "", false
	}
}

// RuntimeEnv is the surfaced view of one runtime environment tracked by
// an agent, together with its usage counters. Runtime environments
// have no canonical identifier, so listings are plain slices ordered
// by reference count.
type RuntimeEnv struct {
	RuntimeEnv     map[string]any `json:"runtime_env" yaml:"runtime_env"`
	ContainerImage string         `json:"container_image,omitempty" yaml:"container_image,omitempty"`
	RefCount       int64          `json:"ref_cnt" yaml:"ref_cnt"`
	SuccessCount   int64          `json:"success_cnt" yaml:"success_cnt"`
	FailureCount   int64          `json:"failure_cnt" yaml:"failure_cnt"`
}

// Field implements Record.
func (r RuntimeEnv) Field(name string) (string, bool) {
	switch name {
	case "container_image":
		return r.ContainerImage, true
	case "ref_cnt":
		return strconv.FormatInt(r.RefCount, 10), true
	case "success_cnt":
		return strconv.FormatInt(r.SuccessCount, 10), true
	case "failure_cnt":
		return strconv.FormatInt(r.FailureCount, 10), true
	default:
		return "", false
	}
}

// Job is the surfaced view of a submitted job.
type Job struct {
	JobID      string            `json:"job_id" yaml:"job_id"`
	Status     string            `json:"status" yaml:"status"`
	Entrypoint string            `json:"entrypoint,omitempty" yaml:"entrypoint,omitempty"`
	Message    string            `json:"message,omitempty" yaml:"message,omitempty"`
	ErrorType  string            `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	StartTime  int64             `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime    int64             `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	RuntimeEnv map[string]any    `json:"runtime_env,omitempty" yaml:"runtime_env,omitempty"`
}

// Key returns the canonical job identifier.
func (j Job) Key() string { return j.JobID }

// Field implements Record.
func (j Job) Field(name string) (string, bool) {
	switch name {
	case "job_id":
		return j.JobID, true
	case "status":
		return j.Status, true
	case "entrypoint":
		return j.Entrypoint, true
	case "error_type":
		return j.ErrorType, true
	default:
		return "", false
	}
}
