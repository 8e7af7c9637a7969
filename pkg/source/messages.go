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

package source

// Address locates a process inside the cluster. WorkerID is set only
// on worker addresses.
type Address struct {
	NodeID   string `json:"node_id"`
	IP       string `json:"ip,omitempty"`
	WorkerID string `json:"worker_id,omitempty"`
}

// ActorInfo is one actor table entry from the coordination service.
type ActorInfo struct {
	ActorID              string  `json:"actor_id"`
	State                string  `json:"state"`
	ClassName            string  `json:"class_name"`
	Name                 string  `json:"name,omitempty"`
	PID                  int64   `json:"pid"`
	Address              Address `json:"address"`
	SerializedRuntimeEnv string  `json:"serialized_runtime_env,omitempty"`
	IsDetached           bool    `json:"is_detached"`
}

// PlacementGroupInfo is one placement group table entry.
type PlacementGroupInfo struct {
	PlacementGroupID string               `json:"placement_group_id"`
	State            string               `json:"state"`
	Name             string               `json:"name,omitempty"`
	Bundles          []map[string]float64 `json:"bundles,omitempty"`
	IsDetached       bool                 `json:"is_detached"`
	CreatorJobID     string               `json:"creator_job_id,omitempty"`
}

// NodeInfo is one node table entry.
type NodeInfo struct {
	NodeID         string             `json:"node_id"`
	State          string             `json:"state"`
	NodeIP         string             `json:"node_ip,omitempty"`
	NodeName       string             `json:"node_name,omitempty"`
	ResourcesTotal map[string]float64 `json:"resources_total,omitempty"`
}

// WorkerInfo is one worker table entry. The worker's identifier
// travels inside its address.
type WorkerInfo struct {
	Address    Address `json:"worker_address"`
	IsAlive    bool    `json:"is_alive"`
	WorkerType string  `json:"worker_type"`
	ExitType   string  `json:"exit_type,omitempty"`
	PID        int64   `json:"pid"`
}

// JobInfo is the coordination service's view of one submitted job.
// Job tables are keyed by job identifier on the wire, so the
// identifier is not repeated here.
type JobInfo struct {
	Status     string            `json:"status"`
	Entrypoint string            `json:"entrypoint,omitempty"`
	Message    string            `json:"message,omitempty"`
	ErrorType  string            `json:"error_type,omitempty"`
	StartTime  int64             `json:"start_time,omitempty"`
	EndTime    int64             `json:"end_time,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	RuntimeEnv map[string]any    `json:"runtime_env,omitempty"`
}

// TaskInfo is one task entry reported by a state daemon.
type TaskInfo struct {
	TaskID            string             `json:"task_id"`
	Name              string             `json:"name"`
	SchedulingState   string             `json:"scheduling_state"`
	Type              string             `json:"type"`
	FuncOrClassName   string             `json:"func_or_class_name,omitempty"`
	Language          string             `json:"language,omitempty"`
	RequiredResources map[string]float64 `json:"required_resources,omitempty"`
}

// TaskInfoReply is a state daemon's answer to a task listing.
type TaskInfoReply struct {
	Tasks []TaskInfo `json:"tasks"`
}

// ObjectRefInfo is one object reference held by a worker.
type ObjectRefInfo struct {
	ObjectID              string   `json:"object_id"`
	ObjectSize            int64    `json:"object_size"`
	CallSite              string   `json:"call_site,omitempty"`
	TaskStatus            string   `json:"task_status,omitempty"`
	LocalRefCount         int64    `json:"local_ref_count"`
	SubmittedTaskRefCount int64    `json:"submitted_task_ref_count"`
	ContainedInOwned      []string `json:"contained_in_owned,omitempty"`
	PinnedInMemory        bool     `json:"pinned_in_memory"`
}

// WorkerStats is one worker's object reference report.
type WorkerStats struct {
	PID        int64           `json:"pid"`
	IP         string          `json:"ip,omitempty"`
	WorkerType string          `json:"worker_type,omitempty"`
	ObjectRefs []ObjectRefInfo `json:"object_refs,omitempty"`
}

// ObjectStatsReply is a state daemon's answer to an object listing:
// the raw per worker reports for every worker on its node.
type ObjectStatsReply struct {
	WorkersStats []WorkerStats `json:"workers_stats"`
}

// ObjectEntry is one flattened, classified object reference derived
// from worker stats. A single ObjectRefInfo expands into up to one
// entry per reference kind it exhibits.
type ObjectEntry struct {
	ObjectID              string   `json:"object_id"`
	PID                   int64    `json:"pid"`
	IP                    string   `json:"ip,omitempty"`
	ObjectSize            int64    `json:"object_size"`
	ReferenceType         string   `json:"reference_type"`
	CallSite              string   `json:"call_site,omitempty"`
	TaskStatus            string   `json:"task_status,omitempty"`
	LocalRefCount         int64    `json:"local_ref_count"`
	PinnedInMemory        bool     `json:"pinned_in_memory"`
	SubmittedTaskRefCount int64    `json:"submitted_task_ref_count"`
	ContainedInOwned      []string `json:"contained_in_owned,omitempty"`
	WorkerType            string   `json:"type,omitempty"`
}

// RuntimeEnvStateInfo is one runtime environment tracked by a state
// agent. RuntimeEnv is the serialized environment spec as submitted.
type RuntimeEnvStateInfo struct {
	RuntimeEnv   string `json:"runtime_env"`
	RefCount     int64  `json:"ref_cnt"`
	SuccessCount int64  `json:"success_cnt"`
	FailureCount int64  `json:"failure_cnt"`
}

// RuntimeEnvStateReply is a state agent's answer to a runtime
// environment listing.
type RuntimeEnvStateReply struct {
	States []RuntimeEnvStateInfo `json:"states"`
}

// NodeResourceSummary is one node's physical utilization snapshot as
// reported by the cluster resource monitor.
type NodeResourceSummary struct {
	NodeID                     string  `json:"node_id"`
	CPUPercent                 float64 `json:"cpu_percent"`
	MemPercent                 float64 `json:"mem_percent"`
	DiskPercent                float64 `json:"disk_percent"`
	DiskReadSpeed              float64 `json:"disk_read_speed"`
	DiskWriteSpeed             float64 `json:"disk_write_speed"`
	NetworkSentSpeed           float64 `json:"network_sent_speed"`
	NetworkRecvSpeed           float64 `json:"network_recv_speed"`
	ObjectStoreUsedMemory      float64 `json:"object_store_used_memory"`
	ObjectStoreAvailableMemory float64 `json:"object_store_available_memory"`
}
