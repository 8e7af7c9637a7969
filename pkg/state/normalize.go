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
	"encoding/json"

	"github.com/distribution/reference"

	"github.com/NVIDIA/stateview/pkg/source"
)

// Normalization turns raw collaborator messages into surfaced
// records. Only the fields declared on the record structs survive;
// anything else a data source reports is dropped here. A message
// without a usable canonical identifier yields ok=false and is
// skipped, never surfaced half formed.

// NormalizeActor converts one actor table entry.
func NormalizeActor(msg source.ActorInfo) (Actor, bool) {
	if msg.ActorID == "" {
		return Actor{}, false
	}
	return Actor{
		ActorID:   msg.ActorID,
		State:     msg.State,
		ClassName: msg.ClassName,
		Name:      msg.Name,
		PID:       msg.PID,
		Address: Address{
			NodeID: msg.Address.NodeID,
			IP:     msg.Address.IP,
		},
		SerializedRuntimeEnv: msg.SerializedRuntimeEnv,
		IsDetached:           msg.IsDetached,
	}, true
}

// NormalizePlacementGroup converts one placement group table entry.
func NormalizePlacementGroup(msg source.PlacementGroupInfo) (PlacementGroup, bool) {
	if msg.PlacementGroupID == "" {
		return PlacementGroup{}, false
	}
	return PlacementGroup{
		PlacementGroupID: msg.PlacementGroupID,
		State:            msg.State,
		Name:             msg.Name,
		Bundles:          msg.Bundles,
		IsDetached:       msg.IsDetached,
		CreatorJobID:     msg.CreatorJobID,
	}, true
}

// NormalizeNode converts one node table entry.
func NormalizeNode(msg source.NodeInfo) (Node, bool) {
	if msg.NodeID == "" {
		return Node{}, false
	}
	return Node{
		NodeID:         msg.NodeID,
		State:          msg.State,
		NodeIP:         msg.NodeIP,
		NodeName:       msg.NodeName,
		ResourcesTotal: msg.ResourcesTotal,
	}, true
}

// NormalizeWorker converts one worker table entry. The worker's
// identifier travels inside its address on the wire.
func NormalizeWorker(msg source.WorkerInfo) (Worker, bool) {
	if msg.Address.WorkerID == "" {
		return Worker{}, false
	}
	return Worker{
		WorkerID:   msg.Address.WorkerID,
		IsAlive:    msg.IsAlive,
		WorkerType: msg.WorkerType,
		ExitType:   msg.ExitType,
		PID:        msg.PID,
		Address: WorkerAddress{
			WorkerID: msg.Address.WorkerID,
			NodeID:   msg.Address.NodeID,
			IP:       msg.Address.IP,
		},
	}, true
}

// NormalizeTask converts one task entry from a state daemon.
func NormalizeTask(msg source.TaskInfo) (Task, bool) {
	if msg.TaskID == "" {
		return Task{}, false
	}
	return Task{
		TaskID:            msg.TaskID,
		Name:              msg.Name,
		SchedulingState:   msg.SchedulingState,
		Type:              msg.Type,
		FuncOrClassName:   msg.FuncOrClassName,
		Language:          msg.Language,
		RequiredResources: msg.RequiredResources,
	}, true
}

// NormalizeObject converts one classified object entry.
func NormalizeObject(entry source.ObjectEntry) (Object, bool) {
	if entry.ObjectID == "" {
		return Object{}, false
	}
	return Object{
		ObjectID:              entry.ObjectID,
		PID:                   entry.PID,
		IP:                    entry.IP,
		ObjectSize:            entry.ObjectSize,
		ReferenceType:         entry.ReferenceType,
		CallSite:              entry.CallSite,
		TaskStatus:            entry.TaskStatus,
		LocalRefCount:         entry.LocalRefCount,
		PinnedInMemory:        entry.PinnedInMemory,
		SubmittedTaskRefCount: entry.SubmittedTaskRefCount,
		ContainedInOwned:      entry.ContainedInOwned,
		WorkerType:            entry.WorkerType,
	}, true
}

// NormalizeRuntimeEnv converts one runtime environment entry. The
// serialized environment spec must parse as JSON; entries that do not
// are dropped rather than surfaced with a mangled spec.
func NormalizeRuntimeEnv(msg source.RuntimeEnvStateInfo) (RuntimeEnv, bool) {
	var env map[string]any
	if err := json.Unmarshal([]byte(msg.RuntimeEnv), &env); err != nil {
		return RuntimeEnv{}, false
	}
	return RuntimeEnv{
		RuntimeEnv:     env,
		ContainerImage: containerImage(env),
		RefCount:       msg.RefCount,
		SuccessCount:   msg.SuccessCount,
		FailureCount:   msg.FailureCount,
	}, true
}

// containerImage extracts and canonicalizes the container image from
// an environment spec, when one is declared. "trainer:v2" becomes
// "docker.io/library/trainer:v2"; images that do not parse as a
// reference are surfaced verbatim.
func containerImage(env map[string]any) string {
	container, ok := env["container"].(map[string]any)
	if !ok {
		return ""
	}
	image, ok := container["image"].(string)
	if !ok || image == "" {
		return ""
	}
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return image
	}
	return reference.TagNameOnly(named).String()
}

// NormalizeJob converts one job table entry. Job tables arrive keyed
// by identifier, so the identifier is supplied alongside the message.
func NormalizeJob(jobID string, msg source.JobInfo) (Job, bool) {
	if jobID == "" {
		return Job{}, false
	}
	return Job{
		JobID:      jobID,
		Status:     msg.Status,
		Entrypoint: msg.Entrypoint,
		Message:    msg.Message,
		ErrorType:  msg.ErrorType,
		StartTime:  msg.StartTime,
		EndTime:    msg.EndTime,
		Metadata:   msg.Metadata,
		RuntimeEnv: msg.RuntimeEnv,
	}, true
}
