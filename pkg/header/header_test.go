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

package header

import (
	"testing"
)

func TestKindForEntity(t *testing.T) {
	tests := []struct {
		entity string
		want   Kind
	}{
		{"actors", KindActors},
		{"placement_groups", KindPlacementGroups},
		{"nodes", KindNodes},
		{"workers", KindWorkers},
		{"jobs", KindJobs},
		{"tasks", KindTasks},
		{"objects", KindObjects},
		{"runtime_envs", KindRuntimeEnvs},
		{"cluster_summary", KindClusterSummary},
	}

	for _, tt := range tests {
		t.Run(tt.entity, func(t *testing.T) {
			got := KindForEntity(tt.entity)
			if got != tt.want {
				t.Errorf("KindForEntity(%q) = %q, want %q", tt.entity, got, tt.want)
			}
			if !got.IsValid() {
				t.Errorf("KindForEntity(%q) = %q is not a valid Kind", tt.entity, got)
			}
		})
	}
}

func TestKindForEntityUnknown(t *testing.T) {
	got := KindForEntity("widget_counts")
	if got != Kind("WidgetCounts") {
		t.Errorf("KindForEntity(widget_counts) = %q, want WidgetCounts", got)
	}
	if got.IsValid() {
		t.Errorf("unrecognized kind %q should not validate", got)
	}
}

func TestHeaderInit(t *testing.T) {
	var h Header
	h.Init(KindClusterSummary, "v0", "v1.2.3")

	if h.Kind != KindClusterSummary {
		t.Errorf("Kind = %q, want %q", h.Kind, KindClusterSummary)
	}
	if h.APIVersion != "v0" {
		t.Errorf("APIVersion = %q, want v0", h.APIVersion)
	}
	if h.Metadata["version"] != "v1.2.3" {
		t.Errorf("Metadata[version] = %q, want v1.2.3", h.Metadata["version"])
	}
	if h.Metadata["timestamp"] == "" {
		t.Error("Metadata[timestamp] should be set")
	}
}

func TestNewWithOptions(t *testing.T) {
	h := New(
		WithKind(KindActors),
		WithAPIVersion("v0"),
		WithMetadata("cluster", "lab-east"),
	)

	if h.Kind != KindActors {
		t.Errorf("Kind = %q, want %q", h.Kind, KindActors)
	}
	if h.APIVersion != "v0" {
		t.Errorf("APIVersion = %q, want v0", h.APIVersion)
	}
	if h.Metadata["cluster"] != "lab-east" {
		t.Errorf("Metadata[cluster] = %q, want lab-east", h.Metadata["cluster"])
	}
}
