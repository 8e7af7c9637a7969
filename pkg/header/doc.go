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

// Package header provides common header types for stateview data structures.
//
// This package defines the Header type used on exported reports to provide
// consistent metadata and versioning information.
//
// # Header Structure
//
// The Header contains standard fields for API versioning and metadata:
//
//	type Header struct {
//	    Kind       Kind              `json:"kind"`       // Resource type (e.g., "Actors", "ClusterSummary")
//	    APIVersion string            `json:"apiVersion"` // API version (e.g., "v0")
//	    Metadata   map[string]string `json:"metadata"`   // Timestamp, tool version, custom fields
//	}
//
// # Usage
//
// Create a header for an exported listing:
//
//	hdr := header.New(
//	    header.WithKind(header.KindForEntity("placement_groups")),
//	    header.WithAPIVersion("v0"),
//	)
//
// Or initialize in place:
//
//	var hdr header.Header
//	hdr.Init(header.KindClusterSummary, "v0", buildVersion)
//
// # Kind Field
//
// The Kind field identifies the resource type. Entity listings use the
// CamelCase form of the entity name (Actors, PlacementGroups, RuntimeEnvs);
// cluster summaries use ClusterSummary. KindForEntity derives the Kind from
// an entity name, and IsValid reports whether a Kind is recognized.
//
// # Serialization
//
// Headers serialize consistently to JSON and YAML:
//
//	{
//	  "kind": "Actors",
//	  "apiVersion": "v0",
//	  "metadata": {
//	    "timestamp": "2026-08-25T10:30:00Z",
//	    "version": "v1.0.0"
//	  }
//	}
//
// Timestamps use RFC3339 format.
package header
