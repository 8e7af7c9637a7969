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

// Package serializer provides encoding and decoding of report data in multiple formats.
//
// # Overview
//
// The serializer package handles conversion between report data structures and
// various output formats including JSON, YAML, and human-readable tables. It
// supports both encoding (writing data) and decoding (reading data) operations
// with automatic format detection.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for configuration files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE text representation
//   - Suitable for terminal/console viewing
//   - Read-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout (YAML):
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := w.Serialize(ctx, report); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, a ConfigMap URI, or stdout depending on the path:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, "report.json")
//	defer w.(serializer.Closer).Close()
//
//	if err := w.Serialize(ctx, report); err != nil {
//	    log.Fatal(err)
//	}
//
// # Usage - Decoding
//
// Read from a file with automatic format detection:
//
//	reader, err := serializer.NewFileReaderAuto("report.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
//
//	var report Report
//	if err := reader.Deserialize(&report); err != nil {
//	    log.Fatal(err)
//	}
//
// Or load in one call:
//
//	cfg, err := serializer.FromFile[Config]("stateview.yaml")
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
//
// # ConfigMap URIs
//
// Paths of the form cm://namespace/name read from and write to a Kubernetes
// ConfigMap instead of the filesystem. Writes use Server-Side Apply so the
// ConfigMap is created or updated atomically.
//
// # Resource Management
//
// Always close serializers and readers that manage files:
//
//	reader, err := serializer.NewFileReaderAuto("report.json")
//	if err != nil {
//	    return err
//	}
//	defer reader.Close()  // Required for file resources
//
// Stdout writers don't require closing but Close() is safe to call.
//
// # Integration
//
// Used throughout stateview for data I/O:
//   - pkg/cli - Command output formatting
//   - pkg/config - Configuration file loading
//   - pkg/api - HTTP response encoding
package serializer
