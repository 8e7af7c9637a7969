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

package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NVIDIA/stateview/pkg/defaults"
	"github.com/NVIDIA/stateview/pkg/header"
	"github.com/NVIDIA/stateview/pkg/k8s/client"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"
)

// ConfigMapURIScheme is the URI scheme for ConfigMap output (e.g., "cm://namespace/name").
const ConfigMapURIScheme = "cm://"

// ConfigMapWriter writes serialized data to a Kubernetes ConfigMap.
// The ConfigMap is created if it doesn't exist, or updated if it does.
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
}

// NewConfigMapWriter creates a new ConfigMapWriter that writes to the specified
// namespace and ConfigMap name in the given format.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		format = FormatJSON
	}
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    format,
	}
}

// Serialize writes the report data to a ConfigMap.
// The ConfigMap will have:
// - data.report.{yaml|json}: The serialized report content
// - data.format: The format used (yaml or json)
// - data.timestamp: ISO 8601 timestamp of when the report was created
func (w *ConfigMapWriter) Serialize(ctx context.Context, report any) error {
	// Create context with timeout for Kubernetes API operations
	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	client, config, err := client.GetKubeClient()
	if err != nil {
		return fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	// Log authentication context for audit
	authInfo := "default"
	switch {
	case config.AuthProvider != nil:
		authInfo = config.AuthProvider.Name
	case config.ExecProvider != nil:
		authInfo = "exec"
	case config.BearerToken != "":
		authInfo = "bearer-token"
	case config.CertData != nil:
		authInfo = "cert"
	}

	slog.Info("configmap operation",
		"namespace", w.namespace,
		"name", w.name,
		"auth_method", authInfo,
		"format", w.format)

	// Serialize report to bytes using appropriate format
	var content []byte
	var extension string
	switch w.format {
	case FormatJSON:
		content, err = serializeJSON(report)
		extension = "json"
	case FormatYAML:
		content, err = serializeYAML(report)
		extension = "yaml"
	case FormatTable:
		content, err = serializeTable(report)
		extension = "txt"
	default:
		return fmt.Errorf("unsupported format for ConfigMap: %s", w.format)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	// Extract metadata from the report if it carries a header
	var reportVersion string
	var reportKind string
	var reportTimestamp string

	if headerData, ok := report.(interface {
		GetKind() header.Kind
		GetMetadata() map[string]string
	}); ok {
		reportKind = headerData.GetKind().String()
		metadata := headerData.GetMetadata()
		if v, exists := metadata["version"]; exists {
			reportVersion = v
		}
		if ts, exists := metadata["timestamp"]; exists {
			reportTimestamp = ts
		}
	}

	// Use defaults if not available from header
	if reportVersion == "" {
		reportVersion = "unknown"
	}
	if reportKind == "" {
		reportKind = header.KindStateReport.String()
	}
	if reportTimestamp == "" {
		reportTimestamp = time.Now().UTC().Format(time.RFC3339)
	}

	// Create ConfigMap data
	dataKey := fmt.Sprintf("report.%s", extension)
	configMapData := map[string]string{
		dataKey:     string(content),
		"format":    string(w.format),
		"timestamp": reportTimestamp,
	}

	// Build ConfigMap apply configuration for Server-Side Apply
	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "stateview",
			"app.kubernetes.io/component": reportKind,
			"app.kubernetes.io/version":   reportVersion,
		}).
		WithData(configMapData)

	// Use Server-Side Apply for atomic create-or-update operation.
	// Force allows taking ownership from previous field managers.
	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	_, err = client.CoreV1().ConfigMaps(w.namespace).Apply(
		writeCtx,
		configMap,
		metav1.ApplyOptions{
			FieldManager: "stateview",
			Force:        true,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to apply ConfigMap: %w", err)
	}

	return nil
}

// Close is a no-op for ConfigMapWriter as there are no resources to release.
// This method exists to satisfy the Closer interface.
func (w *ConfigMapWriter) Close() error {
	return nil
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name
// and returns the namespace and name components.
// Returns an error if the URI is malformed.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	// Remove cm:// prefix
	path := strings.TrimPrefix(uri, ConfigMapURIScheme)

	// Split into namespace/name
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}

	return namespace, name, nil
}
