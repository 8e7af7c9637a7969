package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/NVIDIA/stateview/pkg/k8s/client"
	"gopkg.in/yaml.v3"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader handles deserialization of structured data from various formats (JSON, YAML).
// It supports reading from any io.Reader source including files, strings, and HTTP responses.
//
// Close must be called to release resources when using NewFileReader or
// NewFileReaderAuto. It is safe to call Close multiple times, and it is a
// no-op for readers created with NewReader from non-closeable sources.
//
// Supported formats: JSON, YAML (Table format is write-only)
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
//
// Returns error if format is unknown or is FormatTable (table format does not
// support deserialization). If input implements io.Closer, it will be stored
// and closed by Reader.Close().
//
// Example:
//
//	reader, err := NewReader(FormatJSON, strings.NewReader(`{"key":"value"}`))
//	if err != nil { panic(err) }
//	var data map[string]string
//	err = reader.Deserialize(&data)
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	// Store closer if input implements it
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

// NewFileReader creates a new Reader that reads from a file path or URL.
//
// Supports http:// and https:// URLs. Remote files are downloaded to the
// temporary directory first; Close removes the file handle.
//
// Returns error if the format is unknown, is FormatTable, or the file cannot
// be opened or downloaded.
//
// Example:
//
//	reader, err := NewFileReader(FormatJSON, "/path/to/report.json")
//	if err != nil { panic(err) }
//	defer reader.Close()
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	// If the filePath is a URL or special scheme, handle accordingly
	var file *os.File
	var err error

	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		name := fmt.Sprintf("stateview-%d.tmp", time.Now().UnixNano())
		tempFilePath := filepath.Join(os.TempDir(), name)
		httpReader := NewHttpReader()
		if err = httpReader.Download(filePath, tempFilePath); err != nil {
			return nil, fmt.Errorf("failed to download remote file: %w", err)
		}
		file, err = os.Open(tempFilePath)
	} else {
		file, err = os.Open(filePath)
	}

	// Handle file open error
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	// Create Reader
	return &Reader{
		format: format,
		input:  file,
		closer: file,
	}, nil
}

// NewFileReaderAuto creates a new Reader with automatic format detection.
// The format is determined from the file extension using FormatFromPath.
//
// This is a convenience wrapper around NewFileReader that auto-detects the format.
// See NewFileReader for full documentation on supported paths, URLs, and resource management.
func NewFileReaderAuto(filePath string) (*Reader, error) {
	format := FormatFromPath(filePath)
	return NewFileReader(format, filePath)
}

// Deserialize reads data from the input source and unmarshals it into v.
// v must be a pointer (e.g., &myStruct, &mySlice, &myMap).
//
// Returns error if the Reader or its input is nil, the data cannot be
// decoded, or the format is FormatTable.
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		decoder := json.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		decoder := yaml.NewDecoder(r.input)
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	case FormatTable:
		return fmt.Errorf("table format is not supported for deserialization")

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader.
//
// If the Reader was created from a file (NewFileReader), this closes the file
// handle. It is safe to call on a nil Reader and safe to call multiple times;
// the internal closer is cleared after the first close.
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil // Prevent double-close
		return err
	}
	return nil
}

// FromFile reads and deserializes data from a file path, URL, or ConfigMap URI into type T.
//
// Supported input sources:
//   - Local file paths: /path/to/file.json, ./config.yaml
//   - HTTP URLs: http://example.com/data.json, https://example.com/config.yaml
//   - ConfigMap URIs: cm://namespace/configmap-name
//
// The format is detected from the path extension; ConfigMap data carries its
// format in the ConfigMap itself. Reader creation and cleanup are handled
// internally, so there is nothing to close.
//
// Example:
//
//	report, err := FromFile[Report]("cm://stateview/cluster-report")
func FromFile[T any](path string) (*T, error) {
	return FromFileWithKubeconfig[T](path, "")
}

// FromFileWithKubeconfig reads and deserializes data from a file path, HTTP URL, or ConfigMap URI with custom kubeconfig.
//
// This is identical to FromFile but allows specifying a custom kubeconfig path for ConfigMap URIs.
// The kubeconfig parameter is only used when path is a ConfigMap URI (cm://namespace/name).
func FromFileWithKubeconfig[T any](path, kubeconfig string) (*T, error) {
	// Check for ConfigMap URI
	if strings.HasPrefix(path, ConfigMapURIScheme) {
		namespace, name, err := parseConfigMapURI(path)
		if err != nil {
			return nil, fmt.Errorf("invalid ConfigMap URI: %w", err)
		}
		return fromConfigMapWithKubeconfig[T](namespace, name, kubeconfig)
	}

	fileFormat := FormatFromPath(path)
	slog.Debug("determined file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	ser, err := NewFileReader(fileFormat, path)
	if err != nil {
		slog.Error("failed to create file reader", "error", err, "path", path, "format", fileFormat)
		return nil, fmt.Errorf("failed to create serializer for %q: %w", path, err)
	}

	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close serializer", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("successfully loaded object from file",
		slog.String("path", path),
	)

	return &r, nil
}

// fromConfigMapWithKubeconfig reads and deserializes data from a Kubernetes ConfigMap with custom kubeconfig.
func fromConfigMapWithKubeconfig[T any](namespace, name, kubeconfig string) (*T, error) {
	var k8sClient client.Interface
	var err error

	if kubeconfig != "" {
		k8sClient, _, err = client.GetKubeClientWithConfig(kubeconfig)
	} else {
		k8sClient, _, err = client.GetKubeClient()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kubernetes client: %w", err)
	}

	ctx := context.Background()
	cm, err := k8sClient.CoreV1().ConfigMaps(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	// Try to get format from ConfigMap metadata
	format := FormatYAML // default
	if formatStr, ok := cm.Data["format"]; ok {
		format = Format(formatStr)
	}

	// Try to read data with format-specific key first
	var content string
	dataKey := fmt.Sprintf("report.%s", format)
	if data, ok := cm.Data[dataKey]; ok {
		content = data
	} else {
		// Fall back to trying all known extensions
		for _, ext := range []string{"yaml", "json", "txt"} {
			if data, ok := cm.Data[fmt.Sprintf("report.%s", ext)]; ok {
				content = data
				format = Format(ext)
				break
			}
		}
		if content == "" {
			return nil, fmt.Errorf("ConfigMap %s/%s has no report data", namespace, name)
		}
	}

	slog.Debug("reading from ConfigMap",
		"namespace", namespace,
		"name", name,
		"format", format,
		"size", len(content))

	// Deserialize content
	reader, err := NewReader(format, strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader for ConfigMap data: %w", err)
	}

	var result T
	if err := reader.Deserialize(&result); err != nil {
		return nil, fmt.Errorf("failed to deserialize ConfigMap data: %w", err)
	}

	return &result, nil
}
