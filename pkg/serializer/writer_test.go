package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// Test data structure shared across the package tests.
type testReport struct {
	Entity string `json:"entity" yaml:"entity"`
	Count  int    `json:"count" yaml:"count"`
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testReport{
		{Entity: "actors", Count: 12},
		{Entity: "nodes", Count: 4},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Verify it's valid JSON
	var result []testReport
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Entity != "actors" || result[0].Count != 12 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testReport{
		{Entity: "actors", Count: 12},
		{Entity: "nodes", Count: 4},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Verify it's valid YAML
	var result []testReport
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Entity != "actors" || result[0].Count != 12 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := []any{
		testReport{Entity: "actors", Count: 12},
		testReport{Entity: "nodes", Count: 4},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()

	// Verify output contains expected elements
	if !strings.Contains(output, "FIELD") || !strings.Contains(output, "VALUE") {
		t.Error("Expected table header not found")
	}

	if !strings.Contains(output, "[0].Entity") || !strings.Contains(output, "[1].Count") {
		t.Error("Expected flattened keys not found")
	}
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	if writer == nil {
		t.Fatal("Expected non-nil writer with unknown format")
	}

	data := testReport{Entity: "jobs", Count: 3}
	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize should not fail with unknown format (falls back to JSON): %v", err)
	}

	// Verify it was serialized as JSON
	var result testReport
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal as JSON: %v", err)
	}

	if result.Entity != "jobs" || result.Count != 3 {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_Close(t *testing.T) {
	// Test closing stdout writer (should be safe)
	writer := NewStdoutWriter(FormatJSON)
	err := writer.Close()
	if err != nil {
		t.Errorf("Close on stdout writer should not error: %v", err)
	}

	// Test closing multiple times (should be safe)
	err = writer.Close()
	if err != nil {
		t.Errorf("Multiple Close calls should not error: %v", err)
	}
}

func TestNewFileWriterOrStdout_EmptyPath(t *testing.T) {
	tests := []string{"", "  ", "\t", "\n"}

	for _, path := range tests {
		writer := NewFileWriterOrStdout(FormatJSON, path)
		if writer == nil {
			t.Fatalf("Expected non-nil writer for empty path %q", path)
		}
		// Should default to stdout, so Close should be safe
		if closer, ok := writer.(Closer); ok {
			if err := closer.Close(); err != nil {
				t.Errorf("Close failed for empty path writer: %v", err)
			}
		}
	}
}

func TestNewFileWriterOrStdout_Success(t *testing.T) {
	tmpFile := t.TempDir() + "/report.json"

	writer := NewFileWriterOrStdout(FormatJSON, tmpFile)
	if writer == nil {
		t.Fatal("Expected non-nil writer")
	}

	data := testReport{Entity: "workers", Count: 7}
	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Close the writer
	if closer, ok := writer.(Closer); ok {
		err = closer.Close()
		if err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	// Verify file exists and has content
	content, err := os.ReadFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	if len(content) == 0 {
		t.Error("Expected file to have content")
	}

	// Verify it's valid JSON
	var result testReport
	if err := json.Unmarshal(content, &result); err != nil {
		t.Fatalf("Failed to unmarshal file content: %v", err)
	}

	if result.Entity != "workers" || result.Count != 7 {
		t.Errorf("Unexpected data in file: %+v", result)
	}
}

func TestNewFileWriterOrStdout_InvalidPath(t *testing.T) {
	// Try to create a file in a non-existent directory without creating it first
	writer := NewFileWriterOrStdout(FormatJSON, "/nonexistent/path/report.json")

	// Should fall back to stdout
	if writer == nil {
		t.Fatal("Expected non-nil writer (should fallback to stdout)")
	}

	// Close should be safe
	if closer, ok := writer.(Closer); ok {
		if err := closer.Close(); err != nil {
			t.Errorf("Close should not error on fallback writer: %v", err)
		}
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("invalid"), true},
		{Format("xml"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.want {
				t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestWriter_SerializeTable_EmptyData(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	// Empty slice
	err := writer.Serialize(context.Background(), []testReport{})
	if err != nil {
		t.Fatalf("Serialize empty slice failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "<empty>") {
		t.Errorf("Expected '<empty>' in output for empty data, got: %s", output)
	}
}

func TestWriter_SerializeTable_NestedStructs(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type totals struct {
		Alive int
		Dead  int
	}

	type nodeReport struct {
		Node   string
		Totals totals
	}

	data := nodeReport{
		Node: "node-1",
		Totals: totals{
			Alive: 9,
			Dead:  2,
		},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()

	// Should have flattened nested keys
	if !strings.Contains(output, "Totals.Alive") {
		t.Error("Expected flattened key 'Totals.Alive' not found")
	}

	if !strings.Contains(output, "Totals.Dead") {
		t.Error("Expected flattened key 'Totals.Dead' not found")
	}

	if !strings.Contains(output, "node-1") {
		t.Error("Expected value 'node-1' not found")
	}

	if !strings.Contains(output, "9") {
		t.Error("Expected value '9' not found")
	}
}

func TestWriter_SerializeTable_Maps(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := map[string]any{
		"actors":  12,
		"nodes":   4,
		"healthy": true,
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()

	// Should have all keys
	if !strings.Contains(output, "actors") || !strings.Contains(output, "nodes") || !strings.Contains(output, "healthy") {
		t.Error("Expected all keys in output")
	}
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	type reportWithNil struct {
		Entity string
		Limit  *int
	}

	data := reportWithNil{
		Entity: "tasks",
		Limit:  nil,
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()

	// Should handle nil gracefully
	if !strings.Contains(output, "Entity") {
		t.Error("Expected 'Entity' field in output")
	}
}
