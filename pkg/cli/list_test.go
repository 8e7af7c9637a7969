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

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/NVIDIA/stateview/pkg/config"
	"github.com/NVIDIA/stateview/pkg/state"
)

// listReport mirrors the JSON shape the list command writes.
type listReport struct {
	Kind       string `json:"kind"`
	APIVersion string `json:"apiVersion"`
	Result     struct {
		Data     map[string]state.Actor `json:"data"`
		Warnings []string               `json:"warnings"`
	} `json:"result"`
}

// newCoordServer fakes the coordination service actor table.
func newCoordServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/internal/v0/actors" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"actors":[
			{"actor_id":"a1","state":"ALIVE","class_name":"Trainer"},
			{"actor_id":"a2","state":"DEAD","class_name":"Reader"}
		]}`)
	}))
}

// deadEndpoint returns a URL nothing is listening on.
func deadEndpoint(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return url
}

func TestListCommandEndToEnd(t *testing.T) {
	srv := newCoordServer(t)
	defer srv.Close()

	outPath := filepath.Join(t.TempDir(), "actors.json")

	err := rootCmd().Run(context.Background(), []string{
		"stateview", "list",
		"--coord", srv.URL,
		"--format", "json",
		"--output", outPath,
		"actors",
	})
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	var report listReport
	if err := json.Unmarshal(raw, &report); err != nil {
		t.Fatalf("failed to unmarshal report: %v", err)
	}

	if report.Kind != "Actors" {
		t.Errorf("Kind = %q, want %q", report.Kind, "Actors")
	}
	if report.APIVersion == "" {
		t.Error("expected apiVersion to be set")
	}
	if len(report.Result.Data) != 2 {
		t.Errorf("expected 2 actors, got %d", len(report.Result.Data))
	}
	if report.Result.Data["a1"].ClassName != "Trainer" {
		t.Errorf("unexpected actor a1: %+v", report.Result.Data["a1"])
	}
	if len(report.Result.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", report.Result.Warnings)
	}
}

func TestListCommandDegradedStillSucceeds(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "actors.json")

	err := rootCmd().Run(context.Background(), []string{
		"stateview", "list",
		"--coord", deadEndpoint(t),
		"--format", "json",
		"--output", outPath,
		"actors",
	})
	if err != nil {
		t.Fatalf("expected degraded listing to succeed, got: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	var report listReport
	if err := json.Unmarshal(raw, &report); err != nil {
		t.Fatalf("failed to unmarshal report: %v", err)
	}

	if len(report.Result.Data) != 0 {
		t.Errorf("expected empty data, got %d records", len(report.Result.Data))
	}
	if len(report.Result.Warnings) == 0 {
		t.Error("expected a warning about the unreachable coordination service")
	}
}

func TestListCommandMissingEntity(t *testing.T) {
	err := rootCmd().Run(context.Background(), []string{"stateview", "list"})
	if err == nil {
		t.Fatal("expected error for missing entity")
	}
	if !strings.Contains(err.Error(), "missing entity") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestListCommandUnknownEntity(t *testing.T) {
	err := rootCmd().Run(context.Background(), []string{"stateview", "list", "gophers"})
	if err == nil {
		t.Fatal("expected error for unknown entity")
	}
	if !strings.Contains(err.Error(), "unknown entity") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestListCommandUnknownFormat(t *testing.T) {
	err := rootCmd().Run(context.Background(), []string{
		"stateview", "list", "--format", "xml", "actors",
	})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("unexpected error: %v", err)
	}
}

// Every supported entity must dispatch, even when all sources are
// unreachable.
func TestRunListCoversAllEntities(t *testing.T) {
	cfg := config.Default()
	cfg.Coordination.Endpoint = deadEndpoint(t)

	mgr, err := cfg.BuildManager()
	if err != nil {
		t.Fatalf("failed to build manager: %v", err)
	}

	opts := state.ListOptions{Limit: 10, Timeout: time.Second}

	for _, entity := range supportedEntities() {
		t.Run(entity, func(t *testing.T) {
			result, err := runList(context.Background(), mgr, entity, opts)
			if err != nil {
				t.Fatalf("runList(%q) returned error: %v", entity, err)
			}
			if result == nil {
				t.Fatalf("runList(%q) returned nil result", entity)
			}
		})
	}

	if _, err := runList(context.Background(), mgr, "gophers", opts); err == nil {
		t.Error("expected error for unknown entity")
	}
}
