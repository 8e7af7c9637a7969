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
	"os"
	"path/filepath"
	"testing"
)

func TestSummaryCommandDegradedStillSucceeds(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "summary.json")

	err := rootCmd().Run(context.Background(), []string{
		"stateview", "summary",
		"--coord", deadEndpoint(t),
		"--format", "json",
		"--output", outPath,
	})
	if err != nil {
		t.Fatalf("expected degraded summary to succeed, got: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}

	var report struct {
		Kind   string `json:"kind"`
		Result struct {
			Warnings []string `json:"warnings"`
		} `json:"result"`
	}
	if err := json.Unmarshal(raw, &report); err != nil {
		t.Fatalf("failed to unmarshal report: %v", err)
	}

	if report.Kind != "ClusterSummary" {
		t.Errorf("Kind = %q, want %q", report.Kind, "ClusterSummary")
	}
	if len(report.Result.Warnings) == 0 {
		t.Error("expected warnings from unreachable sources")
	}
}
