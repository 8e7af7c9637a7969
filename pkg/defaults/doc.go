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

// Package defaults provides centralized configuration constants for stateview.
//
// This package defines timeout values, result limits, ports, and other
// configuration defaults used across the codebase. Centralizing these values
// ensures consistency and makes tuning easier.
//
// # Timeout Categories
//
// Timeouts are organized by component:
//
//   - Query timeouts: For state listing and summary fan-out
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound requests to peers and the
//     coordination service
//   - CLI timeouts: For interactive command deadlines
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/stateview/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.QueryTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// When choosing timeout values:
//
//   - List queries: 30s default, applied per upstream call
//   - Summary listings: 30s per composed listing
//   - CLI commands: 2m overall deadline
//   - Server shutdown: 30s for graceful drain
package defaults
