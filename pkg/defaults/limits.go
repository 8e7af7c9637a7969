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

package defaults

// Record limits for state listings.
const (
	// QueryLimit is the default maximum number of records one list
	// query returns.
	QueryLimit = 100

	// SummaryQueryLimit caps each listing composed into a cluster
	// summary. Summaries trade completeness for a bounded rollup on
	// very large clusters.
	SummaryQueryLimit = 1000
)

// HTTP connection pool limits for outbound requests.
const (
	// HTTPMaxIdleConns caps idle connections across all hosts.
	HTTPMaxIdleConns = 100

	// HTTPMaxIdleConnsPerHost caps idle connections kept per peer.
	HTTPMaxIdleConnsPerHost = 10
)
