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

package state

import "strings"

// ParseFilter splits a filter expression into its usable clauses.
//
// The expression is split on commas, and each piece on every "=".
// A piece contributes a clause only when the split yields exactly two
// non-empty tokens: "a=b=c", "novalue", "a=" and "=b" are all dropped
// without error. Tokens are taken verbatim, whitespace included, and
// when the same column appears twice the later clause wins.
func ParseFilter(expr string) map[string]string {
	clauses := make(map[string]string)
	for _, kv := range strings.Split(expr, ",") {
		tokens := strings.Split(kv, "=")
		if len(tokens) != 2 || tokens[0] == "" || tokens[1] == "" {
			continue
		}
		clauses[tokens[0]] = tokens[1]
	}
	return clauses
}

// matchClauses reports whether r satisfies every clause. A clause
// matches only when the record declares the column and the rendered
// value is exactly equal. A record missing any filtered column never
// matches.
func matchClauses(r Record, clauses map[string]string) bool {
	for column, want := range clauses {
		got, ok := r.Field(column)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// ApplyFilter returns the records satisfying the filter expression.
// An expression with no usable clauses keeps everything.
func ApplyFilter[R Record](records []R, expr string) []R {
	clauses := ParseFilter(expr)
	if len(clauses) == 0 {
		return records
	}
	kept := make([]R, 0, len(records))
	for _, r := range records {
		if matchClauses(r, clauses) {
			kept = append(kept, r)
		}
	}
	return kept
}
