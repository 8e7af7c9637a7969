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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Query timeouts
		{"QueryTimeout", QueryTimeout, 5 * time.Second, 60 * time.Second},
		{"SummaryQueryTimeout", SummaryQueryTimeout, 5 * time.Second, 60 * time.Second},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerReadHeaderTimeout", ServerReadHeaderTimeout, 1 * time.Second, 15 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 120 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		// HTTP client timeouts
		{"HTTPClientTimeout", HTTPClientTimeout, 10 * time.Second, 60 * time.Second},
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},

		// CLI timeouts
		{"CLIQueryTimeout", CLIQueryTimeout, 30 * time.Second, 10 * time.Minute},

		// ConfigMap timeouts
		{"ConfigMapWriteTimeout", ConfigMapWriteTimeout, 5 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	// Read timeout should be shorter than write timeout
	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}

	// Idle timeout should be longer than write timeout
	if ServerIdleTimeout < ServerWriteTimeout {
		t.Errorf("ServerIdleTimeout (%v) should be at least ServerWriteTimeout (%v)",
			ServerIdleTimeout, ServerWriteTimeout)
	}

	// Header reading is a prefix of request reading
	if ServerReadHeaderTimeout > ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should not exceed ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
}

func TestQueryTimeoutFitsServerWindow(t *testing.T) {
	// A listing can wait out a full query timeout before it starts
	// writing; the server write timeout must leave room for that.
	if ServerWriteTimeout <= QueryTimeout {
		t.Errorf("ServerWriteTimeout (%v) should exceed QueryTimeout (%v)",
			ServerWriteTimeout, QueryTimeout)
	}
}

func TestHTTPClientTimeoutRelationships(t *testing.T) {
	// Connect timeout should be less than total timeout
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}

	// TLS handshake timeout should be less than total timeout
	if HTTPTLSHandshakeTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPTLSHandshakeTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPTLSHandshakeTimeout, HTTPClientTimeout)
	}
}

func TestCLIQueryTimeoutCoversFanOut(t *testing.T) {
	// One CLI invocation covers discovery plus the fan-out, so its
	// deadline must exceed a single query timeout.
	if CLIQueryTimeout <= QueryTimeout {
		t.Errorf("CLIQueryTimeout (%v) should exceed QueryTimeout (%v)",
			CLIQueryTimeout, QueryTimeout)
	}
}

func TestLimitConstants(t *testing.T) {
	if QueryLimit <= 0 {
		t.Errorf("QueryLimit (%d) should be positive", QueryLimit)
	}
	if SummaryQueryLimit < QueryLimit {
		t.Errorf("SummaryQueryLimit (%d) should be at least QueryLimit (%d)",
			SummaryQueryLimit, QueryLimit)
	}
	if HTTPMaxIdleConnsPerHost > HTTPMaxIdleConns {
		t.Errorf("HTTPMaxIdleConnsPerHost (%d) should not exceed HTTPMaxIdleConns (%d)",
			HTTPMaxIdleConnsPerHost, HTTPMaxIdleConns)
	}
}
