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

package aggregator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Query metrics, labeled by the entity being listed
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stateview_query_duration_seconds",
			Help:    "Time taken to answer one state query end to end",
			Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"entity"},
	)

	queryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stateview_query_total",
			Help: "Total number of state queries answered",
		},
		[]string{"entity", "status"}, // status: ok or degraded
	)

	peerQueryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stateview_peer_query_failures_total",
			Help: "Peer requests that errored, timed out, or returned nothing",
		},
		[]string{"entity"},
	)

	fanoutPeers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stateview_fanout_peers",
			Help: "Number of peers targeted by the last fan-out query",
		},
		[]string{"entity"},
	)
)

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
)

// observeQuery records the terminal metrics for one query.
func observeQuery(entity string, seconds float64, degraded bool) {
	queryDuration.WithLabelValues(entity).Observe(seconds)
	status := statusOK
	if degraded {
		status = statusDegraded
	}
	queryTotal.WithLabelValues(entity, status).Inc()
}
