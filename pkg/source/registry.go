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

package source

import (
	"context"
	"fmt"
	"sort"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// PeerEntry pairs one node with its daemon and agent endpoints. An
// empty address means the node does not expose that role.
type PeerEntry struct {
	NodeID     string `json:"node_id" yaml:"node_id"`
	DaemonAddr string `json:"daemon_addr,omitempty" yaml:"daemon_addr,omitempty"`
	AgentAddr  string `json:"agent_addr,omitempty" yaml:"agent_addr,omitempty"`
}

func sortPeers(peers []Peer) []Peer {
	sort.Slice(peers, func(i, j int) bool { return peers[i].ID < peers[j].ID })
	return peers
}

// StaticRegistry serves a fixed peer set, typically from the config
// file. Useful for bare metal clusters and tests.
type StaticRegistry struct {
	entries []PeerEntry
}

// NewStaticRegistry returns a registry over the given entries.
func NewStaticRegistry(entries []PeerEntry) *StaticRegistry {
	return &StaticRegistry{entries: entries}
}

// Daemons implements Registry.
func (r *StaticRegistry) Daemons(_ context.Context) ([]Peer, error) {
	peers := make([]Peer, 0, len(r.entries))
	for _, e := range r.entries {
		if e.DaemonAddr == "" {
			continue
		}
		peers = append(peers, Peer{ID: e.NodeID, Addr: e.DaemonAddr})
	}
	return sortPeers(peers), nil
}

// Agents implements Registry.
func (r *StaticRegistry) Agents(_ context.Context) ([]Peer, error) {
	peers := make([]Peer, 0, len(r.entries))
	for _, e := range r.entries {
		if e.AgentAddr == "" {
			continue
		}
		peers = append(peers, Peer{ID: e.NodeID, Addr: e.AgentAddr})
	}
	return sortPeers(peers), nil
}

// CoordRegistry reads peer membership from the coordination service,
// which tracks daemon and agent registrations as nodes join and
// leave. Membership is fetched fresh on every call.
type CoordRegistry struct {
	endpoint string
	settings *clientSettings
}

// NewCoordRegistry returns a registry backed by the coordination
// service at the given base endpoint.
func NewCoordRegistry(endpoint string, opts ...ClientOption) *CoordRegistry {
	return &CoordRegistry{
		endpoint: endpoint,
		settings: newClientSettings(opts...),
	}
}

type peerTableReply struct {
	Peers []PeerEntry `json:"peers"`
}

func (r *CoordRegistry) entries(ctx context.Context) ([]PeerEntry, error) {
	var reply peerTableReply
	if err := r.settings.getJSON(ctx, 0, joinURL(r.endpoint, "/internal/v0/peers"), &reply); err != nil {
		return nil, fmt.Errorf("failed to read peer registrations: %w", err)
	}
	return reply.Peers, nil
}

// Daemons implements Registry.
func (r *CoordRegistry) Daemons(ctx context.Context) ([]Peer, error) {
	entries, err := r.entries(ctx)
	if err != nil {
		return nil, err
	}
	peers := make([]Peer, 0, len(entries))
	for _, e := range entries {
		if e.DaemonAddr == "" {
			continue
		}
		peers = append(peers, Peer{ID: e.NodeID, Addr: e.DaemonAddr})
	}
	return sortPeers(peers), nil
}

// Agents implements Registry.
func (r *CoordRegistry) Agents(ctx context.Context) ([]Peer, error) {
	entries, err := r.entries(ctx)
	if err != nil {
		return nil, err
	}
	peers := make([]Peer, 0, len(entries))
	for _, e := range entries {
		if e.AgentAddr == "" {
			continue
		}
		peers = append(peers, Peer{ID: e.NodeID, Addr: e.AgentAddr})
	}
	return sortPeers(peers), nil
}

// KubeRegistry discovers peers by listing the node pods of a cluster
// deployed on Kubernetes. Each matching running pod is assumed to
// expose both the daemon and the agent port on its pod IP.
type KubeRegistry struct {
	client     kubernetes.Interface
	namespace  string
	selector   string
	daemonPort int
	agentPort  int
}

// NewKubeRegistry returns a registry that lists pods in namespace
// matching the label selector, e.g. "app.kubernetes.io/component=node".
func NewKubeRegistry(client kubernetes.Interface, namespace, selector string, daemonPort, agentPort int) *KubeRegistry {
	return &KubeRegistry{
		client:     client,
		namespace:  namespace,
		selector:   selector,
		daemonPort: daemonPort,
		agentPort:  agentPort,
	}
}

func (r *KubeRegistry) peers(ctx context.Context, port int) ([]Peer, error) {
	pods, err := r.client.CoreV1().Pods(r.namespace).List(ctx, metav1.ListOptions{
		LabelSelector: r.selector,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list peer pods in %s: %w", r.namespace, err)
	}

	peers := make([]Peer, 0, len(pods.Items))
	for _, pod := range pods.Items {
		if pod.Status.Phase != corev1.PodRunning || pod.Status.PodIP == "" {
			continue
		}
		// Node pods run one per node; the node name is the peer identity.
		id := pod.Spec.NodeName
		if id == "" {
			id = pod.Name
		}
		peers = append(peers, Peer{
			ID:   id,
			Addr: fmt.Sprintf("http://%s:%d", pod.Status.PodIP, port),
		})
	}
	return sortPeers(peers), nil
}

// Daemons implements Registry.
func (r *KubeRegistry) Daemons(ctx context.Context) ([]Peer, error) {
	return r.peers(ctx, r.daemonPort)
}

// Agents implements Registry.
func (r *KubeRegistry) Agents(ctx context.Context) ([]Peer, error) {
	return r.peers(ctx, r.agentPort)
}
