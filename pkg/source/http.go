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
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/NVIDIA/stateview/pkg/defaults"
)

const clientUserAgent = "stateview/1.0"

// ClientOption adjusts the HTTP clients in this package.
type ClientOption func(*clientSettings)

type clientSettings struct {
	client             *http.Client
	userAgent          string
	insecureSkipVerify bool
}

// WithHTTPClient substitutes the underlying *http.Client. Transport
// tuning options are ignored for a caller supplied client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(s *clientSettings) {
		s.client = client
	}
}

// WithUserAgent overrides the User-Agent header sent upstream.
func WithUserAgent(agent string) ClientOption {
	return func(s *clientSettings) {
		s.userAgent = agent
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
// Intended for lab clusters with self signed endpoints.
func WithInsecureSkipVerify(skip bool) ClientOption {
	return func(s *clientSettings) {
		s.insecureSkipVerify = skip
	}
}

func newClientSettings(opts ...ClientOption) *clientSettings {
	s := &clientSettings{userAgent: clientUserAgent}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = &http.Client{
			Timeout:   defaults.HTTPClientTimeout,
			Transport: newHTTPTransport(s.insecureSkipVerify),
		}
	}
	return s
}

func newHTTPTransport(insecureSkipVerify bool) *http.Transport {
	return &http.Transport{
		MaxIdleConns:        defaults.HTTPMaxIdleConns,
		MaxIdleConnsPerHost: defaults.HTTPMaxIdleConnsPerHost,

		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: 1 * time.Second,

		IdleConnTimeout:   defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2: true,

		TLSClientConfig: &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: insecureSkipVerify,
		},
	}
}

// getJSON issues one GET and decodes the JSON body into out. A
// positive timeout bounds the whole exchange on top of whatever
// deadline ctx already carries. A 204 returns errNoContent so
// callers can surface the empty reply distinctly.
func (s *clientSettings) getJSON(ctx context.Context, timeout time.Duration, url string, out any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return errNoContent
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status from %s: %s", url, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode reply from %s: %w", url, err)
	}
	return nil
}

var errNoContent = errors.New("empty reply")

func joinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + path
}

// HTTPCoordinationClient talks to the coordination service's internal
// state API over HTTP.
type HTTPCoordinationClient struct {
	endpoint string
	settings *clientSettings
}

// NewHTTPCoordinationClient returns a client for the coordination
// service at the given base endpoint, e.g. "http://coord:8265".
func NewHTTPCoordinationClient(endpoint string, opts ...ClientOption) *HTTPCoordinationClient {
	return &HTTPCoordinationClient{
		endpoint: endpoint,
		settings: newClientSettings(opts...),
	}
}

type actorTableReply struct {
	Actors []ActorInfo `json:"actors"`
}

type placementGroupTableReply struct {
	PlacementGroups []PlacementGroupInfo `json:"placement_groups"`
}

type nodeTableReply struct {
	Nodes []NodeInfo `json:"nodes"`
}

type workerTableReply struct {
	Workers []WorkerInfo `json:"workers"`
}

type jobTableReply struct {
	Jobs map[string]JobInfo `json:"jobs"`
}

// GetAllActorInfo implements CoordinationClient.
func (c *HTTPCoordinationClient) GetAllActorInfo(ctx context.Context, timeout time.Duration) ([]ActorInfo, error) {
	var reply actorTableReply
	if err := c.settings.getJSON(ctx, timeout, joinURL(c.endpoint, "/internal/v0/actors"), &reply); err != nil {
		return nil, err
	}
	return reply.Actors, nil
}

// GetAllPlacementGroupInfo implements CoordinationClient.
func (c *HTTPCoordinationClient) GetAllPlacementGroupInfo(ctx context.Context, timeout time.Duration) ([]PlacementGroupInfo, error) {
	var reply placementGroupTableReply
	if err := c.settings.getJSON(ctx, timeout, joinURL(c.endpoint, "/internal/v0/placement_groups"), &reply); err != nil {
		return nil, err
	}
	return reply.PlacementGroups, nil
}

// GetAllNodeInfo implements CoordinationClient.
func (c *HTTPCoordinationClient) GetAllNodeInfo(ctx context.Context, timeout time.Duration) ([]NodeInfo, error) {
	var reply nodeTableReply
	if err := c.settings.getJSON(ctx, timeout, joinURL(c.endpoint, "/internal/v0/nodes"), &reply); err != nil {
		return nil, err
	}
	return reply.Nodes, nil
}

// GetAllWorkerInfo implements CoordinationClient.
func (c *HTTPCoordinationClient) GetAllWorkerInfo(ctx context.Context, timeout time.Duration) ([]WorkerInfo, error) {
	var reply workerTableReply
	if err := c.settings.getJSON(ctx, timeout, joinURL(c.endpoint, "/internal/v0/workers"), &reply); err != nil {
		return nil, err
	}
	return reply.Workers, nil
}

// GetJobInfo implements CoordinationClient.
func (c *HTTPCoordinationClient) GetJobInfo(ctx context.Context) (map[string]JobInfo, error) {
	var reply jobTableReply
	if err := c.settings.getJSON(ctx, 0, joinURL(c.endpoint, "/internal/v0/jobs"), &reply); err != nil {
		return nil, err
	}
	return reply.Jobs, nil
}

// HTTPPeerClient queries state daemons and state agents over HTTP.
// A peer answering 204 yields a nil reply with a nil error.
type HTTPPeerClient struct {
	settings *clientSettings
}

// NewHTTPPeerClient returns a peer client with pooled connections
// shared across all peers.
func NewHTTPPeerClient(opts ...ClientOption) *HTTPPeerClient {
	return &HTTPPeerClient{settings: newClientSettings(opts...)}
}

// GetTaskInfo implements PeerClient.
func (c *HTTPPeerClient) GetTaskInfo(ctx context.Context, peer Peer, timeout time.Duration) (*TaskInfoReply, error) {
	var reply TaskInfoReply
	err := c.settings.getJSON(ctx, timeout, joinURL(peer.Addr, "/v0/tasks"), &reply)
	if errors.Is(err, errNoContent) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetObjectInfo implements PeerClient.
func (c *HTTPPeerClient) GetObjectInfo(ctx context.Context, peer Peer, timeout time.Duration) (*ObjectStatsReply, error) {
	var reply ObjectStatsReply
	err := c.settings.getJSON(ctx, timeout, joinURL(peer.Addr, "/v0/objects"), &reply)
	if errors.Is(err, errNoContent) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetRuntimeEnvState implements PeerClient.
func (c *HTTPPeerClient) GetRuntimeEnvState(ctx context.Context, peer Peer, timeout time.Duration) (*RuntimeEnvStateReply, error) {
	var reply RuntimeEnvStateReply
	err := c.settings.getJSON(ctx, timeout, joinURL(peer.Addr, "/v0/runtime_envs"), &reply)
	if errors.Is(err, errNoContent) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// HTTPSummaryProvider reads per node utilization from the cluster
// resource monitor endpoint.
type HTTPSummaryProvider struct {
	endpoint string
	settings *clientSettings
}

// NewHTTPSummaryProvider returns a provider for the resource monitor
// at the given base endpoint. The coordination service endpoint
// usually serves this too.
func NewHTTPSummaryProvider(endpoint string, opts ...ClientOption) *HTTPSummaryProvider {
	return &HTTPSummaryProvider{
		endpoint: endpoint,
		settings: newClientSettings(opts...),
	}
}

type nodeSummaryReply struct {
	Summaries []NodeResourceSummary `json:"summaries"`
}

// GetNodeResourceSummary implements SummaryProvider.
func (p *HTTPSummaryProvider) GetNodeResourceSummary(ctx context.Context) ([]NodeResourceSummary, error) {
	var reply nodeSummaryReply
	if err := p.settings.getJSON(ctx, 0, joinURL(p.endpoint, "/internal/v0/node_summary"), &reply); err != nil {
		return nil, err
	}
	return reply.Summaries, nil
}
