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

package config

import (
	"fmt"

	"github.com/NVIDIA/stateview/pkg/aggregator"
	"github.com/NVIDIA/stateview/pkg/k8s/client"
	"github.com/NVIDIA/stateview/pkg/source"
)

// BuildManager wires the configured sources into a query manager: the
// coordination client, the per-node peer client, the peer registry for the
// selected discovery mode, and the node resource summary provider.
func (c *Config) BuildManager() (*aggregator.Manager, error) {
	registry, err := c.buildRegistry()
	if err != nil {
		return nil, err
	}

	coord := source.NewHTTPCoordinationClient(c.Coordination.Endpoint)
	peers := source.NewHTTPPeerClient()
	resources := source.NewHTTPSummaryProvider(c.Coordination.Endpoint)

	return aggregator.New(coord, peers, registry, resources), nil
}

// buildRegistry selects the peer registry implementation for the
// configured discovery mode.
func (c *Config) buildRegistry() (source.Registry, error) {
	switch c.Discovery.Mode {
	case DiscoveryStatic:
		return source.NewStaticRegistry(c.Discovery.Static), nil

	case DiscoveryCoord:
		return source.NewCoordRegistry(c.Coordination.Endpoint), nil

	case DiscoveryKubernetes:
		kube, _, err := client.GetKubeClientWithConfig(c.Discovery.Kubernetes.Kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("building kubernetes client: %w", err)
		}
		return source.NewKubeRegistry(
			kube,
			c.Discovery.Kubernetes.Namespace,
			c.Discovery.Kubernetes.Selector,
			c.Discovery.DaemonPort,
			c.Discovery.AgentPort,
		), nil

	default:
		return nil, fmt.Errorf("unknown discovery mode %q", c.Discovery.Mode)
	}
}
