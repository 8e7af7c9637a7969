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
	"os"
	"strconv"
	"time"

	"github.com/NVIDIA/stateview/pkg/defaults"
	"github.com/NVIDIA/stateview/pkg/serializer"
	"github.com/NVIDIA/stateview/pkg/source"
	"gopkg.in/yaml.v3"
)

// Discovery modes for locating cluster peers.
const (
	// DiscoveryStatic reads the peer set from the config file.
	DiscoveryStatic = "static"
	// DiscoveryCoord asks the coordination service for the peer set.
	DiscoveryCoord = "coord"
	// DiscoveryKubernetes lists node pods via the Kubernetes API.
	DiscoveryKubernetes = "kubernetes"
)

// Environment variables that override file values.
const (
	EnvCoordEndpoint = "STATEVIEW_COORD_ENDPOINT"
	EnvDiscoveryMode = "STATEVIEW_DISCOVERY_MODE"
	EnvKubeNamespace = "STATEVIEW_KUBE_NAMESPACE"
	EnvKubeSelector  = "STATEVIEW_KUBE_SELECTOR"
	EnvQueryTimeout  = "STATEVIEW_QUERY_TIMEOUT"
	EnvQueryLimit    = "STATEVIEW_QUERY_LIMIT"
)

// Duration wraps time.Duration so YAML and JSON configs can use values
// like "30s". Bare numbers are interpreted as seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		return d.parse(s)
	}

	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(time.Duration(n) * time.Second)
		return nil
	}

	return fmt.Errorf("invalid duration: %s", value.Value)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return d.parse(s[1 : len(s)-1])
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid duration: %s", s)
	}
	*d = Duration(time.Duration(n) * time.Second)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) parse(s string) error {
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped standard library duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the top-level stateview configuration.
type Config struct {
	Coordination CoordinationConfig `json:"coordination" yaml:"coordination"`
	Discovery    DiscoveryConfig    `json:"discovery" yaml:"discovery"`
	Query        QueryConfig        `json:"query" yaml:"query"`
	Server       ServerConfig       `json:"server" yaml:"server"`
}

// CoordinationConfig locates the coordination service that tracks
// cluster-wide actor, node, worker, and job state.
type CoordinationConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// DiscoveryConfig controls how the peer set for fan-out queries is found.
type DiscoveryConfig struct {
	Mode       string              `json:"mode" yaml:"mode"`
	DaemonPort int                 `json:"daemon_port" yaml:"daemon_port"`
	AgentPort  int                 `json:"agent_port" yaml:"agent_port"`
	Static     []source.PeerEntry  `json:"static,omitempty" yaml:"static,omitempty"`
	Kubernetes KubeDiscoveryConfig `json:"kubernetes,omitempty" yaml:"kubernetes,omitempty"`
}

// KubeDiscoveryConfig selects node pods when discovery mode is kubernetes.
type KubeDiscoveryConfig struct {
	Namespace  string `json:"namespace" yaml:"namespace"`
	Selector   string `json:"selector" yaml:"selector"`
	Kubeconfig string `json:"kubeconfig,omitempty" yaml:"kubeconfig,omitempty"`
}

// QueryConfig sets the default bounds applied to list queries that do not
// specify their own.
type QueryConfig struct {
	Timeout Duration `json:"timeout" yaml:"timeout"`
	Limit   int      `json:"limit" yaml:"limit"`
}

// ServerConfig holds the API server listen settings.
type ServerConfig struct {
	Address        string  `json:"address" yaml:"address"`
	Port           int     `json:"port" yaml:"port"`
	RateLimit      float64 `json:"rate_limit" yaml:"rate_limit"`
	RateLimitBurst int     `json:"rate_limit_burst" yaml:"rate_limit_burst"`
}

// Default returns a configuration suitable for a single-node setup: peers
// come from the coordination service on localhost.
func Default() *Config {
	return &Config{
		Coordination: CoordinationConfig{
			Endpoint: defaults.CoordinationEndpoint,
		},
		Discovery: DiscoveryConfig{
			Mode:       DiscoveryCoord,
			DaemonPort: defaults.DaemonPort,
			AgentPort:  defaults.AgentPort,
		},
		Query: QueryConfig{
			Timeout: Duration(defaults.QueryTimeout),
			Limit:   defaults.QueryLimit,
		},
		Server: ServerConfig{
			Port:           defaults.ServerPort,
			RateLimit:      100,
			RateLimitBurst: 200,
		},
	}
}

// Load reads the configuration from path, fills unset values with
// defaults, applies environment overrides, and validates the result. An
// empty path yields the default configuration (plus overrides).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		loaded, err := serializer.FromFile[Config](path)
		if err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg = loaded
		cfg.applyDefaults()
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills zero-valued fields after a file load so partial
// configs stay usable.
func (c *Config) applyDefaults() {
	if c.Coordination.Endpoint == "" {
		c.Coordination.Endpoint = defaults.CoordinationEndpoint
	}
	if c.Discovery.Mode == "" {
		c.Discovery.Mode = DiscoveryCoord
	}
	if c.Discovery.DaemonPort == 0 {
		c.Discovery.DaemonPort = defaults.DaemonPort
	}
	if c.Discovery.AgentPort == 0 {
		c.Discovery.AgentPort = defaults.AgentPort
	}
	if c.Query.Timeout == 0 {
		c.Query.Timeout = Duration(defaults.QueryTimeout)
	}
	if c.Query.Limit == 0 {
		c.Query.Limit = defaults.QueryLimit
	}
	if c.Server.Port == 0 {
		c.Server.Port = defaults.ServerPort
	}
	if c.Server.RateLimit == 0 {
		c.Server.RateLimit = 100
	}
	if c.Server.RateLimitBurst == 0 {
		c.Server.RateLimitBurst = 200
	}
}

// applyEnv overrides file values from the STATEVIEW_* environment.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvCoordEndpoint); v != "" {
		c.Coordination.Endpoint = v
	}
	if v := os.Getenv(EnvDiscoveryMode); v != "" {
		c.Discovery.Mode = v
	}
	if v := os.Getenv(EnvKubeNamespace); v != "" {
		c.Discovery.Kubernetes.Namespace = v
	}
	if v := os.Getenv(EnvKubeSelector); v != "" {
		c.Discovery.Kubernetes.Selector = v
	}
	if v := os.Getenv(EnvQueryTimeout); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.Query.Timeout = Duration(parsed)
		}
	}
	if v := os.Getenv(EnvQueryLimit); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			c.Query.Limit = limit
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			c.Server.Port = port
		}
	}
}

// Validate rejects configurations the wiring cannot act on.
func (c *Config) Validate() error {
	switch c.Discovery.Mode {
	case DiscoveryStatic, DiscoveryCoord, DiscoveryKubernetes:
	default:
		return fmt.Errorf("unknown discovery mode %q (valid: %s, %s, %s)",
			c.Discovery.Mode, DiscoveryStatic, DiscoveryCoord, DiscoveryKubernetes)
	}

	if c.Coordination.Endpoint == "" {
		return fmt.Errorf("coordination endpoint is required")
	}

	if c.Discovery.DaemonPort < 1 || c.Discovery.DaemonPort > 65535 {
		return fmt.Errorf("daemon port %d out of range", c.Discovery.DaemonPort)
	}
	if c.Discovery.AgentPort < 1 || c.Discovery.AgentPort > 65535 {
		return fmt.Errorf("agent port %d out of range", c.Discovery.AgentPort)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}

	if c.Query.Timeout <= 0 {
		return fmt.Errorf("query timeout must be positive, got %s", c.Query.Timeout.Std())
	}
	if c.Query.Limit < 0 {
		return fmt.Errorf("query limit must not be negative, got %d", c.Query.Limit)
	}

	return nil
}
