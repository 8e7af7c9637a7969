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

// Package client provides a singleton Kubernetes client for efficient cluster interactions.
//
// This package centralizes Kubernetes API access using a singleton pattern with sync.Once
// to prevent connection exhaustion and reduce load on the Kubernetes API server.
// The client is shared across all components that need Kubernetes access, including
// the pod discovery registry and ConfigMap serializers.
//
// # Singleton Pattern
//
// The client is initialized once on first use and cached for subsequent calls:
//
//	import "github.com/NVIDIA/stateview/pkg/k8s/client"
//
//	clientset, config, err := client.GetKubeClient()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
//	// Use clientset for API operations
//	pods, err := clientset.CoreV1().Pods("default").List(ctx, metav1.ListOptions{})
//
// # Custom Kubeconfig Path
//
// For cases where you need to specify a custom kubeconfig file instead of using
// the singleton with automatic discovery, use GetKubeClientWithConfig:
//
//	clientset, config, err := client.GetKubeClientWithConfig("/path/to/custom/kubeconfig")
//	if err != nil {
//	    return fmt.Errorf("failed to build kubernetes client: %w", err)
//	}
//
// An empty path runs the same automatic discovery as the singleton but
// always builds a fresh client; prefer GetKubeClient when the shared
// instance will do.
//
// # Authentication Modes
//
// The client automatically handles both in-cluster and out-of-cluster authentication:
//
// In-cluster (running as Kubernetes Pod):
//   - Uses service account credentials from /var/run/secrets/kubernetes.io/serviceaccount/
//   - Automatically configured when running inside a Kubernetes cluster
//   - No additional configuration required
//
// Out-of-cluster (running locally or on non-K8s host):
//   - Checks KUBECONFIG environment variable first
//   - Falls back to ~/.kube/config if KUBECONFIG not set
//   - Returns error if no valid kubeconfig found
//
// # Usage Patterns
//
// Pod discovery registry usage (see pkg/source):
//
//	clientset, _, err := client.GetKubeClientWithConfig(cfg.Kubeconfig)
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//	registry := source.NewKubeRegistry(clientset, namespace, selector, daemonPort, agentPort)
//
// ConfigMap serializer usage:
//
//	func WriteToConfigMap(ctx context.Context, data []byte) error {
//	    clientset, _, err := client.GetKubeClient()
//	    if err != nil {
//	        return fmt.Errorf("failed to get kubernetes client: %w", err)
//	    }
//
//	    cm := &corev1.ConfigMap{...}
//	    _, err = clientset.CoreV1().ConfigMaps("default").Create(ctx, cm, metav1.CreateOptions{})
//	    return err
//	}
//
// # Benefits
//
// Connection Reuse:
//   - Single client instance prevents connection exhaustion
//   - Reduces load on Kubernetes API server
//   - Improves performance for repeated API calls
//
// Thread Safety:
//   - sync.Once ensures exactly one initialization
//   - Safe for concurrent use across goroutines
//   - No mutex locks required for read operations
//
// # Testing
//
// For testing, use kubernetes client-go fake clients:
//
//	import (
//	    "k8s.io/client-go/kubernetes/fake"
//	)
//
//	func TestRegistry(t *testing.T) {
//	    fakeClient := fake.NewClientset()
//	    registry := source.NewKubeRegistry(fakeClient, "default", "app=daemon", 8266, 52365)
//	    // Test discovery without a real Kubernetes API
//	}
//
// See also:
//   - pkg/source - Kubernetes pod discovery registry using this client
//   - pkg/serializer/configmap.go - ConfigMap serializer using this client
//   - pkg/serializer/reader.go - ConfigMap reader using this client
package client
