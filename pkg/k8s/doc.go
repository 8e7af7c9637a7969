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

// Package k8s provides Kubernetes integration for stateview.
//
// This package contains sub-packages for Kubernetes cluster interaction:
//
// # Sub-packages
//
// client: Singleton Kubernetes client with automatic authentication
//
//	clientset, config, err := client.GetKubeClient()
//	if err != nil {
//	    return err
//	}
//	// Use clientset for API operations
//
// # Architecture
//
// The k8s package follows these design principles:
//
//   - Singleton Pattern: The client package uses sync.Once to ensure a single
//     Kubernetes client instance is shared across the application, preventing
//     connection exhaustion and reducing API server load.
//
//   - Automatic Authentication: The client automatically detects whether it's
//     running in-cluster (using service account) or out-of-cluster (using
//     kubeconfig file).
//
// # Usage Patterns
//
// The kubernetes discovery registry resolves its clientset through this
// package; see pkg/source. With an explicit kubeconfig path:
//
//	import "github.com/NVIDIA/stateview/pkg/k8s/client"
//
//	clientset, _, err := client.GetKubeClientWithConfig(kubeconfigPath)
//
// The serializer's ConfigMap writer (cm:// output URIs) goes through the
// same shared client.
//
// # Thread Safety
//
// The client sub-package uses sync.Once for thread-safe initialization;
// the returned clientset is safe for concurrent use.
package k8s
