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

// Well-known ports for stateview components.
const (
	// ServerPort is the default listen port for the stateview API server.
	ServerPort = 8080

	// DaemonPort is the default port node daemons expose their task and
	// object endpoints on.
	DaemonPort = 8266

	// AgentPort is the default port node agents expose their runtime
	// environment endpoint on.
	AgentPort = 52365

	// CoordinationEndpoint is the default address of the coordination
	// service.
	CoordinationEndpoint = "http://127.0.0.1:8265"
)
