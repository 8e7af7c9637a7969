// Package config loads and validates the stateview configuration.
//
// Configuration is read from a YAML (or JSON) file, with unset fields
// falling back to the defaults in pkg/defaults and STATEVIEW_* environment
// variables overriding both. The cm://namespace/name URI form reads the
// config from a Kubernetes ConfigMap instead of the filesystem.
//
// # File Format
//
//	coordination:
//	  endpoint: http://head-node:8265
//	discovery:
//	  mode: static          # static | coord | kubernetes
//	  daemon_port: 8266
//	  agent_port: 52365
//	  static:
//	    - node_id: node-1
//	      daemon_addr: 10.0.0.1:8266
//	      agent_addr: 10.0.0.1:52365
//	  kubernetes:
//	    namespace: compute
//	    selector: app=node
//	query:
//	  timeout: 30s
//	  limit: 100
//	server:
//	  port: 8080
//	  rate_limit: 100
//	  rate_limit_burst: 200
//
// # Discovery Modes
//
//   - static: peer daemons and agents are listed in the config file.
//   - coord: the peer set is fetched from the coordination service on
//     every query, so fan-out tracks cluster membership.
//   - kubernetes: node pods are listed via the Kubernetes API using the
//     configured namespace and label selector.
//
// # Environment Overrides
//
//	STATEVIEW_COORD_ENDPOINT  coordination service address
//	STATEVIEW_DISCOVERY_MODE  static | coord | kubernetes
//	STATEVIEW_KUBE_NAMESPACE  kubernetes discovery namespace
//	STATEVIEW_KUBE_SELECTOR   kubernetes discovery label selector
//	STATEVIEW_QUERY_TIMEOUT   default query timeout (e.g. 45s)
//	STATEVIEW_QUERY_LIMIT     default result limit
//
// # Wiring
//
// BuildManager turns a validated Config into a ready *aggregator.Manager:
//
//	cfg, err := config.Load(path)
//	if err != nil {
//	    return err
//	}
//	mgr, err := cfg.BuildManager()
package config
