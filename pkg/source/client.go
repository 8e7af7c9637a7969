package source

import (
	"context"
	"time"
)

// Peer is one fan-out target: a state daemon or state agent endpoint
// on a specific node.
type Peer struct {
	// ID is the identifier of the node the peer runs on.
	ID string `json:"id" yaml:"id"`

	// Addr is the peer's base URL, e.g. "http://10.0.0.12:8266".
	Addr string `json:"addr" yaml:"addr"`
}

// CoordinationClient queries the cluster wide tables held by the
// coordination service. Every call is a single request to one
// endpoint; timeouts bound that request.
type CoordinationClient interface {
	GetAllActorInfo(ctx context.Context, timeout time.Duration) ([]ActorInfo, error)
	GetAllPlacementGroupInfo(ctx context.Context, timeout time.Duration) ([]PlacementGroupInfo, error)
	GetAllNodeInfo(ctx context.Context, timeout time.Duration) ([]NodeInfo, error)
	GetAllWorkerInfo(ctx context.Context, timeout time.Duration) ([]WorkerInfo, error)

	// GetJobInfo returns the job table keyed by job identifier. Job
	// queries carry no caller timeout; the client's own transport
	// bounds apply.
	GetJobInfo(ctx context.Context) (map[string]JobInfo, error)
}

// PeerClient queries one state daemon or state agent. A nil reply
// with a nil error is a valid return and means the peer answered
// with nothing usable; callers count it as a failed peer.
type PeerClient interface {
	GetTaskInfo(ctx context.Context, peer Peer, timeout time.Duration) (*TaskInfoReply, error)
	GetObjectInfo(ctx context.Context, peer Peer, timeout time.Duration) (*ObjectStatsReply, error)
	GetRuntimeEnvState(ctx context.Context, peer Peer, timeout time.Duration) (*RuntimeEnvStateReply, error)
}

// Registry enumerates the peers currently registered in the cluster.
// Membership is re-read on every call so that listings reflect nodes
// joining and leaving between queries.
type Registry interface {
	Daemons(ctx context.Context) ([]Peer, error)
	Agents(ctx context.Context) ([]Peer, error)
}

// SummaryProvider reports per node physical utilization for cluster
// summaries.
type SummaryProvider interface {
	GetNodeResourceSummary(ctx context.Context) ([]NodeResourceSummary, error)
}
