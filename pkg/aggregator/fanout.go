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
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/stateview/pkg/source"
)

// FanOut queries every peer concurrently and joins all replies.
//
// Each peer gets its own goroutine and, when timeout is positive, its
// own deadline; one slow or dead peer never cancels its siblings, it
// just runs out its own clock. A peer fails the query when the call
// errors, times out, or returns a nil reply. Failed peers are counted,
// not retried.
//
// Replies come back in peer order with the failures squeezed out, so
// downstream merging stays deterministic for a fixed peer set.
func FanOut[T any](ctx context.Context, peers []source.Peer, timeout time.Duration,
	query func(ctx context.Context, peer source.Peer) (*T, error)) ([]*T, int) {

	replies := make([]*T, len(peers))

	var g errgroup.Group
	for i, peer := range peers {
		g.Go(func() error {
			qctx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				qctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			reply, err := query(qctx, peer)
			if err != nil {
				slog.Debug("peer query failed",
					slog.String("peer", peer.ID),
					slog.String("addr", peer.Addr),
					slog.String("error", err.Error()))
				return nil
			}
			replies[i] = reply
			return nil
		})
	}
	// Goroutines report failures through nil slots; Wait is only the
	// join barrier and never returns an error here.
	_ = g.Wait()

	joined := make([]*T, 0, len(peers))
	failures := 0
	for _, reply := range replies {
		if reply == nil {
			failures++
			continue
		}
		joined = append(joined, reply)
	}
	return joined, failures
}
