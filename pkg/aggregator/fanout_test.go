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
	"errors"
	"testing"
	"time"

	"github.com/NVIDIA/stateview/pkg/source"
)

type countReply struct {
	peer string
}

func TestFanOut(t *testing.T) {
	peers := []source.Peer{
		{ID: "node-1", Addr: "http://10.0.0.1:8266"},
		{ID: "node-2", Addr: "http://10.0.0.2:8266"},
		{ID: "node-3", Addr: "http://10.0.0.3:8266"},
	}

	t.Run("all peers reply in peer order", func(t *testing.T) {
		replies, failures := FanOut(context.Background(), peers, 0,
			func(_ context.Context, p source.Peer) (*countReply, error) {
				return &countReply{peer: p.ID}, nil
			})
		if failures != 0 {
			t.Errorf("FanOut() failures = %d, want 0", failures)
		}
		if len(replies) != 3 {
			t.Fatalf("FanOut() returned %d replies, want 3", len(replies))
		}
		for i, want := range []string{"node-1", "node-2", "node-3"} {
			if replies[i].peer != want {
				t.Errorf("FanOut() reply[%d] from %q, want %q", i, replies[i].peer, want)
			}
		}
	})

	t.Run("erroring peer is counted not returned", func(t *testing.T) {
		replies, failures := FanOut(context.Background(), peers, 0,
			func(_ context.Context, p source.Peer) (*countReply, error) {
				if p.ID == "node-2" {
					return nil, errors.New("connection refused")
				}
				return &countReply{peer: p.ID}, nil
			})
		if failures != 1 {
			t.Errorf("FanOut() failures = %d, want 1", failures)
		}
		if len(replies) != 2 {
			t.Fatalf("FanOut() returned %d replies, want 2", len(replies))
		}
		if replies[0].peer != "node-1" || replies[1].peer != "node-3" {
			t.Errorf("FanOut() replies from %q,%q, want node-1,node-3", replies[0].peer, replies[1].peer)
		}
	})

	t.Run("nil reply counts as failure", func(t *testing.T) {
		_, failures := FanOut(context.Background(), peers, 0,
			func(_ context.Context, p source.Peer) (*countReply, error) {
				return nil, nil
			})
		if failures != 3 {
			t.Errorf("FanOut() failures = %d, want 3", failures)
		}
	})

	t.Run("no peers", func(t *testing.T) {
		replies, failures := FanOut(context.Background(), nil, 0,
			func(_ context.Context, p source.Peer) (*countReply, error) {
				t.Error("query called with no peers")
				return nil, nil
			})
		if failures != 0 || len(replies) != 0 {
			t.Errorf("FanOut() = %d replies, %d failures, want 0,0", len(replies), failures)
		}
	})
}

func TestFanOutTimeout(t *testing.T) {
	peers := []source.Peer{
		{ID: "node-1"},
		{ID: "node-2"},
	}

	// node-2 hangs until its per peer deadline fires; node-1 must be
	// unaffected.
	start := time.Now()
	replies, failures := FanOut(context.Background(), peers, 50*time.Millisecond,
		func(ctx context.Context, p source.Peer) (*countReply, error) {
			if p.ID == "node-2" {
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return &countReply{peer: p.ID}, nil
		})

	if failures != 1 {
		t.Errorf("FanOut() failures = %d, want 1", failures)
	}
	if len(replies) != 1 || replies[0].peer != "node-1" {
		t.Fatalf("FanOut() replies = %v, want one reply from node-1", replies)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("FanOut() took %v, deadline did not fire", elapsed)
	}
}
