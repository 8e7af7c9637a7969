/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/stateview/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the state aggregation API server",
		Description: `Run the stateview API server in the foreground. The server exposes
the entity listings and the cluster summary over HTTP, plus health,
readiness, and Prometheus metrics endpoints. It shuts down gracefully
on SIGINT or SIGTERM.

This is the same server the stateviewd binary runs; the subcommand
exists for local use and containers that ship only the CLI.

# Examples

Serve with defaults (coordination service on localhost):
  stateview serve

Serve from a config file:
  stateview serve --config /etc/stateview/config.yaml`,
		Flags: []cli.Flag{
			configFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return api.ServeWithConfig(cmd.String("config"))
		},
	}
}
