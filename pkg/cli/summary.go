/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/stateview/pkg/defaults"
	"github.com/NVIDIA/stateview/pkg/header"
)

func summaryCmd() *cli.Command {
	return &cli.Command{
		Name:                  "summary",
		EnableShellCompletion: true,
		Usage:                 "Summarize cluster wide state",
		Description: `Produce a cluster wide summary: tasks grouped by function and state,
actors grouped by class and state per hosting node, live worker counts,
and per node resource utilization. The underlying listings run
concurrently and any source that fails to answer surfaces as a warning
on the summary rather than an error.

# Examples

Summary on stdout:
  stateview summary

Summary as a table, written to a file:
  stateview summary --format table --output summary.txt`,
		Flags: []cli.Flag{
			configFlag,
			coordFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			initLogging(cmd)

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			mgr, _, err := buildManagerFromCmd(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLIQueryTimeout)
			defer cancel()

			return writeReport(ctx, cmd, outFormat, header.KindClusterSummary, mgr.Summary(ctx))
		},
	}
}
