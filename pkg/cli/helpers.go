/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/stateview/pkg/aggregator"
	"github.com/NVIDIA/stateview/pkg/config"
	"github.com/NVIDIA/stateview/pkg/header"
	"github.com/NVIDIA/stateview/pkg/logging"
	"github.com/NVIDIA/stateview/pkg/serializer"
	"github.com/NVIDIA/stateview/pkg/server"
	"github.com/NVIDIA/stateview/pkg/state"
)

// Flags shared across commands. Env-sourced values read the same
// STATEVIEW_* variables the daemon honors, so a shell configured for
// one works for the other.
var (
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "Log level (debug, info, warn, error)",
		Value:   "info",
		Sources: cli.EnvVars(logging.LevelEnvVar),
	}

	configFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to a stateview config file (YAML)",
		Sources: cli.EnvVars("STATEVIEW_CONFIG"),
	}

	coordFlag = &cli.StringFlag{
		Name:  "coord",
		Usage: "Coordination service endpoint (e.g., http://head-node:8265)",
	}

	filterFlag = &cli.StringFlag{
		Name:  "filter",
		Usage: "Exact match clauses (format: column=value, comma separated)",
	}

	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Maximum number of records to return",
	}

	timeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Usage: "Per source query timeout (e.g., 30s, 2m)",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output path (defaults to stdout, supports cm://namespace/name)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage: fmt.Sprintf("Output format (supported values: %s)",
			strings.Join(serializer.SupportedFormats(), ", ")),
		Value: string(serializer.FormatJSON),
	}
)

// initLogging configures the default structured logger from the
// log-level flag before a command produces any output.
func initLogging(cmd *cli.Command) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
}

// parseOutputFormat reads and validates the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, supported values: %s",
			cmd.String("format"), strings.Join(serializer.SupportedFormats(), ", "))
	}
	return f, nil
}

// buildManagerFromCmd loads configuration, applies command line
// overrides, and wires the query sources into an aggregation manager.
func buildManagerFromCmd(cmd *cli.Command) (*aggregator.Manager, *config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if coord := cmd.String("coord"); coord != "" {
		cfg.Coordination.Endpoint = coord
	}

	mgr, err := cfg.BuildManager()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to wire query sources: %w", err)
	}
	return mgr, cfg, nil
}

// listOptionsFromCmd builds query options with explicitly set flags
// overriding the configured values.
func listOptionsFromCmd(cmd *cli.Command, cfg *config.Config) state.ListOptions {
	opts := state.ListOptions{
		Filter:  cmd.String("filter"),
		Limit:   cfg.Query.Limit,
		Timeout: cfg.Query.Timeout.Std(),
	}
	if cmd.IsSet("limit") {
		opts.Limit = cmd.Int("limit")
	}
	if cmd.IsSet("timeout") {
		opts.Timeout = cmd.Duration("timeout")
	}
	return opts
}

// StateReport is the CLI output envelope: a kubernetes style header
// followed by the query result.
type StateReport struct {
	header.Header `yaml:",inline"`

	Result any `json:"result" yaml:"result"`
}

func newStateReport(kind header.Kind, result any) *StateReport {
	r := &StateReport{Result: result}
	r.Init(kind, server.DefaultAPIVersion, version)
	return r
}

// writeReport serializes the result, wrapped in a report header, to the
// destination selected by the output and format flags.
func writeReport(ctx context.Context, cmd *cli.Command, format serializer.Format, kind header.Kind, result any) error {
	ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if closer, ok := ser.(serializer.Closer); ok {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}
	}()

	return ser.Serialize(ctx, newStateReport(kind, result))
}
