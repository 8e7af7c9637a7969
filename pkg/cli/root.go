/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

const (
	name           = "stateview"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		Usage:                 "Query live cluster state",
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Description: fmt.Sprintf(`stateview - cluster state query CLI

Version: %s
Commit:  %s
Built:   %s

Answers "what is happening in the cluster right now" by reading the
coordination service tables and fanning out to the per node state
daemons and agents. Listings come back as JSON, YAML, or a flattened
table, on stdout or written to a file.`, version, commit, date),
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Commands: []*cli.Command{
			listCmd(),
			summaryCmd(),
			serveCmd(),
		},
	}
}

// Execute parses os.Args and runs the selected command. It is called by
// main.main() and owns signal handling for the whole process.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commandLister prints the visible command names, one per line, for
// shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	for _, sub := range cmd.Commands {
		if sub.Hidden {
			continue
		}
		fmt.Println(sub.Name)
	}
}
