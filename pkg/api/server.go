package api

import (
	"context"
	"log/slog"
	"os"

	"github.com/NVIDIA/stateview/pkg/config"
	"github.com/NVIDIA/stateview/pkg/logging"
	"github.com/NVIDIA/stateview/pkg/server"
	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/time/rate"
)

const (
	name           = "stateviewd"
	versionDefault = "dev"

	// ConfigEnvVar names the config file when no path is passed in.
	ConfigEnvVar = "STATEVIEW_CONFIG"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/stateview/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server using the config file named by
// STATEVIEW_CONFIG (or defaults when unset) and blocks until shutdown.
func Serve() error {
	return ServeWithConfig(os.Getenv(ConfigEnvVar))
}

// ServeWithConfig starts the API server from the given config path and
// blocks until shutdown. It configures logging, wires the query sources
// into the aggregation manager, registers the routes, and handles
// graceful shutdown. An empty path uses defaults plus environment
// overrides.
func ServeWithConfig(configPath string) error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	mgr, err := cfg.BuildManager()
	if err != nil {
		slog.Error("failed to wire query sources", "error", err)
		return err
	}

	slog.Info("query sources wired",
		"coordination", cfg.Coordination.Endpoint,
		"discovery", cfg.Discovery.Mode,
		"queryTimeout", cfg.Query.Timeout.Std().String(),
		"queryLimit", cfg.Query.Limit,
	)

	h := newHandlers(mgr, cfg.Query.Timeout.Std(), cfg.Query.Limit)

	srvCfg := server.NewConfig()
	srvCfg.Name = name
	srvCfg.Version = version
	srvCfg.Address = cfg.Server.Address
	srvCfg.Port = cfg.Server.Port
	srvCfg.RateLimit = rate.Limit(cfg.Server.RateLimit)
	srvCfg.RateLimitBurst = cfg.Server.RateLimitBurst

	s := server.New(
		server.WithConfig(srvCfg),
		server.WithHandler(h.routes()),
	)

	notifyReady()

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// notifyReady tells systemd the service is up. A no-op when the process
// is not running under a systemd unit with Type=notify.
func notifyReady() {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		slog.Warn("systemd readiness notification failed", "error", err)
		return
	}
	if sent {
		slog.Debug("notified systemd of readiness")
	}
}
