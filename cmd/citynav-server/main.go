// Command citynav-server serves the city graph over HTTP.
//
// The graph is loaded from CSV files at startup. With watch_data enabled the
// data files are watched and the in-memory graph is rebuilt on change.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/citynav/config"
	"github.com/katalvlaran/citynav/core"
	"github.com/katalvlaran/citynav/fileio"
	"github.com/katalvlaran/citynav/oplog"
	"github.com/katalvlaran/citynav/server"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config (empty = defaults)")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	g := core.NewGraph(core.DefaultCapacity)
	cities, roads, err := fileio.Load(g, cfg.CitiesFile, cfg.RoadsFile)
	if err != nil {
		slog.Warn("could not load graph, starting empty", "err", err)
	} else {
		slog.Info("graph loaded", "cities", cities, "roads", roads)
	}

	ops := oplog.New(cfg.LogFile)
	ops.Operation("Server started")
	handler := server.New(g, ops)

	if cfg.WatchData {
		watcher := fileio.NewWatcher(cfg.CitiesFile, cfg.RoadsFile)
		watcher.OnChange(func(path string) {
			fresh := core.NewGraph(core.DefaultCapacity)
			cities, roads, err := fileio.Load(fresh, cfg.CitiesFile, cfg.RoadsFile)
			if err != nil {
				slog.Warn("data reload skipped", "path", path, "err", err)
				return
			}
			handler.Swap(fresh)
			slog.Info("graph reloaded", "trigger", path, "cities", cities, "roads", roads)
		})
		stopWatch, err := watcher.Watch()
		if err != nil {
			slog.Warn("data watcher unavailable (hot-reload disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	}

	srv := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	ops.Operation("Server stopped")
}
