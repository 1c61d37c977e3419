package main

import (
	"log/slog"
	"os"

	"github.com/taoshops/shopdex/internal/cache"
	"github.com/taoshops/shopdex/internal/config"
	"github.com/taoshops/shopdex/internal/home"
	"github.com/taoshops/shopdex/internal/pipeline"
	"github.com/taoshops/shopdex/internal/svcctx"
)

// buildServices wires the home directory, config, cache, and pipeline for
// commands that run the loader locally.
func buildServices() (*svcctx.Services, error) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	h, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}
	if err := h.EnsureExists(); err != nil {
		return nil, err
	}

	path := cfgFile
	if path == "" && h.ConfigExists() {
		path = h.ConfigPath()
	}
	cfgMgr, err := config.NewManager(path)
	if err != nil {
		return nil, err
	}

	var store cache.Store
	if cfgMgr.Get().Cache.Enabled {
		store = cache.NewFileStore(h.CachePath(), cfgMgr.TTL())
	}

	return &svcctx.Services{
		Loader:    pipeline.New(store),
		Cache:     store,
		ConfigMgr: cfgMgr,
		Home:      h,
		Logger:    logger,
	}, nil
}
