package main

import (
	"github.com/taoshops/shopdex/internal/api"
	"github.com/taoshops/shopdex/internal/server/endpoints"
)

var apiServerURL string

func init() {
	registry := api.NewRegistry()
	for _, ep := range endpoints.All() {
		registry.Register(ep)
	}

	apiCmd := registry.BuildCommands(func() string { return apiServerURL })
	apiCmd.PersistentFlags().StringVar(
		&apiServerURL, "server", "http://127.0.0.1:8080", "shopdex server URL",
	)

	rootCmd.AddCommand(apiCmd)
}
