package main

import (
	"github.com/spf13/cobra"

	"github.com/taoshops/shopdex/internal/server"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the shopdex server",
	Long: `Start the shopdex HTTP server.

The server provides:
  - /health              - Server health check
  - /api/shops           - Parsed shop records (county= and q= filters)
  - /api/shops/{id}      - One record by id
  - /api/shops/refresh   - Force a re-parse, bypassing the cache

Examples:
  shopdex serve                    # Start on default port 8080
  shopdex serve --port 3000        # Start on custom port
  shopdex serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := buildServices()
		if err != nil {
			return err
		}

		// Pick up pdf_path and cache changes without a restart.
		svcs.ConfigMgr.WatchConfig()

		cfg := svcs.ConfigMgr.Get()
		host := serveHost
		if host == "" {
			host = cfg.Server.Host
		}
		port := servePort
		if port == "" {
			port = cfg.Server.Port
		}

		srv := server.New(server.Config{
			Host:     host,
			Port:     port,
			Services: svcs,
			Logger:   svcs.Logger,
		})

		// Start server (blocks until shutdown)
		return srv.Start(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default from config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (default from config)")

	rootCmd.AddCommand(serveCmd)
}
