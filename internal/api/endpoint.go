// Package api holds the endpoint registry shared by the HTTP server and the
// CLI, plus the client and output helpers both sides use.
package api

import (
	"net/http"

	"github.com/spf13/cobra"
)

// Endpoint defines both an HTTP route and its corresponding CLI command.
// This provides a single source of truth for API operations.
type Endpoint interface {
	// Route returns the HTTP method, path, and handler for this endpoint.
	Route() (method, path string, handler http.HandlerFunc)

	// Command returns a Cobra command that calls this endpoint via HTTP.
	// getServerURL is called at runtime to get the server URL.
	// A nil command means the endpoint has no CLI form.
	Command(getServerURL func() string) *cobra.Command
}
