// Package endpoints defines the HTTP API surface and its CLI mirror.
package endpoints

import "github.com/taoshops/shopdex/internal/api"

// All returns every endpoint the server exposes.
func All() []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&ShopsListEndpoint{},
		&ShopGetEndpoint{},
		&ShopsRefreshEndpoint{},
	}
}
