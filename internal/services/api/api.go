// Package api provides the HTTP API for the application
package api

import (
	"strings"

	"yardsale/internal/platform/config"
	"yardsale/internal/platform/logger"
	"yardsale/internal/platform/net/middleware"
	phttp "yardsale/internal/platform/net/http"
	"yardsale/internal/platform/store"

	"yardsale/internal/modkit"
	"yardsale/internal/modkit/httpkit"
	"yardsale/internal/modkit/module"
	"yardsale/internal/modkit/swaggerkit"

	favoritesmod "yardsale/internal/services/api/favorites/module"
	listingsmod "yardsale/internal/services/api/listings/module"
	metamod "yardsale/internal/services/api/meta/module"
	salesmod "yardsale/internal/services/api/sales/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// Auth resolves bearer tokens to user ids. When nil the API trusts the
	// opaque token as the caller identity, which assumes an upstream gateway
	// has already verified it.
	Auth middleware.AuthPort
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	auth := opt.Auth
	if auth == nil {
		auth = httpkit.NewPortFunc(func(token string) (string, error) {
			return strings.TrimSpace(token), nil
		})
	}

	// shared deps for modules
	deps := modkit.Deps{
		Cfg:  opt.Config,
		PG:   opt.Store.PG,
		Auth: auth,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	mods := []module.Module{
		metamod.New(deps),
		salesmod.New(deps),
		listingsmod.New(deps),
		favoritesmod.New(deps),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
