package app

import (
	"net/http"

	"github.com/shashiranjanraj/catalog/config"
	"github.com/shashiranjanraj/catalog/pkg/metrics"
	"github.com/shashiranjanraj/catalog/pkg/middleware"
	"github.com/shashiranjanraj/catalog/pkg/reqid"
	"github.com/shashiranjanraj/catalog/pkg/response"
	"github.com/shashiranjanraj/catalog/pkg/router"
)

// buildRouter installs the global middleware, /metrics and every route
// callback.
//
// Middleware, outermost first:
//  1. metrics    sees the final status, including recovered panics
//  2. request ID
//  3. logger     tags the request logger with the ID
//  4. recovery   turns panics into the 500 body
//  5. CORS
func (a *Application) buildRouter() *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(config.CORSOrigins())))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Handle("/metrics", "metrics", metrics.Handler())

	for _, fn := range a.routesFns {
		fn(r, a.db)
	}
	return r
}
