package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/shashiranjanraj/catalog/pkg/ctx"
)

// Pinger reports whether the store is reachable.
type Pinger func(ctx context.Context) error

type HealthController struct {
	ping Pinger
}

func NewHealthController(ping Pinger) *HealthController {
	return &HealthController{ping: ping}
}

// Check handles GET /healthz.
func (hc *HealthController) Check(c *ctx.Context) {
	pctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	if err := hc.ping(pctx); err != nil {
		c.Logger().Warn("health check failed", "error", err)
		c.Error(http.StatusServiceUnavailable, "database unavailable")
		return
	}
	c.Success("ok")
}
