package handlers

import (
	"github.com/fasthttp/router"
	xhttp "github.com/mkarimi/customer-ledger/pkg/http"
)

type HealthService interface {
	Get() error
}

type HealthHandler struct {
	healthService HealthService
}

func NewHealthHandler(healthService HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

func RegisterHealthRoutes(r *router.Router, h *HealthHandler) {
	r.GET("/healthz", h.GetHealth)
}

func (h *HealthHandler) GetHealth(ctx *xhttp.RequestCtx) {
	if err := h.healthService.Get(); err != nil {
		ctx.Error(xhttp.StatusText(xhttp.StatusInternalServerError), xhttp.StatusInternalServerError)
		return
	}
	ctx.Response.SetBodyString("success")
}
