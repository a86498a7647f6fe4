package handler

import (
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/jsonresponse/api/transport"
	"github.com/fastygo/jsonresponse/internal/infrastructure/monitor"
	"github.com/fastygo/jsonresponse/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	_, cancel := h.requestContext(ctx)
	defer cancel()

	if h.monitor == nil || !h.monitor.IsOnline() {
		h.respondFailure(ctx, transport.StatusServiceUnavailable, "catalog store unavailable")
		return
	}
	h.respondSuccess(ctx, transport.StatusOK, h.monitor.GetStatus())
}
