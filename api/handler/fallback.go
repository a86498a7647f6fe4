package handler

import (
	"fmt"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/jsonresponse/api/transport"
)

// FallbackHandler answers requests the router could not dispatch.
type FallbackHandler struct {
	baseHandler
}

func NewFallbackHandler(logger *zap.Logger) *FallbackHandler {
	return &FallbackHandler{baseHandler: newBaseHandler(nil, logger)}
}

func (h *FallbackHandler) NotFound(ctx *fasthttp.RequestCtx) {
	h.respondFailure(ctx, transport.StatusNotFound, "")
}

func (h *FallbackHandler) MethodNotAllowed(ctx *fasthttp.RequestCtx) {
	h.respondFailure(ctx, transport.StatusMethodNotAllowed, "")
}

// Panic recovers handler panics with a plain-text 500.
func (h *FallbackHandler) Panic(ctx *fasthttp.RequestCtx, rcv interface{}) {
	h.log(ctx).Error("handler panic",
		zap.ByteString("path", ctx.Path()),
		zap.String("panic", fmt.Sprint(rcv)),
	)
	writeFallback(ctx)
}
