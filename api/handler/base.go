package handler

import (
	"context"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/jsonresponse/api/transport"
	"github.com/fastygo/jsonresponse/domain"
	"github.com/fastygo/jsonresponse/pkg/httpcontext"
)

const (
	fallbackContentType = "text/plain; charset=utf-8"
	fallbackBody        = "Internal Server Error"
)

type baseHandler struct {
	adapter *httpcontext.Adapter
	logger  *zap.Logger
}

func newBaseHandler(adapter *httpcontext.Adapter, logger *zap.Logger) baseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return baseHandler{adapter: adapter, logger: logger}
}

func (h baseHandler) requestContext(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	if h.adapter != nil {
		return h.adapter.Attach(ctx)
	}
	return context.WithCancel(context.Background())
}

// log returns the handler logger tagged with the request ID echoed by the adapter.
func (h baseHandler) log(ctx *fasthttp.RequestCtx) *zap.Logger {
	if reqID := ctx.Response.Header.Peek(httpcontext.HeaderRequestID); len(reqID) > 0 {
		return h.logger.With(zap.ByteString("request_id", reqID))
	}
	return h.logger
}

// respond writes resp, or a plain-text 500 when the envelope could not be built.
func (h baseHandler) respond(ctx *fasthttp.RequestCtx, resp *transport.Response[[]byte], err error) {
	if err != nil {
		h.log(ctx).Error("failed to build json response",
			zap.ByteString("path", ctx.Path()),
			zap.Error(err),
		)
		writeFallback(ctx)
		return
	}
	resp.WriteFastHTTP(&ctx.Response)
}

func (h baseHandler) respondSuccess(ctx *fasthttp.RequestCtx, code transport.StatusCode, data any) {
	resp, err := transport.SuccessWithCode[[]byte](code, data)
	h.respond(ctx, resp, err)
}

func (h baseHandler) respondFailure(ctx *fasthttp.RequestCtx, code transport.StatusCode, message string) {
	var (
		resp *transport.Response[[]byte]
		err  error
	)
	if message == "" {
		resp, err = transport.Failure[[]byte](code)
	} else {
		resp, err = transport.FailureWithMessage[[]byte](code, message)
	}
	h.respond(ctx, resp, err)
}

// respondError maps a domain error onto a failure envelope. Only the
// domain message reaches the client; the wrapped cause is logged.
func (h baseHandler) respondError(ctx *fasthttp.RequestCtx, err error) {
	code := mapError(err)
	if code >= transport.StatusInternalServerError {
		h.log(ctx).Error("request failed", zap.ByteString("path", ctx.Path()), zap.Error(err))
	}
	h.respondFailure(ctx, code, domain.PublicMessage(err))
}

func mapError(err error) transport.StatusCode {
	switch {
	case domain.IsDomainError(err, domain.ErrCodeUnauthorized):
		return transport.StatusUnauthorized
	case domain.IsDomainError(err, domain.ErrCodeInvalid):
		return transport.StatusBadRequest
	case domain.IsDomainError(err, domain.ErrCodeNotFound):
		return transport.StatusNotFound
	case domain.IsDomainError(err, domain.ErrCodeUnavailable):
		return transport.StatusServiceUnavailable
	default:
		return transport.StatusInternalServerError
	}
}

func writeFallback(ctx *fasthttp.RequestCtx) {
	ctx.Response.ResetBody()
	ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	ctx.SetContentType(fallbackContentType)
	ctx.SetBodyString(fallbackBody)
}
