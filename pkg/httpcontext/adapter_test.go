package httpcontext

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/jsonresponse/pkg/logger"
)

func TestAttachKeepsInboundRequestID(t *testing.T) {
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.Set(HeaderRequestID, "req-42")
	ctx.Request.Header.SetUserAgent("test-agent")

	stdCtx, cancel := NewAdapter(time.Second).Attach(&ctx)
	defer cancel()

	assert.Equal(t, "req-42", appLogger.RequestIDFromContext(stdCtx))
	assert.Equal(t, "req-42", string(ctx.Response.Header.Peek(HeaderRequestID)))
	assert.Equal(t, "test-agent", stdCtx.Value(KeyUserAgent))

	deadline, ok := stdCtx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 100*time.Millisecond)
}

func TestAttachGeneratesRequestID(t *testing.T) {
	var ctx fasthttp.RequestCtx

	stdCtx, cancel := NewAdapter(0).Attach(&ctx)
	defer cancel()

	reqID := appLogger.RequestIDFromContext(stdCtx)
	_, err := uuid.Parse(reqID)
	assert.NoError(t, err)
	assert.Equal(t, reqID, string(ctx.Response.Header.Peek(HeaderRequestID)))
}

func TestAttachNilRequest(t *testing.T) {
	stdCtx, cancel := NewAdapter(time.Second).Attach(nil)
	defer cancel()

	assert.NotEmpty(t, appLogger.RequestIDFromContext(stdCtx))
}
