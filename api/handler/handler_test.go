package handler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/jsonresponse/api/transport"
	"github.com/fastygo/jsonresponse/domain"
	"github.com/fastygo/jsonresponse/internal/infrastructure/monitor"
	"github.com/fastygo/jsonresponse/pkg/httpcontext"
)

type fakeStore struct {
	users   []domain.User
	books   []domain.Book
	err     error
	created *domain.User
}

func (f *fakeStore) ListUsers(ctx context.Context) ([]domain.User, error) { return f.users, f.err }

func (f *fakeStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeStore) CreateUser(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	user.ID = "new-id"
	f.created = user
	return nil
}

func (f *fakeStore) ListBooks(ctx context.Context) ([]domain.Book, error) { return f.books, f.err }

type okProbe struct{}

func (okProbe) Ping() error              { return nil }
func (okProbe) Size(string) (int, error) { return 1, nil }

func newCatalog(store *fakeStore) *CatalogHandler {
	return NewCatalogHandler(store, httpcontext.NewAdapter(time.Second), nil)
}

func TestListUsers(t *testing.T) {
	h := newCatalog(&fakeStore{users: []domain.User{{ID: "1", Name: "Alice"}, {ID: "2", Name: "John"}}})

	var ctx fasthttp.RequestCtx
	h.ListUsers(&ctx)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, transport.ContentTypeJSON, string(ctx.Response.Header.ContentType()))
	assert.Equal(t, len(ctx.Response.Body()), ctx.Response.Header.ContentLength())
	assert.NotEmpty(t, ctx.Response.Header.Peek(httpcontext.HeaderRequestID))

	var env transport.SuccessEnvelope[[]domain.User]
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &env))
	assert.Equal(t, "success", env.Status)
	require.Len(t, env.Data, 2)
	assert.Equal(t, "John", env.Data[1].Name)
}

func TestGetUser(t *testing.T) {
	h := newCatalog(&fakeStore{users: []domain.User{{ID: "1", Name: "Alice"}}})

	var ctx fasthttp.RequestCtx
	ctx.SetUserValue("id", "missing")
	h.GetUser(&ctx)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.Equal(t, `{"status":"failed","code":404,"message":"Not Found: user not found"}`, string(ctx.Response.Body()))

	var noID fasthttp.RequestCtx
	h.GetUser(&noID)
	assert.Equal(t, `{"status":"failed","code":400,"message":"Bad Request: missing user id"}`, string(noID.Response.Body()))
}

func TestCreateUser(t *testing.T) {
	store := &fakeStore{}
	h := newCatalog(store)

	var ctx fasthttp.RequestCtx
	ctx.Request.SetBodyString(`{"name":"Alice","email":"alice@example.com"}`)
	h.CreateUser(&ctx)

	assert.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode())
	require.NotNil(t, store.created)
	assert.Equal(t, "Alice", store.created.Name)

	var bad fasthttp.RequestCtx
	bad.Request.SetBodyString(`{`)
	h.CreateUser(&bad)
	assert.Equal(t, `{"status":"failed","code":400,"message":"Bad Request: invalid payload"}`, string(bad.Response.Body()))

	var invalid fasthttp.RequestCtx
	invalid.Request.SetBodyString(`{"name":""}`)
	h.CreateUser(&invalid)
	assert.Equal(t, `{"status":"failed","code":400,"message":"Bad Request: name is required"}`, string(invalid.Response.Body()))
}

func TestListBooksDatabaseFailure(t *testing.T) {
	cause := errors.New("bucket not found")
	h := newCatalog(&fakeStore{err: domain.WrapError(domain.ErrCodeInternal, "Couldn't fetch book list from database", cause)})

	var ctx fasthttp.RequestCtx
	h.ListBooks(&ctx)

	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t,
		`{"status":"failed","code":500,"message":"Internal Server Error: Couldn't fetch book list from database"}`,
		string(ctx.Response.Body()))
}

func TestUnclassifiedErrorUsesReasonOnly(t *testing.T) {
	h := newCatalog(&fakeStore{err: errors.New("disk on fire")})

	var ctx fasthttp.RequestCtx
	h.ListUsers(&ctx)

	assert.Equal(t, `{"status":"failed","code":500,"message":"Internal Server Error"}`, string(ctx.Response.Body()))
}

func TestSerializationFailureFallsBackToPlainText(t *testing.T) {
	h := newBaseHandler(nil, nil)

	var ctx fasthttp.RequestCtx
	h.respondSuccess(&ctx, transport.StatusOK, map[string]float64{"ratio": math.Inf(1)})

	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, fallbackContentType, string(ctx.Response.Header.ContentType()))
	assert.Equal(t, fallbackBody, string(ctx.Response.Body()))
}

func TestMapError(t *testing.T) {
	assert.Equal(t, transport.StatusUnauthorized, mapError(domain.ErrUnauthorized))
	assert.Equal(t, transport.StatusBadRequest, mapError(domain.ErrInvalidPayload))
	assert.Equal(t, transport.StatusNotFound, mapError(domain.ErrUserNotFound))
	assert.Equal(t, transport.StatusServiceUnavailable, mapError(domain.NewError(domain.ErrCodeUnavailable, "later")))
	assert.Equal(t, transport.StatusInternalServerError, mapError(errors.New("x")))
}

func TestHealth(t *testing.T) {
	var down fasthttp.RequestCtx
	NewHealthHandler(nil, nil, nil).Check(&down)
	assert.Equal(t, fasthttp.StatusServiceUnavailable, down.Response.StatusCode())
	assert.Equal(t,
		`{"status":"failed","code":503,"message":"Service Unavailable: catalog store unavailable"}`,
		string(down.Response.Body()))

	mon := monitor.New(okProbe{}, "users", "books", time.Minute, nil)
	mon.Start()
	defer mon.Stop()

	var up fasthttp.RequestCtx
	NewHealthHandler(mon, nil, nil).Check(&up)
	assert.Equal(t, fasthttp.StatusOK, up.Response.StatusCode())

	var env transport.SuccessEnvelope[monitor.Status]
	require.NoError(t, json.Unmarshal(up.Response.Body(), &env))
	assert.True(t, env.Data.Catalog)
	assert.Equal(t, 1, env.Data.Books)
}

func TestFallbackHandler(t *testing.T) {
	h := NewFallbackHandler(nil)

	var notFound fasthttp.RequestCtx
	h.NotFound(&notFound)
	assert.Equal(t, `{"status":"failed","code":404,"message":"Not Found"}`, string(notFound.Response.Body()))

	var panicked fasthttp.RequestCtx
	h.Panic(&panicked, "boom")
	assert.Equal(t, fasthttp.StatusInternalServerError, panicked.Response.StatusCode())
	assert.Equal(t, fallbackBody, string(panicked.Response.Body()))
}
