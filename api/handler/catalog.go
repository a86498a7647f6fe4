package handler

import (
	"encoding/json"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/jsonresponse/api/transport"
	"github.com/fastygo/jsonresponse/domain"
	"github.com/fastygo/jsonresponse/pkg/httpcontext"
	"github.com/fastygo/jsonresponse/repository"
)

// CatalogStore is what the catalog endpoints need from storage.
type CatalogStore interface {
	repository.UserRepository
	repository.BookRepository
}

type CatalogHandler struct {
	baseHandler
	store CatalogStore
}

func NewCatalogHandler(store CatalogStore, adapter *httpcontext.Adapter, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary List users
// @Tags users
// @Router /api/v1/users [get]
func (h *CatalogHandler) ListUsers(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	users, err := h.store.ListUsers(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, transport.StatusOK, users)
}

// @Summary Get user
// @Tags users
// @Router /api/v1/users/{id} [get]
func (h *CatalogHandler) GetUser(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondFailure(ctx, transport.StatusBadRequest, "missing user id")
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.store.GetUser(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, transport.StatusOK, user)
}

// @Summary Create user
// @Tags users
// @Router /api/v1/users [post]
func (h *CatalogHandler) CreateUser(ctx *fasthttp.RequestCtx) {
	var req transport.CreateUserRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user := &domain.User{Name: req.Name, Email: req.Email}
	if err := h.store.CreateUser(stdCtx, user); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, transport.StatusCreated, user)
}

// @Summary List books
// @Tags books
// @Router /api/v1/books [get]
func (h *CatalogHandler) ListBooks(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	books, err := h.store.ListBooks(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, transport.StatusOK, books)
}
