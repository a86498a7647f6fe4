package repository

import (
	"context"

	"github.com/fastygo/jsonresponse/domain"
)

type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
}

type BookRepository interface {
	ListBooks(ctx context.Context) ([]domain.Book, error)
}
