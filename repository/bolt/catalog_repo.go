package bolt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	bbolt "go.etcd.io/bbolt"

	"github.com/fastygo/jsonresponse/domain"
	"github.com/fastygo/jsonresponse/internal/infrastructure/boltdb"
)

const (
	UsersBucket = "users"
	BooksBucket = "books"
)

// CatalogRepository stores users and books in BoltDB buckets keyed by ID.
type CatalogRepository struct {
	store *boltdb.Store
}

func NewCatalogRepository(store *boltdb.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	err := r.view(ctx, UsersBucket, func(b *bbolt.Bucket) error {
		return b.ForEach(func(_, v []byte) error {
			var u domain.User
			if err := json.Unmarshal(v, &u); err != nil {
				return err
			}
			users = append(users, u)
			return nil
		})
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "Couldn't fetch user list from database", err)
	}
	return users, nil
}

func (r *CatalogRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var user *domain.User
	err := r.view(ctx, UsersBucket, func(b *bbolt.Bucket) error {
		raw := b.Get([]byte(id))
		if raw == nil {
			return nil
		}
		user = &domain.User{}
		return json.Unmarshal(raw, user)
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "Couldn't fetch user from database", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// CreateUser assigns a time-ordered ID and creation timestamp before storing the user.
func (r *CatalogRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return domain.WrapError(domain.ErrCodeUnavailable, "request cancelled", err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "Couldn't generate user id", err)
	}
	user.ID = id.String()
	user.CreatedAt = time.Now().UTC()

	payload, err := json.Marshal(user)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "Couldn't encode user", err)
	}

	err = r.update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(UsersBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(user.ID), payload)
	})
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "Couldn't store user in database", err)
	}
	return nil
}

func (r *CatalogRepository) ListBooks(ctx context.Context) ([]domain.Book, error) {
	books := []domain.Book{}
	err := r.view(ctx, BooksBucket, func(b *bbolt.Bucket) error {
		return b.ForEach(func(_, v []byte) error {
			var book domain.Book
			if err := json.Unmarshal(v, &book); err != nil {
				return err
			}
			books = append(books, book)
			return nil
		})
	})
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInternal, "Couldn't fetch book list from database", err)
	}
	return books, nil
}

// PutBooks stores books under their IDs, creating the bucket when needed.
func (r *CatalogRepository) PutBooks(books ...domain.Book) error {
	return r.update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BooksBucket))
		if err != nil {
			return err
		}
		for _, book := range books {
			if book.ID == "" {
				book.ID = uuid.NewString()
			}
			payload, err := json.Marshal(book)
			if err != nil {
				return err
			}
			if err := b.Put([]byte(book.ID), payload); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CatalogRepository) view(ctx context.Context, bucket string, fn func(b *bbolt.Bucket) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	db := r.store.DB()
	if db == nil {
		return bbolt.ErrDatabaseNotOpen
	}
	return db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return bbolt.ErrBucketNotFound
		}
		return fn(b)
	})
}

func (r *CatalogRepository) update(fn func(tx *bbolt.Tx) error) error {
	db := r.store.DB()
	if db == nil {
		return bbolt.ErrDatabaseNotOpen
	}
	return db.Update(fn)
}
