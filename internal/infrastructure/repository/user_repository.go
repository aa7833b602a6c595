// Package repository implements the persistence ports on top of the generic
// collection store. Each repository owns a mutex that serializes its
// load-mutate-save cycles, so concurrent writers cannot drop each other's
// records.
package repository

import (
	"context"
	"sync"

	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/infrastructure/store"
)

type UserRepository struct {
	mu    sync.Mutex
	store store.Store[domain.User]
}

func NewUserRepository(s store.Store[domain.User]) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}

	users = append(users, *user)
	if err := r.store.Save(ctx, users); err != nil {
		return nil, err
	}

	created := *user
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			u := users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
