package repository

import (
	"context"
	"database/sql"
	"errors"

	"poke_explorer/internal/models"
)

// ErrDuplicate is returned when a unique constraint (username) is violated.
var ErrDuplicate = errors.New("duplicate key")

// ErrInvalidLimit is returned by ListByUser for a non-positive limit.
var ErrInvalidLimit = errors.New("limit must be positive")

// Users persists accounts. Lookups return (nil, nil) when nothing matches.
type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	// GetByID never loads the password hash.
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// History is the append-only search log.
type History interface {
	Append(ctx context.Context, e models.SearchHistoryEntry) error
	// ListByUser returns at most limit entries, newest first. limit must be
	// positive, otherwise ErrInvalidLimit.
	ListByUser(ctx context.Context, userID string, limit int) ([]models.SearchHistoryEntry, error)
}

type Repository struct {
	Users   Users
	History History
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:   NewUserRepository(db),
		History: NewHistorySQLite(db),
	}
}
