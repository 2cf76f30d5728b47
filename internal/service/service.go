package service

import (
	"context"
	"encoding/json"
	"time"

	"poke_explorer/internal/models"
	"poke_explorer/internal/pokeapi"
	"poke_explorer/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, password string) (models.AuthResult, error)
	Login(ctx context.Context, username, password string) (models.AuthResult, error)
	ParseToken(accessToken string) (string, error)
	ResolveUser(ctx context.Context, userID string) (*models.User, error)
}

// Pokemon exposes the read-only proxy operations.
type Pokemon interface {
	List(ctx context.Context, limit, offset string) (json.RawMessage, error)
	Detail(ctx context.Context, nameOrID string) (json.RawMessage, error)
	Search(ctx context.Context, userID, term string) (json.RawMessage, error)
}

// History exposes the per-user search log.
type History interface {
	Record(ctx context.Context, userID, term string) (models.SearchHistoryEntry, error)
	RecentFor(ctx context.Context, userID string, max int) ([]models.SearchHistoryEntry, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Pokemon
	History
}

// Options carries the settings the services need from configuration.
type Options struct {
	SigningKey []byte
	TokenTTL   time.Duration
}

// NewService wires the repository layer and the upstream client into concrete services.
func NewService(repos *repository.Repository, upstream pokeapi.Fetcher, opts Options) *Service {
	history := NewHistoryService(repos.History)
	return &Service{
		Authorization: NewAuthService(repos.Users, opts.SigningKey, opts.TokenTTL),
		Pokemon:       NewPokemonService(upstream, history),
		History:       history,
	}
}
