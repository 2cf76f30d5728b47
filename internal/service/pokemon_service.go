package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"poke_explorer/internal/models"
	"poke_explorer/internal/pokeapi"
)

// Pagination defaults applied when the caller leaves limit/offset empty.
const (
	DefaultListLimit  = "20"
	DefaultListOffset = "0"
)

// historyRecorder is the slice of the History service the proxy needs.
type historyRecorder interface {
	Record(ctx context.Context, userID, term string) (models.SearchHistoryEntry, error)
}

// PokemonService proxies the PokéAPI and logs searches.
type PokemonService struct {
	upstream pokeapi.Fetcher
	history  historyRecorder
}

func NewPokemonService(upstream pokeapi.Fetcher, history historyRecorder) *PokemonService {
	return &PokemonService{upstream: upstream, history: history}
}

// List relays the upstream list page. limit/offset are forwarded verbatim.
func (s *PokemonService) List(ctx context.Context, limit, offset string) (json.RawMessage, error) {
	if limit == "" {
		limit = DefaultListLimit
	}
	if offset == "" {
		offset = DefaultListOffset
	}
	body, err := s.upstream.ListPokemon(ctx, limit, offset)
	if err != nil {
		return nil, upstreamErr(msgListFailed, err)
	}
	return body, nil
}

// Detail looks a Pokémon up by name or ID, case-insensitively.
func (s *PokemonService) Detail(ctx context.Context, nameOrID string) (json.RawMessage, error) {
	key := normalizeTerm(nameOrID)
	if key == "" {
		return nil, notFoundErr(msgPokemonNotFound)
	}
	body, err := s.upstream.GetPokemon(ctx, key)
	if err != nil {
		if errors.Is(err, pokeapi.ErrNotFound) {
			return nil, notFoundErr(msgPokemonNotFound)
		}
		return nil, upstreamErr(msgDetailFailed, err)
	}
	return body, nil
}

// Search records term in userID's history and then performs Detail.
// The entry is written before the lookup, so misses are logged too.
func (s *PokemonService) Search(ctx context.Context, userID, term string) (json.RawMessage, error) {
	if strings.TrimSpace(term) == "" {
		return nil, validationErr(msgTermRequired)
	}
	if _, err := s.history.Record(ctx, userID, term); err != nil {
		return nil, err
	}
	body, err := s.Detail(ctx, term)
	if err != nil {
		var se *Error
		if errors.As(err, &se) && se.Kind == ErrUpstream {
			return nil, upstreamErr(msgSearchFailed, se.Err)
		}
		return nil, err
	}
	return body, nil
}
