package service

import (
	"context"
	"strings"
	"time"

	"poke_explorer/internal/models"
	"poke_explorer/internal/repository"

	"github.com/google/uuid"
)

type HistoryService struct {
	historyRepo repository.History
	now         func() time.Time
}

func NewHistoryService(historyRepo repository.History) *HistoryService {
	return &HistoryService{historyRepo: historyRepo, now: time.Now}
}

// normalizeTerm trims and lowercases a search term.
func normalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}

// Record appends an entry for userID. It only fails when the store does.
func (s *HistoryService) Record(ctx context.Context, userID, term string) (models.SearchHistoryEntry, error) {
	e := models.SearchHistoryEntry{
		ID:        uuid.NewString(),
		Term:      normalizeTerm(term),
		UserID:    userID,
		Timestamp: s.now().UTC(),
	}
	if err := s.historyRepo.Append(ctx, e); err != nil {
		return models.SearchHistoryEntry{}, infraErr(msgSearchFailed, err)
	}
	return e, nil
}

// RecentFor returns up to max entries for userID, newest first. Never nil.
// max is clamped to 1..models.MaxHistoryEntries; non-positive means the cap.
func (s *HistoryService) RecentFor(ctx context.Context, userID string, max int) ([]models.SearchHistoryEntry, error) {
	if max <= 0 || max > models.MaxHistoryEntries {
		max = models.MaxHistoryEntries
	}
	entries, err := s.historyRepo.ListByUser(ctx, userID, max)
	if err != nil {
		return nil, infraErr(msgHistoryFailed, err)
	}
	if entries == nil {
		entries = []models.SearchHistoryEntry{}
	}
	if len(entries) > max {
		entries = entries[:max]
	}
	return entries, nil
}
