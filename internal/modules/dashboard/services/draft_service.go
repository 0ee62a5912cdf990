package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/agentforge/agentforge-be/internal/core/draft"
	"github.com/agentforge/agentforge-be/internal/modules/dashboard/models"
	"github.com/agentforge/agentforge-be/internal/modules/dashboard/repositories"
)

const draftRetention = 7 * 24 * time.Hour

// DraftService persists in-progress wizard drafts so users can resume later,
// and prunes abandoned ones on a schedule.
type DraftService struct {
	draftRepo repositories.DraftRepo
	cron      *cron.Cron
}

// NewDraftService creates a new draft service
func NewDraftService(draftRepo repositories.DraftRepo) *DraftService {
	return &DraftService{
		draftRepo: draftRepo,
		cron:      cron.New(),
	}
}

// StartPruner schedules the daily cleanup of abandoned drafts.
func (s *DraftService) StartPruner() error {
	_, err := s.cron.AddFunc("@daily", func() {
		cutoff := time.Now().Add(-draftRetention)
		n, err := s.draftRepo.DeleteOlderThan(cutoff)
		if err != nil {
			log.Error().Err(err).Msg("⚠️ Draft pruning failed")
			return
		}
		if n > 0 {
			log.Info().Int64("count", n).Msg("🧹 Pruned abandoned drafts")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule draft pruning: %w", err)
	}
	s.cron.Start()
	return nil
}

// Shutdown stops the pruning schedule.
func (s *DraftService) Shutdown() {
	s.cron.Stop()
}

// SaveDraft stores (or replaces) the user's in-progress draft.
func (s *DraftService) SaveDraft(userID uuid.UUID, d draft.Draft) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}

	return s.draftRepo.Upsert(&models.SavedDraft{
		UserID:  userID,
		Payload: payload,
	})
}

// GetDraft loads the user's saved draft, if any.
func (s *DraftService) GetDraft(userID uuid.UUID) (*draft.Draft, error) {
	saved, err := s.draftRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	var d draft.Draft
	if err := json.Unmarshal(saved.Payload, &d); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &d, nil
}

// DiscardDraft removes the user's saved draft.
func (s *DraftService) DiscardDraft(userID uuid.UUID) error {
	return s.draftRepo.DeleteByUserID(userID)
}
