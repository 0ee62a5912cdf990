package repositories

import (
	"time"

	"github.com/agentforge/agentforge-be/internal/modules/dashboard/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DraftRepo interface for saved-draft database operations
type DraftRepo interface {
	Upsert(d *models.SavedDraft) error
	FindByUserID(userID uuid.UUID) (*models.SavedDraft, error)
	DeleteByUserID(userID uuid.UUID) error
	DeleteOlderThan(cutoff time.Time) (int64, error)
}

type draftRepo struct {
	db *gorm.DB
}

// NewDraftRepo creates a new draft repository
func NewDraftRepo(db *gorm.DB) DraftRepo {
	return &draftRepo{db: db}
}

func (r *draftRepo) Upsert(d *models.SavedDraft) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(d).Error
}

func (r *draftRepo) FindByUserID(userID uuid.UUID) (*models.SavedDraft, error) {
	var d models.SavedDraft
	err := r.db.Where("user_id = ?", userID).First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *draftRepo) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.SavedDraft{}).Error
}

func (r *draftRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("updated_at < ?", cutoff).Delete(&models.SavedDraft{})
	return res.RowsAffected, res.Error
}
