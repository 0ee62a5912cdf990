package repositories

import (
	"github.com/agentforge/agentforge-be/internal/modules/dashboard/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentRepo interface for agent database operations
type AgentRepo interface {
	Create(agent *models.Agent) error
	FindByID(id uuid.UUID) (*models.Agent, error)
	FindByUserID(userID uuid.UUID) ([]models.Agent, error)
	Update(agent *models.Agent) error
	Delete(id uuid.UUID) error
}

type agentRepo struct {
	db *gorm.DB
}

// NewAgentRepo creates a new agent repository
func NewAgentRepo(db *gorm.DB) AgentRepo {
	return &agentRepo{db: db}
}

func (r *agentRepo) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

func (r *agentRepo) FindByID(id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.Where("id = ?", id).First(&agent).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepo) FindByUserID(userID uuid.UUID) ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&agents).Error
	return agents, err
}

func (r *agentRepo) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}

func (r *agentRepo) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Agent{}).Error
}
