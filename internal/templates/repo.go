package templates

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates template catalog persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a template repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the transaction handle.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// CreatePotionTemplate inserts a potion recipe.
func (r *Repository) CreatePotionTemplate(ctx context.Context, input CreatePotionTemplateInput) (*models.PotionTemplate, error) {
	record := &models.PotionTemplate{
		ID:                    uuid.New(),
		Name:                  strings.TrimSpace(input.Name),
		CostGold:              input.CostGold,
		SplitAmount:           input.SplitAmount,
		EffectFail:            input.EffectFail,
		EffectSuccess:         input.EffectSuccess,
		EffectCriticalSuccess: input.EffectCriticalSuccess,
		IsDiscovered:          input.IsDiscovered,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// CreateSpellTemplate inserts a spell definition.
func (r *Repository) CreateSpellTemplate(ctx context.Context, input CreateSpellTemplateInput) (*models.SpellTemplate, error) {
	record := &models.SpellTemplate{
		ID:                    uuid.New(),
		Name:                  strings.TrimSpace(input.Name),
		SpellLevel:            input.SpellLevel,
		EffectFail:            input.EffectFail,
		EffectSuccess:         input.EffectSuccess,
		EffectCriticalSuccess: input.EffectCriticalSuccess,
		IsDiscovered:          input.IsDiscovered,
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// FindPotionTemplateByID loads a potion template regardless of discovery state.
func (r *Repository) FindPotionTemplateByID(ctx context.Context, id uuid.UUID) (*models.PotionTemplate, error) {
	var record models.PotionTemplate
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindSpellTemplateByID loads a spell template regardless of discovery state.
func (r *Repository) FindSpellTemplateByID(ctx context.Context, id uuid.UUID) (*models.SpellTemplate, error) {
	var record models.SpellTemplate
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListDiscoveredPotionTemplates returns the player-visible potion catalog.
func (r *Repository) ListDiscoveredPotionTemplates(ctx context.Context) ([]models.PotionTemplate, error) {
	var records []models.PotionTemplate
	err := r.db.WithContext(ctx).
		Where("is_discovered = ?", true).
		Order("name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ListDiscoveredSpellTemplates returns the player-visible spell catalog.
func (r *Repository) ListDiscoveredSpellTemplates(ctx context.Context) ([]models.SpellTemplate, error) {
	var records []models.SpellTemplate
	err := r.db.WithContext(ctx).
		Where("is_discovered = ?", true).
		Order("spell_level ASC, name ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
