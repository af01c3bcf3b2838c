package templates

import (
	"context"

	"github.com/questforge/questledger-backend/pkg/db/models"
	pkgerrors "github.com/questforge/questledger-backend/pkg/errors"
)

type templateRepository interface {
	ListDiscoveredPotionTemplates(ctx context.Context) ([]models.PotionTemplate, error)
	ListDiscoveredSpellTemplates(ctx context.Context) ([]models.SpellTemplate, error)
}

// Service exposes the player-visible template catalog.
type Service interface {
	ListPotionTemplates(ctx context.Context) ([]PotionTemplateDTO, error)
	ListSpellTemplates(ctx context.Context) ([]SpellTemplateDTO, error)
}

type service struct {
	repo templateRepository
}

// NewService builds a template service with the required repository.
func NewService(repo templateRepository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "template repo is required")
	}
	return &service{repo: repo}, nil
}

// ListPotionTemplates returns discovered potion recipes only.
func (s *service) ListPotionTemplates(ctx context.Context) ([]PotionTemplateDTO, error) {
	records, err := s.repo.ListDiscoveredPotionTemplates(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list potion templates")
	}
	out := make([]PotionTemplateDTO, 0, len(records))
	for _, record := range records {
		out = append(out, ToPotionTemplateDTO(&record))
	}
	return out, nil
}

// ListSpellTemplates returns discovered spells only.
func (s *service) ListSpellTemplates(ctx context.Context) ([]SpellTemplateDTO, error) {
	records, err := s.repo.ListDiscoveredSpellTemplates(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list spell templates")
	}
	out := make([]SpellTemplateDTO, 0, len(records))
	for _, record := range records {
		out = append(out, ToSpellTemplateDTO(&record))
	}
	return out, nil
}

// ToPotionTemplateDTO maps the persisted template onto the API shape.
func ToPotionTemplateDTO(record *models.PotionTemplate) PotionTemplateDTO {
	return PotionTemplateDTO{
		ID:                    record.ID,
		Name:                  record.Name,
		CostGold:              record.CostGold,
		SplitAmount:           record.SplitAmount,
		EffectFail:            record.EffectFail,
		EffectSuccess:         record.EffectSuccess,
		EffectCriticalSuccess: record.EffectCriticalSuccess,
		IsDiscovered:          record.IsDiscovered,
		CreatedAt:             record.CreatedAt,
		UpdatedAt:             record.UpdatedAt,
	}
}

// ToSpellTemplateDTO maps the persisted template onto the API shape.
func ToSpellTemplateDTO(record *models.SpellTemplate) SpellTemplateDTO {
	return SpellTemplateDTO{
		ID:                    record.ID,
		Name:                  record.Name,
		SpellLevel:            record.SpellLevel,
		EffectFail:            record.EffectFail,
		EffectSuccess:         record.EffectSuccess,
		EffectCriticalSuccess: record.EffectCriticalSuccess,
		IsDiscovered:          record.IsDiscovered,
		CreatedAt:             record.CreatedAt,
		UpdatedAt:             record.UpdatedAt,
	}
}
