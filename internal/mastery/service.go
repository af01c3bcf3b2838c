package mastery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/db/models"
	pkgerrors "github.com/questforge/questledger-backend/pkg/errors"
	"github.com/questforge/questledger-backend/pkg/logger"
)

type masteryRepository interface {
	ListByCharacter(ctx context.Context, characterID uuid.UUID) ([]models.MasteryRecord, error)
	ApplyAward(ctx context.Context, characterID uuid.UUID, potionTemplateID, spellTemplateID *uuid.UUID, points int, now time.Time) (*models.MasteryRecord, error)
	UpsertLevel(ctx context.Context, characterID uuid.UUID, potionTemplateID, spellTemplateID *uuid.UUID, level int, now time.Time) (*models.MasteryRecord, error)
}

// ServiceParams groups dependencies for the mastery service.
type ServiceParams struct {
	Repo   masteryRepository
	Logger *logger.Logger
	Now    func() time.Time
}

// Service exposes the mastery ledger.
type Service interface {
	Award(ctx context.Context, input AwardInput) (*MasteryRecordDTO, error)
	SetLevel(ctx context.Context, input SetLevelInput) (*MasteryRecordDTO, error)
	ListForCharacter(ctx context.Context, characterID uuid.UUID) ([]MasteryRecordDTO, error)
}

type service struct {
	repo masteryRepository
	logg *logger.Logger
	now  func() time.Time
}

// NewService builds a mastery service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "mastery repo is required")
	}
	now := params.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &service{repo: params.Repo, logg: params.Logger, now: now}, nil
}

// Award adds points to a ledger entry, creating it lazily. Zero or negative
// points are a no-op and return the untouched entry when one exists.
func (s *service) Award(ctx context.Context, input AwardInput) (*MasteryRecordDTO, error) {
	if err := validateTarget(input.CharacterID, input.PotionTemplateID, input.SpellTemplateID); err != nil {
		return nil, err
	}
	if input.Points <= 0 {
		return nil, nil
	}

	record, err := s.repo.ApplyAward(ctx, input.CharacterID, input.PotionTemplateID, input.SpellTemplateID, input.Points, s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "apply mastery award")
	}
	if record.MasteryLevel == MaxLevel && s.logg != nil {
		s.logg.Info(ctx, "mastery award at cap, level unchanged or clamped")
	}
	dto := ToMasteryRecordDTO(record)
	return &dto, nil
}

// SetLevel writes an absolute level, clamped into [0, 10]. Non-monotonic:
// a GM can lower a level.
func (s *service) SetLevel(ctx context.Context, input SetLevelInput) (*MasteryRecordDTO, error) {
	if err := validateTarget(input.CharacterID, input.PotionTemplateID, input.SpellTemplateID); err != nil {
		return nil, err
	}

	record, err := s.repo.UpsertLevel(ctx, input.CharacterID, input.PotionTemplateID, input.SpellTemplateID, ClampLevel(input.Level), s.now())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "set mastery level")
	}
	dto := ToMasteryRecordDTO(record)
	return &dto, nil
}

// ListForCharacter returns every ledger entry for a character.
func (s *service) ListForCharacter(ctx context.Context, characterID uuid.UUID) ([]MasteryRecordDTO, error) {
	if characterID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "character id is required")
	}
	records, err := s.repo.ListByCharacter(ctx, characterID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list mastery records")
	}
	out := make([]MasteryRecordDTO, 0, len(records))
	for _, record := range records {
		out = append(out, ToMasteryRecordDTO(&record))
	}
	return out, nil
}

func validateTarget(characterID uuid.UUID, potionTemplateID, spellTemplateID *uuid.UUID) error {
	if characterID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "character id is required")
	}
	if potionTemplateID != nil && spellTemplateID != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "exactly one of potion or spell template id must be set")
	}
	if potionTemplateID == nil && spellTemplateID == nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "exactly one of potion or spell template id must be set")
	}
	return nil
}

// ToMasteryRecordDTO maps the persisted record onto the API shape.
func ToMasteryRecordDTO(record *models.MasteryRecord) MasteryRecordDTO {
	return MasteryRecordDTO{
		ID:               record.ID,
		CharacterID:      record.CharacterID,
		PotionTemplateID: record.PotionTemplateID,
		SpellTemplateID:  record.SpellTemplateID,
		MasteryLevel:     record.MasteryLevel,
		LastUpdated:      record.LastUpdated,
	}
}
