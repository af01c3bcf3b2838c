package mastery

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates mastery ledger persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a mastery repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the transaction handle.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindRecord loads the ledger entry for a character and template pair.
func (r *Repository) FindRecord(ctx context.Context, characterID uuid.UUID, potionTemplateID, spellTemplateID *uuid.UUID) (*models.MasteryRecord, error) {
	query := r.db.WithContext(ctx).Where("character_id = ?", characterID)
	switch {
	case potionTemplateID != nil:
		query = query.Where("potion_template_id = ?", *potionTemplateID)
	case spellTemplateID != nil:
		query = query.Where("spell_template_id = ?", *spellTemplateID)
	default:
		return nil, gorm.ErrInvalidValue
	}

	var record models.MasteryRecord
	if err := query.First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// ListByCharacter returns every ledger entry for a character.
func (r *Repository) ListByCharacter(ctx context.Context, characterID uuid.UUID) ([]models.MasteryRecord, error) {
	var records []models.MasteryRecord
	err := r.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		Order("last_updated DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// ApplyAward folds points into the ledger entry, creating it lazily. The
// read-modify-write is serialized by the caller's transaction.
func (r *Repository) ApplyAward(ctx context.Context, characterID uuid.UUID, potionTemplateID, spellTemplateID *uuid.UUID, points int, now time.Time) (*models.MasteryRecord, error) {
	record, err := r.FindRecord(ctx, characterID, potionTemplateID, spellTemplateID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		record = &models.MasteryRecord{
			ID:               uuid.New(),
			CharacterID:      characterID,
			PotionTemplateID: potionTemplateID,
			SpellTemplateID:  spellTemplateID,
			MasteryLevel:     ApplyPoints(0, points),
			LastUpdated:      now,
		}
		if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
			return nil, err
		}
		return record, nil
	}

	next := ApplyPoints(record.MasteryLevel, points)
	if next == record.MasteryLevel {
		return record, nil
	}

	record.MasteryLevel = next
	record.LastUpdated = now
	err = r.db.WithContext(ctx).
		Model(&models.MasteryRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{"mastery_level": next, "last_updated": now}).Error
	if err != nil {
		return nil, err
	}
	return record, nil
}

// UpsertLevel writes an absolute level, creating the entry when missing.
func (r *Repository) UpsertLevel(ctx context.Context, characterID uuid.UUID, potionTemplateID, spellTemplateID *uuid.UUID, level int, now time.Time) (*models.MasteryRecord, error) {
	record, err := r.FindRecord(ctx, characterID, potionTemplateID, spellTemplateID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		record = &models.MasteryRecord{
			ID:               uuid.New(),
			CharacterID:      characterID,
			PotionTemplateID: potionTemplateID,
			SpellTemplateID:  spellTemplateID,
			MasteryLevel:     level,
			LastUpdated:      now,
		}
		if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
			return nil, err
		}
		return record, nil
	}

	record.MasteryLevel = level
	record.LastUpdated = now
	err = r.db.WithContext(ctx).
		Model(&models.MasteryRecord{}).
		Where("id = ?", record.ID).
		Updates(map[string]any{"mastery_level": level, "last_updated": now}).Error
	if err != nil {
		return nil, err
	}
	return record, nil
}
