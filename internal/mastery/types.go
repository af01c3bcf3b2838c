package mastery

import (
	"time"

	"github.com/google/uuid"
)

// MasteryRecordDTO is the API-facing shape of a mastery ledger entry.
type MasteryRecordDTO struct {
	ID               uuid.UUID  `json:"id"`
	CharacterID      uuid.UUID  `json:"character_id"`
	PotionTemplateID *uuid.UUID `json:"potion_template_id,omitempty"`
	SpellTemplateID  *uuid.UUID `json:"spell_template_id,omitempty"`
	MasteryLevel     int        `json:"mastery_level"`
	LastUpdated      time.Time  `json:"last_updated"`
}

// AwardInput identifies a ledger entry and the points to add.
type AwardInput struct {
	CharacterID      uuid.UUID  `json:"character_id" validate:"required"`
	PotionTemplateID *uuid.UUID `json:"potion_template_id,omitempty"`
	SpellTemplateID  *uuid.UUID `json:"spell_template_id,omitempty"`
	Points           int        `json:"points"`
}

// SetLevelInput identifies a ledger entry and the absolute level to write.
type SetLevelInput struct {
	CharacterID      uuid.UUID  `json:"character_id" validate:"required"`
	PotionTemplateID *uuid.UUID `json:"potion_template_id,omitempty"`
	SpellTemplateID  *uuid.UUID `json:"spell_template_id,omitempty"`
	Level            int        `json:"level"`
}
