package models

import (
	"time"

	"github.com/google/uuid"
)

// MasteryRecord is the per-character, per-template skill score in [0, 10].
// Exactly one of PotionTemplateID/SpellTemplateID is set. Records are
// created lazily on the first award and never destroyed.
type MasteryRecord struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CharacterID      uuid.UUID  `gorm:"column:character_id;type:uuid;not null;index:mastery_records_character_id_idx"`
	PotionTemplateID *uuid.UUID `gorm:"column:potion_template_id;type:uuid;uniqueIndex:mastery_records_character_potion_key"`
	SpellTemplateID  *uuid.UUID `gorm:"column:spell_template_id;type:uuid;uniqueIndex:mastery_records_character_spell_key"`
	MasteryLevel     int        `gorm:"column:mastery_level;not null;default:0"`
	LastUpdated      time.Time  `gorm:"column:last_updated;not null"`
}
