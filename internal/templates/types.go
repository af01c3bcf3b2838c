package templates

import (
	"time"

	"github.com/google/uuid"
)

// PotionTemplateDTO is the API-facing shape of a potion catalog entry.
type PotionTemplateDTO struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	CostGold              int       `json:"cost_gold"`
	SplitAmount           *string   `json:"split_amount,omitempty"`
	EffectFail            string    `json:"effect_fail"`
	EffectSuccess         string    `json:"effect_success"`
	EffectCriticalSuccess string    `json:"effect_critical_success"`
	IsDiscovered          bool      `json:"is_discovered"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// SpellTemplateDTO is the API-facing shape of a spell catalog entry.
type SpellTemplateDTO struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	SpellLevel            int       `json:"spell_level"`
	EffectFail            string    `json:"effect_fail"`
	EffectSuccess         string    `json:"effect_success"`
	EffectCriticalSuccess string    `json:"effect_critical_success"`
	IsDiscovered          bool      `json:"is_discovered"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// CreatePotionTemplateInput captures the fields needed to register a potion recipe.
type CreatePotionTemplateInput struct {
	Name                  string  `json:"name" validate:"required"`
	CostGold              int     `json:"cost_gold" validate:"gte=0"`
	SplitAmount           *string `json:"split_amount,omitempty"`
	EffectFail            string  `json:"effect_fail"`
	EffectSuccess         string  `json:"effect_success"`
	EffectCriticalSuccess string  `json:"effect_critical_success"`
	IsDiscovered          bool    `json:"is_discovered"`
}

// CreateSpellTemplateInput captures the fields needed to register a spell.
type CreateSpellTemplateInput struct {
	Name                  string `json:"name" validate:"required"`
	SpellLevel            int    `json:"spell_level" validate:"gte=0"`
	EffectFail            string `json:"effect_fail"`
	EffectSuccess         string `json:"effect_success"`
	EffectCriticalSuccess string `json:"effect_critical_success"`
	IsDiscovered          bool   `json:"is_discovered"`
}
