package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// SpellScroll is a scribed scroll instance. Scrolls share the potion
// lifecycle but carry no crafting outcome.
type SpellScroll struct {
	ID                    uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TemplateID            uuid.UUID          `gorm:"column:template_id;type:uuid;not null;index:spell_scrolls_template_id_idx"`
	CraftedBy             string             `gorm:"column:crafted_by;not null"`
	CraftedAt             time.Time          `gorm:"column:crafted_at;not null"`
	CrafterCharacterID    *uuid.UUID         `gorm:"column:crafter_character_id;type:uuid"`
	CrafterRole           *enums.CrafterRole `gorm:"column:crafter_role"`
	SupervisorCharacterID *uuid.UUID         `gorm:"column:supervisor_character_id;type:uuid"`
	ConsumedBy            *string            `gorm:"column:consumed_by"`
	ConsumedAt            *time.Time         `gorm:"column:consumed_at"`
	UsedAmount            *string            `gorm:"column:used_amount"`
	RemainingAmount       *string            `gorm:"column:remaining_amount"`
	IsFullyConsumed       bool               `gorm:"column:is_fully_consumed;not null;default:false"`
	Weight                decimal.Decimal    `gorm:"column:weight;type:numeric(10,3);not null;default:0"`
	CreatedAt             time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
