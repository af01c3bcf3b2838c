package items

import (
	"time"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/enums"
	"github.com/questforge/questledger-backend/pkg/types"
	"github.com/shopspring/decimal"
)

// Instance states as exposed to clients.
const (
	StatusOwned             = "owned"
	StatusPartiallyConsumed = "partially_consumed"
	StatusFullyConsumed     = "fully_consumed"
)

// InstanceDTO is the unified API shape for potions and scrolls.
type InstanceDTO struct {
	ID                    uuid.UUID           `json:"id"`
	Kind                  enums.ItemKind      `json:"kind"`
	TemplateID            uuid.UUID           `json:"template_id"`
	Status                string              `json:"status"`
	CraftedBy             string              `json:"crafted_by"`
	CraftedAt             time.Time           `json:"crafted_at"`
	CraftedOutcome        *enums.CraftOutcome `json:"crafted_outcome,omitempty"`
	CrafterCharacterID    *uuid.UUID          `json:"crafter_character_id,omitempty"`
	CrafterRole           *enums.CrafterRole  `json:"crafter_role,omitempty"`
	SupervisorCharacterID *uuid.UUID          `json:"supervisor_character_id,omitempty"`
	ConsumedBy            *string             `json:"consumed_by,omitempty"`
	ConsumedAt            *time.Time          `json:"consumed_at,omitempty"`
	UsedAmount            *string             `json:"used_amount,omitempty"`
	RemainingAmount       *string             `json:"remaining_amount,omitempty"`
	IsFullyConsumed       bool                `json:"is_fully_consumed"`
	Weight                decimal.Decimal     `json:"weight"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// CraftPotionInput captures a potion craft request.
type CraftPotionInput struct {
	TemplateID            uuid.UUID          `json:"template_id" validate:"required"`
	CraftedBy             string             `json:"crafted_by" validate:"required"`
	CraftedAt             time.Time          `json:"crafted_at" validate:"required"`
	Outcome               enums.CraftOutcome `json:"outcome" validate:"required"`
	Weight                types.FlexDecimal  `json:"weight"`
	CrafterCharacterID    *uuid.UUID         `json:"crafter_character_id,omitempty"`
	CrafterRole           *enums.CrafterRole `json:"crafter_role,omitempty"`
	SupervisorCharacterID *uuid.UUID         `json:"supervisor_character_id,omitempty"`
}

// CraftScrollInput captures a scroll craft request. CrafterLevel feeds the
// level gate; scrolls record no outcome.
type CraftScrollInput struct {
	TemplateID            uuid.UUID          `json:"template_id" validate:"required"`
	CraftedBy             string             `json:"crafted_by" validate:"required"`
	CraftedAt             time.Time          `json:"crafted_at" validate:"required"`
	CrafterLevel          int                `json:"crafter_level" validate:"gte=0"`
	Weight                types.FlexDecimal  `json:"weight"`
	CrafterCharacterID    *uuid.UUID         `json:"crafter_character_id,omitempty"`
	CrafterRole           *enums.CrafterRole `json:"crafter_role,omitempty"`
	SupervisorCharacterID *uuid.UUID         `json:"supervisor_character_id,omitempty"`
}

// ConsumeInput captures a consumption event.
type ConsumeInput struct {
	ConsumerName    string              `json:"consumer_name"`
	ConsumedAt      *time.Time          `json:"consumed_at"`
	ActualOutcome   *enums.CraftOutcome `json:"actual_outcome,omitempty"`
	AmountUsed      *string             `json:"amount_used,omitempty"`
	FullConsumption bool                `json:"full_consumption"`
}

// SellInput captures a disposition request.
type SellInput struct {
	SellPrice      int  `json:"sell_price"`
	CreditTreasury bool `json:"credit_treasury"`
}

// SellResultDTO reports the outcome of a sale.
type SellResultDTO struct {
	ItemID           uuid.UUID      `json:"item_id"`
	Kind             enums.ItemKind `json:"kind"`
	SoldPrice        int            `json:"sold_price"`
	TreasuryCredited bool           `json:"treasury_credited"`
}
