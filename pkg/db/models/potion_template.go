package models

import (
	"time"

	"github.com/google/uuid"
)

// PotionTemplate is the immutable catalog definition of a brewable potion.
// SplitAmount, when present, labels the discrete doses a single brew yields
// (e.g. "3 Doses") and unlocks partial consumption.
type PotionTemplate struct {
	ID                    uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                  string    `gorm:"column:name;not null"`
	CostGold              int       `gorm:"column:cost_gold;not null;default:0"`
	SplitAmount           *string   `gorm:"column:split_amount"`
	EffectFail            string    `gorm:"column:effect_fail;not null;default:''"`
	EffectSuccess         string    `gorm:"column:effect_success;not null;default:''"`
	EffectCriticalSuccess string    `gorm:"column:effect_critical_success;not null;default:''"`
	IsDiscovered          bool      `gorm:"column:is_discovered;not null;default:false"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
