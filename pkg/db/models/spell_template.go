package models

import (
	"time"

	"github.com/google/uuid"
)

// SpellTemplate is the immutable catalog definition of a scribable spell.
// SpellLevel gates crafting: a scribe of level N can produce scrolls up to
// level N+1.
type SpellTemplate struct {
	ID                    uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                  string    `gorm:"column:name;not null"`
	SpellLevel            int       `gorm:"column:spell_level;not null"`
	EffectFail            string    `gorm:"column:effect_fail;not null;default:''"`
	EffectSuccess         string    `gorm:"column:effect_success;not null;default:''"`
	EffectCriticalSuccess string    `gorm:"column:effect_critical_success;not null;default:''"`
	IsDiscovered          bool      `gorm:"column:is_discovered;not null;default:false"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
