package models

import (
	"time"

	"github.com/google/uuid"
)

// House is the shared treasury a player's sales can credit. Gold never goes
// negative; only the disposition handler and out-of-scope spending touch it.
type House struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:houses_user_id_key"`
	Name      string    `gorm:"column:name;not null"`
	Gold      int       `gorm:"column:gold;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
