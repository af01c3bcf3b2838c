package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/enums"
)

// ItemOwnership links a crafted item to its single owner. The unique index
// on (item_kind, item_id) is what makes ownership one-to-one; the row is
// destroyed together with the instance on sale.
type ItemOwnership struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID      `gorm:"column:user_id;type:uuid;not null;index:item_ownerships_user_id_idx"`
	ItemKind  enums.ItemKind `gorm:"column:item_kind;not null;uniqueIndex:item_ownerships_item_key"`
	ItemID    uuid.UUID      `gorm:"column:item_id;type:uuid;not null;uniqueIndex:item_ownerships_item_key"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
}
