package treasury

import (
	"time"

	"github.com/google/uuid"
)

// HouseDTO is the API-facing shape of a house treasury.
type HouseDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Gold      int       `json:"gold"`
	UpdatedAt time.Time `json:"updated_at"`
}
