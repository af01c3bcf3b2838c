package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/questforge/questledger-backend/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID            uuid.UUID
	ActiveCharacterID *uuid.UUID
	Role              enums.MemberRole
	JTI               string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID            uuid.UUID        `json:"user_id"`
	ActiveCharacterID *uuid.UUID       `json:"active_character_id,omitempty"`
	Role              enums.MemberRole `json:"role"`
	jwt.RegisteredClaims
}
