package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session mirrors a row written by the identity provider. Only the hash of
// the bearer token is stored.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash []byte     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
