package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklistModel menampung token yang sudah logout sampai expired.
type TokenBlacklistModel struct {
	TokenBlacklistID uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:token_blacklist_id" json:"token_blacklist_id"`
	Token            string         `gorm:"not null;index;column:token" json:"token"`
	ExpiresAt        time.Time      `gorm:"not null;column:expires_at" json:"expires_at"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklists" }
