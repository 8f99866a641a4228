package models

import (
	"time"

	"gorm.io/gorm"
)

// Badge is a catalog entry. Requirement is a compact predicate encoding,
// e.g. "enroll:1", "quiz:perfect", "compiler:3".
type Badge struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	IconURL     string `json:"icon_url" gorm:"default:''"`
	Requirement string `json:"requirement" gorm:"not null"`
}

// UserBadge joins a user to an earned badge. Awarding is idempotent: the
// unique index backs the lookup-before-insert done by the stores.
type UserBadge struct {
	gorm.Model
	UserID   uint      `json:"user_id" gorm:"uniqueIndex:idx_user_badge;not null"`
	BadgeID  uint      `json:"badge_id" gorm:"uniqueIndex:idx_user_badge;not null"`
	EarnedAt time.Time `json:"earned_at"`
	Badge    Badge     `json:"badge" gorm:"foreignKey:BadgeID"`
}
