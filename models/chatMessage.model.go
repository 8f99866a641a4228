package models

import (
	"time"

	"gorm.io/gorm"
)

// ChatMessage is an append-only log entry.
type ChatMessage struct {
	gorm.Model
	UserID   uint      `json:"user_id" gorm:"index;not null"`
	Username string    `json:"username" gorm:"not null"`
	Message  string    `json:"message" gorm:"not null"`
	SentAt   time.Time `json:"sent_at"`
}
