package models

import (
	"time"

	"gorm.io/gorm"
)

type LiveSession struct {
	gorm.Model
	Title           string    `json:"title" gorm:"not null"`
	Description     string    `json:"description" gorm:"not null"`
	InstructorName  string    `json:"instructor_name" gorm:"not null"`
	SessionDate     time.Time `json:"session_date" gorm:"not null"`
	Duration        int       `json:"duration" gorm:"not null"` // minutes
	MeetingID       string    `json:"meeting_id"`
	MeetingPassword string    `json:"meeting_password"`
	ReminderSent    bool      `json:"reminder_sent" gorm:"default:false"`
}
