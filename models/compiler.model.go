package models

import (
	"time"

	"gorm.io/gorm"
)

type CompilerChallenge struct {
	gorm.Model
	Title          string `json:"title" gorm:"not null"`
	Description    string `json:"description" gorm:"not null"`
	Instructions   string `json:"instructions" gorm:"not null"`
	StartingCode   string `json:"starting_code" gorm:"not null"`
	QuizID         *uint  `json:"quiz_id" gorm:"index"` // optional follow-on from a quiz
	ExpectedOutput string `json:"expected_output" gorm:"not null"`
	Difficulty     string `json:"difficulty" gorm:"not null"`
	Language       string `json:"language" gorm:"not null"`
}

// CompilerSolution is an immutable record of one submitted attempt.
type CompilerSolution struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	ChallengeID uint      `json:"challenge_id" gorm:"index;not null"`
	Code        string    `json:"code" gorm:"not null"`
	Passed      bool      `json:"passed" gorm:"not null"`
	SubmittedAt time.Time `json:"submitted_at"`
}
