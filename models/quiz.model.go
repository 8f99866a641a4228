package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Quiz struct {
	gorm.Model
	Title           string `json:"title" gorm:"not null"`
	Description     string `json:"description" gorm:"not null"`
	XPReward        int    `json:"xp_reward" gorm:"default:30;not null"`
	DifficultyLevel string `json:"difficulty_level" gorm:"not null"` // Beginner, Intermediate, Advanced
	CourseID        *uint  `json:"course_id" gorm:"index"`
}

type QuizQuestion struct {
	gorm.Model
	QuizID        uint   `json:"quiz_id" gorm:"index;not null"`
	Question      string `json:"question" gorm:"not null"`
	OptionA       string `json:"option_a" gorm:"not null"`
	OptionB       string `json:"option_b" gorm:"not null"`
	OptionC       string `json:"option_c" gorm:"not null"`
	OptionD       string `json:"option_d" gorm:"not null"`
	CorrectOption string `json:"correct_option" gorm:"not null"` // A, B, C or D
}

// QuizSubmission is an immutable record of one attempt. Answers keeps the
// submitted question->option map for later review.
type QuizSubmission struct {
	gorm.Model
	UserID         uint           `json:"user_id" gorm:"index;not null"`
	QuizID         uint           `json:"quiz_id" gorm:"index;not null"`
	Score          int            `json:"score" gorm:"not null"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	Completed      bool           `json:"completed" gorm:"default:false;not null"`
	Answers        datatypes.JSON `json:"answers"`
	SubmittedAt    time.Time      `json:"submitted_at"`
	Quiz           Quiz           `json:"quiz" gorm:"foreignKey:QuizID"`
}
