package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a user to a course. At most one enrollment may exist
// per (user, course) pair.
type Enrollment struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID      uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	Progress      int       `json:"progress" gorm:"default:0;not null"` // 0-100
	Completed     bool      `json:"completed" gorm:"default:false;not null"`
	CurrentLesson int       `json:"current_lesson" gorm:"default:1;not null"`
	EnrolledAt    time.Time `json:"enrolled_at"`
	Course        Course    `json:"course" gorm:"foreignKey:CourseID"`
}
