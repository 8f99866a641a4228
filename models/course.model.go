package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title        string `json:"title" gorm:"not null"`
	Description  string `json:"description" gorm:"not null"`
	Category     string `json:"category" gorm:"not null"`
	ThumbnailURL string `json:"thumbnail_url" gorm:"default:''"`
	Rating       int    `json:"rating" gorm:"default:0"` // stored x10, e.g. 48 = 4.8
	LessonsCount int    `json:"lessons_count" gorm:"default:0"`
	XPReward     int    `json:"xp_reward" gorm:"default:10"`
}
