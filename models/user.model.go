package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique;not null"`
	Password  string `json:"-" gorm:"not null"`
	XP        int    `json:"xp" gorm:"default:0;not null"`
	Email     string `json:"email" gorm:"default:''"`
	AvatarURL string `json:"avatar_url" gorm:"default:''"`
}
