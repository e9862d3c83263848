package models

import "gorm.io/gorm"

type JournalEntry struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	Day        int    `gorm:"not null"`
	Reflection string `gorm:"type:text"`
	Summary    string `gorm:"type:text"`
}
