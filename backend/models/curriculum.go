package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	CurriculumActive   = "ACTIVE"
	CurriculumInactive = "INACTIVE"
)

// DayLessons is one day of the study plan: an ordered list of concept
// strings. Concepts double as lesson identifiers.
type DayLessons struct {
	Day      int      `json:"day"`
	Concepts []string `json:"concepts"`
}

type Curriculum struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	Topic     string `gorm:"not null"`
	Days      int    `gorm:"not null"`
	StartDate time.Time
	Status    string `gorm:"default:ACTIVE"`
	Lessons   datatypes.JSONType[[]DayLessons]
}
