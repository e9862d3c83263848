package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ConversationTurn is one round of the Socratic dialogue. The closing
// summary is stored as a final turn with no answer or feedback.
type ConversationTurn struct {
	ID         int    `json:"id"`
	Text       string `json:"text"`
	UserAnswer string `json:"userAnswer,omitempty"`
	Feedback   string `json:"feedback,omitempty"`
}

// Progress is the per-(user, lesson) record. LessonID is the concept
// text exactly as the client sent it.
type Progress struct {
	gorm.Model
	UserID              uint   `gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID            string `gorm:"uniqueIndex:idx_user_lesson;not null"`
	IsCompleted         bool
	LastQuestionIndex   int
	ConversationHistory datatypes.JSONType[[]ConversationTurn]
}
