package models

import "errors"

// LessonState is the dialogue state of a lesson.
type LessonState int

const (
	LessonNotStarted LessonState = iota
	LessonInProgress
	LessonCompleted
)

func (s LessonState) String() string {
	switch s {
	case LessonInProgress:
		return "IN_PROGRESS"
	case LessonCompleted:
		return "COMPLETED"
	default:
		return "NOT_STARTED"
	}
}

// State derives the dialogue state from a progress record.
func (p *Progress) State() LessonState {
	switch {
	case p.IsCompleted:
		return LessonCompleted
	case len(p.ConversationHistory.Data()) > 0:
		return LessonInProgress
	default:
		return LessonNotStarted
	}
}

var (
	ErrEmptyTranscript = errors.New("a lesson cannot be completed with an empty transcript")
	ErrLessonReopened  = errors.New("a completed lesson cannot be reopened")
)

// ValidateTransition checks a progress write against the stored record.
// Completing a lesson requires at least one transcript turn, and a
// completed lesson stays completed. Everything else is last-write-wins.
func ValidateTransition(current *Progress, isCompleted bool, history []ConversationTurn) error {
	if isCompleted && len(history) == 0 {
		return ErrEmptyTranscript
	}
	if current != nil && current.IsCompleted && !isCompleted {
		return ErrLessonReopened
	}
	return nil
}
