package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestLessonState(t *testing.T) {
	fresh := Progress{}
	assert.Equal(t, LessonNotStarted, fresh.State())

	started := Progress{
		ConversationHistory: datatypes.NewJSONType([]ConversationTurn{
			{ID: 1, Text: "What is recursion?"},
		}),
	}
	assert.Equal(t, LessonInProgress, started.State())

	done := Progress{IsCompleted: true}
	assert.Equal(t, LessonCompleted, done.State())

	assert.Equal(t, "NOT_STARTED", LessonNotStarted.String())
	assert.Equal(t, "IN_PROGRESS", LessonInProgress.String())
	assert.Equal(t, "COMPLETED", LessonCompleted.String())
}

func TestValidateTransition(t *testing.T) {
	turns := []ConversationTurn{{ID: 1, Text: "q", UserAnswer: "a", Feedback: "f"}}

	// Completing without a transcript skips IN_PROGRESS.
	assert.ErrorIs(t, ValidateTransition(nil, true, nil), ErrEmptyTranscript)

	// Normal first write and normal completion are fine.
	assert.NoError(t, ValidateTransition(nil, false, nil))
	assert.NoError(t, ValidateTransition(nil, true, turns))

	inProgress := &Progress{ConversationHistory: datatypes.NewJSONType(turns)}
	assert.NoError(t, ValidateTransition(inProgress, true, turns))

	// COMPLETED is terminal.
	done := &Progress{IsCompleted: true, ConversationHistory: datatypes.NewJSONType(turns)}
	assert.ErrorIs(t, ValidateTransition(done, false, turns), ErrLessonReopened)

	// Re-persisting a completed lesson is idempotent.
	assert.NoError(t, ValidateTransition(done, true, turns))
}
