package gemini

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"socratia/backend/models"
)

// ErrBadShape is returned when the model's reply does not match the
// shape the prompt asked for.
var ErrBadShape = errors.New("gemini: unexpected response shape")

// Message is a single question or summary produced by the model.
type Message struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Turn is the model's reply to a dialogue round. Exactly one of
// Question and Summary is set; a summary ends the lesson.
type Turn struct {
	Question *Message `json:"question,omitempty"`
	Summary  *Message `json:"summary,omitempty"`
}

// StripFences removes markdown code fences the model sometimes wraps
// around JSON despite being told not to.
func StripFences(text string) string {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// ParseLessonPlan parses a curriculum reply of the shape
// {"lessons": [{"day": 1, "concepts": [...]}]}.
func ParseLessonPlan(text string) ([]models.DayLessons, error) {
	var payload struct {
		Lessons []models.DayLessons `json:"lessons"`
	}
	if err := json.Unmarshal([]byte(StripFences(text)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	if len(payload.Lessons) == 0 {
		return nil, fmt.Errorf("%w: no lessons", ErrBadShape)
	}
	for _, day := range payload.Lessons {
		if len(day.Concepts) == 0 {
			return nil, fmt.Errorf("%w: day %d has no concepts", ErrBadShape, day.Day)
		}
	}
	return payload.Lessons, nil
}

// ParseQuestion parses an opening-question reply.
func ParseQuestion(text string) (*Message, error) {
	var payload struct {
		Question *Message `json:"question"`
	}
	if err := json.Unmarshal([]byte(StripFences(text)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	if payload.Question == nil || payload.Question.Text == "" {
		return nil, fmt.Errorf("%w: missing question", ErrBadShape)
	}
	return payload.Question, nil
}

// ParseTurn parses a continue-or-summarize reply into the tagged union.
func ParseTurn(text string) (*Turn, error) {
	var turn Turn
	if err := json.Unmarshal([]byte(StripFences(text)), &turn); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	switch {
	case turn.Question != nil && turn.Summary != nil:
		return nil, fmt.Errorf("%w: both question and summary", ErrBadShape)
	case turn.Question != nil:
		if turn.Question.Text == "" {
			return nil, fmt.Errorf("%w: empty question", ErrBadShape)
		}
	case turn.Summary != nil:
		if turn.Summary.Text == "" {
			return nil, fmt.Errorf("%w: empty summary", ErrBadShape)
		}
	default:
		return nil, fmt.Errorf("%w: neither question nor summary", ErrBadShape)
	}
	return &turn, nil
}

// ParseFeedback parses an answer-evaluation reply.
func ParseFeedback(text string) (string, error) {
	var payload struct {
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(StripFences(text)), &payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadShape, err)
	}
	if payload.Feedback == "" {
		return "", fmt.Errorf("%w: missing feedback", ErrBadShape)
	}
	return payload.Feedback, nil
}
