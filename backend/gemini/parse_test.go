package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`  {"a":1}  `))
}

func TestParseLessonPlan(t *testing.T) {
	plan, err := ParseLessonPlan("```json\n" + `{
	  "lessons": [
	    {"day": 1, "concepts": ["Variables", "Types"]},
	    {"day": 2, "concepts": ["Loops"]}
	  ]
	}` + "\n```")
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Equal(t, 1, plan[0].Day)
	assert.Equal(t, []string{"Variables", "Types"}, plan[0].Concepts)

	_, err = ParseLessonPlan("this is not json")
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = ParseLessonPlan(`{"lessons": []}`)
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = ParseLessonPlan(`{"lessons": [{"day": 1, "concepts": []}]}`)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestParseQuestion(t *testing.T) {
	q, err := ParseQuestion(`{"question": {"id": 1, "text": "What is a loop?"}}`)
	require.NoError(t, err)
	assert.Equal(t, 1, q.ID)
	assert.Equal(t, "What is a loop?", q.Text)

	_, err = ParseQuestion(`{"question": {"id": 1, "text": ""}}`)
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = ParseQuestion(`{"answer": "42"}`)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestParseTurn(t *testing.T) {
	turn, err := ParseTurn(`{"question": {"id": 2, "text": "And then?"}}`)
	require.NoError(t, err)
	require.NotNil(t, turn.Question)
	assert.Nil(t, turn.Summary)

	turn, err = ParseTurn("```json\n" + `{"summary": {"id": 3, "text": "You got it."}}` + "\n```")
	require.NoError(t, err)
	require.NotNil(t, turn.Summary)
	assert.Nil(t, turn.Question)
	assert.Equal(t, "You got it.", turn.Summary.Text)

	_, err = ParseTurn(`{}`)
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = ParseTurn(`{"question": {"id": 1, "text": "a"}, "summary": {"id": 1, "text": "b"}}`)
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = ParseTurn(`{"summary": {"id": 1, "text": ""}}`)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestParseFeedback(t *testing.T) {
	feedback, err := ParseFeedback(`{"feedback": "Good start, but think about base cases."}`)
	require.NoError(t, err)
	assert.Equal(t, "Good start, but think about base cases.", feedback)

	_, err = ParseFeedback(`{"feedback": ""}`)
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = ParseFeedback("plain text reply")
	assert.ErrorIs(t, err, ErrBadShape)
}
