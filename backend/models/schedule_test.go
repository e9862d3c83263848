package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var planLessons = []DayLessons{
	{Day: 1, Concepts: []string{"A", "B"}},
	{Day: 2, Concepts: []string{"C"}},
}

func completed(concepts ...string) ProgressMap {
	m := make(ProgressMap)
	for _, concept := range concepts {
		m[concept] = Progress{LessonID: concept, IsCompleted: true}
	}
	return m
}

func TestCurrentDay(t *testing.T) {
	start := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, 1, CurrentDay(start, start))
	assert.Equal(t, 1, CurrentDay(start, time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 2, CurrentDay(start, time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)))
	assert.Equal(t, 8, CurrentDay(start, time.Date(2026, 3, 17, 9, 0, 0, 0, time.UTC)))

	// Only the calendar date matters, not the time of day.
	morning := CurrentDay(start, time.Date(2026, 3, 15, 0, 0, 1, 0, time.UTC))
	evening := CurrentDay(start, time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, morning, evening)
}

func TestCurrentDayMonotonic(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	prev := 0
	for i := 0; i < 200; i++ {
		now := start.Add(time.Duration(i) * 7 * time.Hour)
		day := CurrentDay(start, now)
		assert.GreaterOrEqual(t, day, prev)
		prev = day
	}
}

func TestCurrentDayPastPlannedLength(t *testing.T) {
	c := Curriculum{Days: 2, StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
	// Not clamped: a curriculum past its planned length keeps counting.
	assert.Equal(t, 10, c.CurrentDay(time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)))
}

func TestIsLessonUnlocked(t *testing.T) {
	none := ProgressMap{}

	// Day 1, nothing completed yet.
	assert.True(t, IsLessonUnlocked(1, 0, 1, none, planLessons))
	assert.False(t, IsLessonUnlocked(1, 1, 1, none, planLessons))

	// Future days stay locked.
	assert.False(t, IsLessonUnlocked(2, 0, 1, none, planLessons))

	// Completing A unlocks B.
	withA := completed("A")
	assert.True(t, IsLessonUnlocked(1, 1, 1, withA, planLessons))

	// Completing something else does not.
	assert.False(t, IsLessonUnlocked(1, 1, 1, completed("C"), planLessons))
}

func TestIsLessonUnlockedIndexZeroPastDay(t *testing.T) {
	// The index-0 rule only applies to the current day: the first
	// lesson of an earlier day is not unlocked by it.
	assert.False(t, IsLessonUnlocked(1, 0, 2, ProgressMap{}, planLessons))
	assert.True(t, IsLessonUnlocked(2, 0, 2, ProgressMap{}, planLessons))
}

func TestIsLessonUnlockedDefensive(t *testing.T) {
	assert.False(t, IsLessonUnlocked(3, 1, 5, ProgressMap{}, planLessons))
	assert.False(t, IsLessonUnlocked(1, 5, 1, ProgressMap{}, planLessons))
	assert.False(t, IsLessonUnlocked(1, 1, 1, ProgressMap{}, nil))
}

func TestIsDayComplete(t *testing.T) {
	assert.False(t, IsDayComplete(1, planLessons, ProgressMap{}))
	assert.False(t, IsDayComplete(1, planLessons, completed("A")))
	assert.True(t, IsDayComplete(1, planLessons, completed("A", "B")))

	// A completed-but-stale record does not count.
	m := completed("A")
	m["B"] = Progress{LessonID: "B", IsCompleted: false}
	assert.False(t, IsDayComplete(1, planLessons, m))

	// Days with no lessons are never complete.
	assert.False(t, IsDayComplete(7, planLessons, completed("A", "B", "C")))
	assert.False(t, IsDayComplete(1, nil, completed("A", "B")))
}

func TestCompletionPercentage(t *testing.T) {
	assert.Equal(t, 0, CompletionPercentage(nil, 1, ProgressMap{}))
	assert.Equal(t, 0, CompletionPercentage(planLessons, 0, completed("A", "B", "C")))

	// Day 1 in scope: two concepts, one done.
	assert.Equal(t, 50, CompletionPercentage(planLessons, 1, completed("A")))

	// Both days in scope: three concepts, one done.
	assert.Equal(t, 33, CompletionPercentage(planLessons, 2, completed("A")))
	assert.Equal(t, 67, CompletionPercentage(planLessons, 2, completed("A", "B")))
	assert.Equal(t, 100, CompletionPercentage(planLessons, 2, completed("A", "B", "C")))

	for day := 0; day <= 5; day++ {
		pct := CompletionPercentage(planLessons, day, completed("A"))
		assert.GreaterOrEqual(t, pct, 0)
		assert.LessOrEqual(t, pct, 100)
	}
}

func TestBuildProgressMap(t *testing.T) {
	rows := []Progress{
		{LessonID: "A", IsCompleted: true},
		{LessonID: "B"},
	}
	m := BuildProgressMap(rows)
	assert.Len(t, m, 2)
	assert.True(t, m["A"].IsCompleted)
	assert.False(t, m["B"].IsCompleted)
}
