package models

import (
	"math"
	"time"
)

// ProgressMap indexes progress records by lesson id (concept text).
type ProgressMap map[string]Progress

// BuildProgressMap indexes a user's progress rows by lesson id.
func BuildProgressMap(rows []Progress) ProgressMap {
	m := make(ProgressMap, len(rows))
	for _, row := range rows {
		m[row.LessonID] = row
	}
	return m
}

// CurrentDay returns the 1-based curriculum day for a wall-clock time.
// Both dates are truncated to local midnight so only the calendar date
// matters. The result is not clamped to the planned day count.
func CurrentDay(startDate, now time.Time) int {
	start := midnight(startDate)
	today := midnight(now)
	return int(math.Round(today.Sub(start).Hours()/24)) + 1
}

func (c *Curriculum) CurrentDay(now time.Time) int {
	return CurrentDay(c.StartDate, now)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsLessonUnlocked reports whether the lesson at (day, index) can be
// opened. Future days are locked; the first lesson of the current day
// is always open; every other lesson requires the previous concept of
// its day to be completed. Note the index-0 case only applies to the
// current day: first lessons of past days stay locked unless the
// previous-concept rule reaches them.
func IsLessonUnlocked(day, index, currentDay int, progress ProgressMap, lessons []DayLessons) bool {
	if day > currentDay {
		return false
	}
	if index == 0 && day == currentDay {
		return true
	}
	if index > 0 {
		if day-1 < 0 || day-1 >= len(lessons) {
			return false
		}
		concepts := lessons[day-1].Concepts
		if index-1 >= len(concepts) {
			return false
		}
		prev, ok := progress[concepts[index-1]]
		return ok && prev.IsCompleted
	}
	return false
}

// IsDayComplete reports whether every concept of the given day has a
// completed progress record. A day with no lessons is never complete.
func IsDayComplete(day int, lessons []DayLessons, progress ProgressMap) bool {
	var concepts []string
	for _, l := range lessons {
		if l.Day == day {
			concepts = l.Concepts
			break
		}
	}
	if len(concepts) == 0 {
		return false
	}
	for _, concept := range concepts {
		row, ok := progress[concept]
		if !ok || !row.IsCompleted {
			return false
		}
	}
	return true
}

// CompletionPercentage is the share of completed concepts across all
// days up to and including currentDay, rounded to a whole percent.
// Zero when no concepts are in scope.
func CompletionPercentage(lessons []DayLessons, currentDay int, progress ProgressMap) int {
	total := 0
	completed := 0
	for _, l := range lessons {
		if l.Day > currentDay {
			continue
		}
		for _, concept := range l.Concepts {
			total++
			if row, ok := progress[concept]; ok && row.IsCompleted {
				completed++
			}
		}
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
