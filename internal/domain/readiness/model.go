package readiness

import (
	"time"

	"github.com/google/uuid"
)

// Level is a three-level readiness verdict, ordered by severity.
type Level string

const (
	LevelReady    Level = "ready"
	LevelWarning  Level = "warning"
	LevelNotReady Level = "not-ready"
)

var severity = map[Level]int{
	LevelReady:    0,
	LevelWarning:  1,
	LevelNotReady: 2,
}

// worst returns the more severe of two levels. Most severe wins.
func worst(a, b Level) Level {
	if severity[b] > severity[a] {
		return b
	}
	return a
}

// Category tags one of the four readiness checks.
type Category string

const (
	CategoryStaffing    Category = "staffing"
	CategoryEquipment   Category = "equipment"
	CategoryConsumables Category = "consumables"
	CategoryEnvironment Category = "environment"
)

// ItemResult is the outcome of a single requirement comparison. Required
// and Actual are report content, not typed quantities: counts for staffing
// and stock checks, booleans for synthetic and feature items.
type ItemResult struct {
	Name     string      `json:"name"`
	Required interface{} `json:"required"`
	Actual   interface{} `json:"actual"`
	Status   Level       `json:"status"`
	Notes    string      `json:"notes,omitempty"`
}

// CategoryResult is one category's rolled-up verdict with its items.
type CategoryResult struct {
	Category Category     `json:"category"`
	Status   Level        `json:"status"`
	Items    []ItemResult `json:"items"`
}

// rollup computes the category level from its items. An empty category
// is ready.
func rollup(items []ItemResult) Level {
	level := LevelReady
	for _, it := range items {
		level = worst(level, it.Status)
	}
	return level
}

// Check is the full readiness report for one theatre/case evaluation.
// It is transient: computed on demand, never persisted.
type Check struct {
	TheatreID  uuid.UUID        `json:"theatre_id"`
	CaseID     *uuid.UUID       `json:"case_id,omitempty"`
	Timestamp  time.Time        `json:"timestamp"`
	Overall    Level            `json:"overall"`
	Categories []CategoryResult `json:"categories"`
}
