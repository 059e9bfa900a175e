package model

import (
	"fmt"
	"strings"
	"time"
)

const stampTimeLayout = "03:04 PM"

// Stamp is the creation timestamp of a task, broken into display parts.
// It is set once when a task is created and never touched by edits.
type Stamp struct {
	Time    string `json:"time" yaml:"time"`
	Day     string `json:"day" yaml:"day"`
	DayName int    `json:"dayName" yaml:"dayName"`
	Month   string `json:"month" yaml:"month"`
	Year    int    `json:"year" yaml:"year"`
}

func NewStamp(now time.Time) Stamp {
	return Stamp{
		Time:    now.Format(stampTimeLayout),
		Day:     now.Weekday().String(),
		DayName: now.Day(),
		Month:   now.Month().String(),
		Year:    now.Year(),
	}
}

func (s Stamp) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %d %s %d %s", s.Day, s.DayName, s.Month, s.Year, s.Time))
}

type Task struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Stamp       `yaml:",inline"`
	Completed   bool `json:"completed" yaml:"completed"`
	Edited      bool `json:"edited,omitempty" yaml:"edited,omitempty"`
}

// SameName reports whether two task names collide: names are compared
// trimmed and case-folded.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// NameContains reports whether the case-folded name contains the
// case-folded query. An empty query matches every name.
func NameContains(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

func ValidateInput(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name"}
	}
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Field: "description"}
	}
	return nil
}
