package domain

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// Priority is the enumerated set of task priorities.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrInvalidPriority = errors.New("invalid priority")
var ErrTitleNotCapitalized = errors.New("title must be capitalized")
var ErrAssignedUserNotFound = errors.New("assigned user not found")

// Valid reports whether the priority belongs to the enumerated set.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TitleCapitalized reports whether the title's first character is an
// uppercase letter. Checked at creation only.
func TitleCapitalized(title string) bool {
	r, _ := utf8.DecodeRuneInString(title)
	return unicode.IsUpper(r)
}

// Task is the core work item. Status is deliberately free-form text: the
// dashboard offers a fixed set of values but the API enforces no transition
// table. AssignedTo is set only at creation; the referenced user must exist
// at that moment, enforced both by the service and by the foreign key.
type Task struct {
	ID          int      `json:"id"          gorm:"primaryKey"`
	Title       string   `json:"title"       gorm:"not null"`
	Description string   `json:"description" gorm:"not null"`
	Priority    Priority `json:"priority"    gorm:"not null"`
	Status      string   `json:"status"      gorm:"not null"`
	AssignedTo  *int     `json:"assigned_to" gorm:"index"`
	Assignee    *User    `json:"-"           gorm:"foreignKey:AssignedTo;references:ID"`
}
