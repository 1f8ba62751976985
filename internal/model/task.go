package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority is the importance level of a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IsValidPriority checks if a priority string is one of the three levels.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// Lang is a supported language code.
type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// IsValidLang checks if a language code is supported.
func IsValidLang(l Lang) bool {
	return l == LangEnglish || l == LangArabic
}

// Text is a bilingual title. Either side may be empty pending
// translation, but never both once a task has been created.
type Text struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// Trimmed returns a copy with surrounding whitespace removed from both sides.
func (t Text) Trimmed() Text {
	return Text{En: strings.TrimSpace(t.En), Ar: strings.TrimSpace(t.Ar)}
}

// Get returns the side of the text for the given language.
func (t Text) Get(l Lang) string {
	if l == LangArabic {
		return t.Ar
	}
	return t.En
}

// Task represents a single bilingual to-do item.
type Task struct {
	ID        string   `json:"id"`
	Text      Text     `json:"text"`
	Completed bool     `json:"completed"`
	Priority  Priority `json:"priority"`
	DueDate   string   `json:"dueDate"`
}

const dueDateLayout = "2006-01-02"

// TodaysDate returns the current calendar date in YYYY-MM-DD form.
func TodaysDate() string {
	return time.Now().Format(dueDateLayout)
}

// ValidTitle reports whether a title carries meaningful content in at
// least one language: after trimming, the English or the Arabic side
// must be longer than two characters.
func ValidTitle(title Text) bool {
	trimmed := title.Trimmed()
	return len([]rune(trimmed.En)) > 2 || len([]rune(trimmed.Ar)) > 2
}

// NewTask builds a task from a validated title. The caller is expected
// to have checked ValidTitle first; the title is stored trimmed.
func NewTask(title Text) Task {
	return Task{
		ID:        uuid.NewString(),
		Text:      title.Trimmed(),
		Completed: false,
		Priority:  PriorityLow,
		DueDate:   TodaysDate(),
	}
}
