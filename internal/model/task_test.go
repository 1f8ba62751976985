package model

import (
	"testing"
	"time"
)

func TestValidTitle(t *testing.T) {
	tests := []struct {
		name  string
		title Text
		valid bool
	}{
		{"both empty", Text{}, false},
		{"english too short", Text{En: "ab"}, false},
		{"english exactly three", Text{En: "abc"}, true},
		{"arabic only", Text{Ar: "مهمة"}, true},
		{"arabic too short", Text{Ar: "اب"}, false},
		{"whitespace does not count", Text{En: "  hi  "}, false},
		{"trimmed length counts", Text{En: "  hii "}, true},
		{"one valid side is enough", Text{En: "", Ar: "abc"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidTitle(tt.title); got != tt.valid {
				t.Errorf("ValidTitle(%+v) = %v, want %v", tt.title, got, tt.valid)
			}
		})
	}
}

func TestIsValidPriority(t *testing.T) {
	tests := []struct {
		priority Priority
		valid    bool
	}{
		{PriorityHigh, true},
		{PriorityMedium, true},
		{PriorityLow, true},
		{Priority("urgent"), false},
		{Priority(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := IsValidPriority(tt.priority); got != tt.valid {
				t.Errorf("IsValidPriority(%q) = %v, want %v", tt.priority, got, tt.valid)
			}
		})
	}
}

func TestIsValidLang(t *testing.T) {
	if !IsValidLang(LangEnglish) || !IsValidLang(LangArabic) {
		t.Error("en and ar should be valid language codes")
	}
	if IsValidLang(Lang("fr")) || IsValidLang(Lang("")) {
		t.Error("unsupported codes should be invalid")
	}
}

func TestNewTaskDefaults(t *testing.T) {
	task := NewTask(Text{En: "  Buy milk  "})

	if task.ID == "" {
		t.Error("new task should have an id")
	}
	if task.Text.En != "Buy milk" {
		t.Errorf("Text.En = %q, want trimmed %q", task.Text.En, "Buy milk")
	}
	if task.Completed {
		t.Error("new task should not be completed")
	}
	if task.Priority != PriorityLow {
		t.Errorf("Priority = %q, want %q", task.Priority, PriorityLow)
	}
	if task.DueDate != time.Now().Format("2006-01-02") {
		t.Errorf("DueDate = %q, want today", task.DueDate)
	}
}

func TestNewTaskUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := NewTask(Text{En: "same title"})
		if seen[task.ID] {
			t.Fatalf("duplicate id %q", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestTextGet(t *testing.T) {
	text := Text{En: "hello", Ar: "مرحبا"}
	if got := text.Get(LangEnglish); got != "hello" {
		t.Errorf("Get(en) = %q, want %q", got, "hello")
	}
	if got := text.Get(LangArabic); got != "مرحبا" {
		t.Errorf("Get(ar) = %q, want %q", got, "مرحبا")
	}
}
