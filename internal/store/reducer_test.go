package store

import (
	"reflect"
	"testing"

	"bilingual-todo/internal/model"
)

func sampleTasks() []model.Task {
	return []model.Task{
		{ID: "a", Text: model.Text{En: "first"}, Priority: model.PriorityLow, DueDate: "2025-07-04"},
		{ID: "b", Text: model.Text{En: "second", Ar: "ثانية"}, Completed: true, Priority: model.PriorityHigh, DueDate: "2025-07-04"},
	}
}

func TestReduceUnknownIDIsNoOp(t *testing.T) {
	state := sampleTasks()
	actions := []Action{
		Check{ID: "missing"},
		Delete{ID: "missing"},
		Edit{ID: "missing", Title: model.Text{En: "valid title"}},
		Prioritize{ID: "missing", Priority: model.PriorityHigh},
		ApplyTranslation{ID: "missing", Lang: model.LangArabic, Text: "نص"},
	}

	for _, action := range actions {
		next, changed := Reduce(state, action)
		if changed {
			t.Errorf("%T on unknown id reported a change", action)
		}
		if !reflect.DeepEqual(next, state) {
			t.Errorf("%T on unknown id altered state", action)
		}
	}
}

func TestReduceAddValidation(t *testing.T) {
	state := sampleTasks()

	next, changed := Reduce(state, Add{Title: model.Text{En: "", Ar: "ab"}})
	if changed || len(next) != len(state) {
		t.Error("add with both sides too short should be rejected")
	}

	next, changed = Reduce(state, Add{Title: model.Text{En: "", Ar: "abc"}})
	if !changed {
		t.Fatal("add with one valid side should succeed")
	}
	if len(next) != len(state)+1 {
		t.Fatalf("got %d tasks, want %d", len(next), len(state)+1)
	}
	created := next[len(next)-1]
	if created.Priority != model.PriorityLow || created.Completed {
		t.Errorf("new task = %+v, want low priority and not completed", created)
	}
	if created.Text.Ar != "abc" {
		t.Errorf("Text.Ar = %q, want %q", created.Text.Ar, "abc")
	}
}

func TestReduceAddAppendsWithUniqueIDs(t *testing.T) {
	var state []model.Task
	for i := 0; i < 20; i++ {
		next, changed := Reduce(state, Add{Title: model.Text{En: "task title"}})
		if !changed {
			t.Fatal("add should succeed")
		}
		state = next
	}

	seen := make(map[string]bool)
	for _, task := range state {
		if seen[task.ID] {
			t.Fatalf("duplicate id %q", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestReduceCheckToggles(t *testing.T) {
	state := sampleTasks()

	next, changed := Reduce(state, Check{ID: "a"})
	if !changed || !next[0].Completed {
		t.Error("check should toggle completed to true")
	}

	next, changed = Reduce(next, Check{ID: "a"})
	if !changed || next[0].Completed {
		t.Error("second check should toggle completed back to false")
	}
}

func TestReduceDeleteKeepsOrder(t *testing.T) {
	state := []model.Task{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	next, changed := Reduce(state, Delete{ID: "b"})
	if !changed {
		t.Fatal("delete of existing id should succeed")
	}
	if len(next) != 2 || next[0].ID != "a" || next[1].ID != "c" {
		t.Errorf("next = %+v, want [a c]", next)
	}
}

func TestReduceEditTrimsAndValidates(t *testing.T) {
	state := sampleTasks()

	// Trimmed length 2: rejected.
	next, changed := Reduce(state, Edit{ID: "a", Title: model.Text{En: "  hi  "}})
	if changed || next[0].Text.En != "first" {
		t.Error("edit with a too-short trimmed title should be rejected")
	}

	next, changed = Reduce(state, Edit{ID: "a", Title: model.Text{En: "  hii "}})
	if !changed {
		t.Fatal("edit with a valid trimmed title should succeed")
	}
	if next[0].Text.En != "hii" {
		t.Errorf("Text.En = %q, want %q", next[0].Text.En, "hii")
	}
	if next[0].Text.Ar != "" {
		t.Errorf("Text.Ar = %q, want empty", next[0].Text.Ar)
	}
}

func TestReducePrioritizeRejectsUnknownValue(t *testing.T) {
	state := sampleTasks()

	next, changed := Reduce(state, Prioritize{ID: "a", Priority: model.Priority("urgent")})
	if changed || next[0].Priority != model.PriorityLow {
		t.Error("invalid priority should be rejected")
	}

	next, changed = Reduce(state, Prioritize{ID: "a", Priority: model.PriorityMedium})
	if !changed || next[0].Priority != model.PriorityMedium {
		t.Error("valid priority should be applied")
	}
}

func TestReduceApplyTranslationTargetsByID(t *testing.T) {
	state := []model.Task{
		{ID: "a", Text: model.Text{Ar: "مهمة"}},
		{ID: "b", Text: model.Text{En: "other"}},
	}

	next, changed := Reduce(state, ApplyTranslation{ID: "a", Lang: model.LangEnglish, Text: "task"})
	if !changed {
		t.Fatal("merge into an empty slot should succeed")
	}
	if next[0].Text != (model.Text{En: "task", Ar: "مهمة"}) {
		t.Errorf("Text = %+v, want merged", next[0].Text)
	}
	// The other task is untouched.
	if next[1].Text != state[1].Text {
		t.Error("merge touched the wrong task")
	}
}

func TestReduceApplyTranslationDoesNotOverwrite(t *testing.T) {
	state := []model.Task{{ID: "a", Text: model.Text{En: "user edit", Ar: "مهمة"}}}

	next, changed := Reduce(state, ApplyTranslation{ID: "a", Lang: model.LangEnglish, Text: "late translation"})
	if changed {
		t.Error("merge into a filled slot should be a no-op")
	}
	if next[0].Text.En != "user edit" {
		t.Errorf("Text.En = %q, user edit was overwritten", next[0].Text.En)
	}
}

func TestReduceApplyTranslationAfterDelete(t *testing.T) {
	state := []model.Task{{ID: "a", Text: model.Text{Ar: "مهمة"}}}

	afterDelete, _ := Reduce(state, Delete{ID: "a"})
	next, changed := Reduce(afterDelete, ApplyTranslation{ID: "a", Lang: model.LangEnglish, Text: "task"})
	if changed || len(next) != 0 {
		t.Error("late-arriving merge for a deleted task should be a no-op")
	}
}

func TestReduceReplaceAll(t *testing.T) {
	replacement := sampleTasks()
	next, changed := Reduce(nil, ReplaceAll{Tasks: replacement})
	if !changed {
		t.Fatal("replace_all should report a change")
	}
	if !reflect.DeepEqual(next, replacement) {
		t.Errorf("next = %+v, want %+v", next, replacement)
	}
}

func TestReduceNilActionIsNoOp(t *testing.T) {
	state := sampleTasks()
	next, changed := Reduce(state, nil)
	if changed || !reflect.DeepEqual(next, state) {
		t.Error("nil action should leave state unchanged")
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	state := sampleTasks()
	snapshot := make([]model.Task, len(state))
	copy(snapshot, state)

	Reduce(state, Check{ID: "a"})
	Reduce(state, Edit{ID: "a", Title: model.Text{En: "changed title"}})
	Reduce(state, Delete{ID: "b"})

	if !reflect.DeepEqual(state, snapshot) {
		t.Error("Reduce mutated its input slice")
	}
}
