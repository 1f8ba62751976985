package store

import "bilingual-todo/internal/model"

// Reduce computes the next task list from the current one and an action.
// It is a pure function: the input slice is never mutated, and every
// rejected or unrecognized action returns the current state with
// changed=false. Rejection is silent; callers that need user-facing
// feedback pre-validate before dispatching.
func Reduce(current []model.Task, action Action) (next []model.Task, changed bool) {
	switch a := action.(type) {
	case ReplaceAll:
		return a.Tasks, true

	case Add:
		if !model.ValidTitle(a.Title) {
			return current, false
		}
		next = make([]model.Task, 0, len(current)+1)
		next = append(next, current...)
		next = append(next, model.NewTask(a.Title))
		return next, true

	case Check:
		return mutateByID(current, a.ID, func(t model.Task) model.Task {
			t.Completed = !t.Completed
			return t
		})

	case Delete:
		if !taskExists(current, a.ID) {
			return current, false
		}
		next = make([]model.Task, 0, len(current)-1)
		for _, t := range current {
			if t.ID != a.ID {
				next = append(next, t)
			}
		}
		return next, true

	case Edit:
		if !model.ValidTitle(a.Title) {
			return current, false
		}
		return mutateByID(current, a.ID, func(t model.Task) model.Task {
			t.Text = a.Title.Trimmed()
			return t
		})

	case Prioritize:
		if !model.IsValidPriority(a.Priority) {
			return current, false
		}
		return mutateByID(current, a.ID, func(t model.Task) model.Task {
			t.Priority = a.Priority
			return t
		})

	case ApplyTranslation:
		if a.Text == "" || !model.IsValidLang(a.Lang) {
			return current, false
		}
		return mutateByID(current, a.ID, func(t model.Task) model.Task {
			// Only fill an empty slot; a user edit that landed while the
			// translation was in flight wins.
			if t.Text.Get(a.Lang) != "" {
				return t
			}
			if a.Lang == model.LangArabic {
				t.Text.Ar = a.Text
			} else {
				t.Text.En = a.Text
			}
			return t
		})

	default:
		return current, false
	}
}

func taskExists(tasks []model.Task, id string) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}

// mutateByID applies fn to the task with the given id, copying the list.
// If the id is absent, or fn leaves the task unchanged, the original
// list is returned with changed=false.
func mutateByID(tasks []model.Task, id string, fn func(model.Task) model.Task) ([]model.Task, bool) {
	if id == "" || !taskExists(tasks, id) {
		return tasks, false
	}
	next := make([]model.Task, len(tasks))
	changed := false
	for i, t := range tasks {
		if t.ID == id {
			updated := fn(t)
			if updated != t {
				changed = true
			}
			next[i] = updated
			continue
		}
		next[i] = t
	}
	if !changed {
		return tasks, false
	}
	return next, true
}
