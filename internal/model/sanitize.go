package model

import "strconv"

// Sanitization of untrusted stored data. Persisted task lists can be
// hand-edited or carry a legacy shape; each record is coerced back into
// a valid Task independently, and unrecoverable records are dropped.

// SanitizeTasks coerces a decoded JSON array into well-formed tasks.
// Records that are not objects or lack an id are skipped.
func SanitizeTasks(raw []any) []Task {
	tasks := make([]Task, 0, len(raw))
	for _, entry := range raw {
		if task, ok := SanitizeTask(entry); ok {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// SanitizeTask coerces a single decoded JSON value into a Task. The id
// is the only required field; everything else degrades to a default.
func SanitizeTask(raw any) (Task, bool) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Task{}, false
	}

	id, ok := sanitizeID(obj["id"])
	if !ok {
		return Task{}, false
	}

	task := Task{
		ID:        id,
		Text:      sanitizeText(obj["text"]),
		Completed: sanitizeBool(obj["completed"]),
		Priority:  sanitizePriority(obj["priority"]),
		DueDate:   sanitizeDueDate(obj["dueDate"]),
	}
	return task, true
}

// sanitizeID accepts any non-empty id and coerces it to a string, so
// legacy records with numeric ids survive a reload. Only records with
// no usable id at all are dropped.
func sanitizeID(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, v != ""
	case float64:
		if v == 0 {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		if !v {
			return "", false
		}
		return "true", true
	default:
		return "", false
	}
}

func sanitizeText(raw any) Text {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Text{}
	}
	var text Text
	if en, ok := obj["en"].(string); ok {
		text.En = en
	}
	if ar, ok := obj["ar"].(string); ok {
		text.Ar = ar
	}
	return text
}

// sanitizeBool mirrors loose truthiness: legacy stores hold values like
// 1 or "yes" for completed, and those load as true.
func sanitizeBool(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	case nil:
		return false
	default:
		return true
	}
}

func sanitizePriority(raw any) Priority {
	if s, ok := raw.(string); ok && IsValidPriority(Priority(s)) {
		return Priority(s)
	}
	return PriorityLow
}

func sanitizeDueDate(raw any) string {
	if s, ok := raw.(string); ok && s != "" {
		return s
	}
	return TodaysDate()
}
