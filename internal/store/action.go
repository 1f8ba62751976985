package store

import "bilingual-todo/internal/model"

// Action is a mutation intent dispatched into the Store. The reducer
// treats any action kind it does not recognize as a no-op.
type Action interface {
	isAction()
}

// ReplaceAll swaps the entire task list. This is the trusted bulk-load
// path used when hydrating from persistence.
type ReplaceAll struct {
	Tasks []model.Task
}

// Add appends a new task built from the given title, if the title is
// valid in at least one language.
type Add struct {
	Title model.Text
}

// Check toggles the completed flag of the task with the given id.
type Check struct {
	ID string
}

// Delete removes the task with the given id.
type Delete struct {
	ID string
}

// Edit replaces the title of the task with the given id, subject to the
// same validation as Add.
type Edit struct {
	ID    string
	Title model.Text
}

// Prioritize sets the priority of the task with the given id.
type Prioritize struct {
	ID       string
	Priority model.Priority
}

// ApplyTranslation is the coordinator's corrective action: it fills the
// given language slot of the task with the given id, but only if that
// slot is still empty. Targeting by id keeps a late-arriving translation
// from clobbering a task that was edited or deleted in the meantime.
type ApplyTranslation struct {
	ID   string
	Lang model.Lang
	Text string
}

func (ReplaceAll) isAction()       {}
func (Add) isAction()              {}
func (Check) isAction()            {}
func (Delete) isAction()           {}
func (Edit) isAction()             {}
func (Prioritize) isAction()       {}
func (ApplyTranslation) isAction() {}
