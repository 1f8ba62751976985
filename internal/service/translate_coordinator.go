package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"bilingual-todo/internal/model"
	"bilingual-todo/internal/store"
	"bilingual-todo/internal/translate"
)

// TranslateCoordinator keeps the bilingual title populated in both
// languages without blocking user actions. It observes store changes
// and, when the most-recently-added task has content in only one
// language, requests a translation into the missing one and merges the
// result back through the normal dispatch path.
type TranslateCoordinator struct {
	store      *store.Store
	translator translate.Translator
	log        *zap.SugaredLogger
	timeout    time.Duration
	changes    <-chan struct{}
}

func NewTranslateCoordinator(s *store.Store, translator translate.Translator, log *zap.SugaredLogger, timeout time.Duration) *TranslateCoordinator {
	if timeout <= 0 {
		timeout = translate.DefaultTimeout
	}
	return &TranslateCoordinator{
		store:      s,
		translator: translator,
		log:        log,
		timeout:    timeout,
		changes:    s.Subscribe(),
	}
}

// Run processes change notifications until the context is canceled.
func (c *TranslateCoordinator) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.changes:
			c.Sweep(ctx)
		}
	}
}

// Sweep performs one observation cycle: pick a candidate, translate,
// merge. Failures are logged and dropped; translation is best-effort
// enrichment and never fails the primary flow.
func (c *TranslateCoordinator) Sweep(ctx context.Context) {
	task, from, to, ok := c.candidate(c.store.Tasks())
	if !ok {
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.translator.Translate(callCtx, from, to, task.Text.Get(from))
	if err != nil {
		c.log.Warnw("translate task", "id", task.ID, "from", from, "to", to, "error", err)
		return
	}

	// Merge targets the task by id, not position: if the task was
	// deleted or its empty side filled meanwhile, this is a no-op.
	c.store.Dispatch(ctx, store.ApplyTranslation{ID: task.ID, Lang: to, Text: result})
}

// candidate encodes the translation policy: only the last task in the
// list is ever considered, and only when exactly one language side has
// content. Earlier tasks with a language gap are left alone.
func (c *TranslateCoordinator) candidate(tasks []model.Task) (task model.Task, from, to model.Lang, ok bool) {
	if len(tasks) == 0 {
		return model.Task{}, "", "", false
	}
	last := tasks[len(tasks)-1]

	hasEn := last.Text.En != ""
	hasAr := last.Text.Ar != ""
	switch {
	case hasEn && !hasAr:
		return last, model.LangEnglish, model.LangArabic, true
	case hasAr && !hasEn:
		return last, model.LangArabic, model.LangEnglish, true
	default:
		// Both filled or both empty: nothing to do.
		return model.Task{}, "", "", false
	}
}
