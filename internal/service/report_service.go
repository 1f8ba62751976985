package service

import (
	"go.uber.org/zap"

	"bilingual-todo/internal/store"
)

// ReportService logs a periodic summary of the task list: how many
// tasks are done, how many are open, and how many still miss one
// language side. Half-translated tasks older than the newest one are
// never retried by the coordinator, so the report is the only place
// they show up.
type ReportService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewReportService(s *store.Store, log *zap.SugaredLogger) *ReportService {
	return &ReportService{store: s, log: log}
}

// LogSummary writes one summary line for the current list.
func (s *ReportService) LogSummary() {
	tasks := s.store.Tasks()

	var completed, pending, untranslated int
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			pending++
		}
		if t.Text.En == "" || t.Text.Ar == "" {
			untranslated++
		}
	}

	s.log.Infow("task summary",
		"total", len(tasks),
		"completed", completed,
		"pending", pending,
		"untranslated", untranslated,
	)
}
