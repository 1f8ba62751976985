package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"bilingual-todo/internal/model"
	"bilingual-todo/internal/store"
)

func TestLogSummaryCounts(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core).Sugar()

	s := store.New(&jsonGateway{}, zap.NewNop().Sugar())
	s.Dispatch(context.Background(), store.ReplaceAll{Tasks: []model.Task{
		{ID: "a", Text: model.Text{En: "done", Ar: "تم"}, Completed: true},
		{ID: "b", Text: model.Text{En: "open both", Ar: "مفتوحة"}},
		{ID: "c", Text: model.Text{En: "half translated"}},
	}})

	NewReportService(s, logger).LogSummary()

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	want := map[string]int64{"total": 3, "completed": 1, "pending": 2, "untranslated": 1}
	for key, value := range want {
		if got := fields[key]; got != value {
			t.Errorf("%s = %v, want %d", key, got, value)
		}
	}
}
