package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bilingual-todo/internal/model"
)

const (
	tasksKey    = "todos"
	languageKey = "arabic"
)

// TaskRepository is the persistence gateway for the task list and the
// language preference flag.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Save serializes the full task list and writes it under the tasks key.
func (r *TaskRepository) Save(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return r.put(ctx, tasksKey, string(payload))
}

// Load reads the stored task list and sanitizes every record
// independently. An absent key or unparsable value yields an empty
// list, never an error; an error is only returned when the store itself
// cannot be read.
func (r *TaskRepository) Load(ctx context.Context) ([]model.Task, error) {
	raw, found, err := r.get(ctx, tasksKey)
	if err != nil {
		return []model.Task{}, err
	}
	if !found {
		return []model.Task{}, nil
	}

	var entries []any
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []model.Task{}, nil
	}
	return model.SanitizeTasks(entries), nil
}

// SaveLanguage stores whether Arabic is the active display language.
func (r *TaskRepository) SaveLanguage(ctx context.Context, arabic bool) error {
	payload, err := json.Marshal(arabic)
	if err != nil {
		return fmt.Errorf("encode language: %w", err)
	}
	return r.put(ctx, languageKey, string(payload))
}

// LoadLanguage reads the language preference, defaulting to English.
func (r *TaskRepository) LoadLanguage(ctx context.Context) (bool, error) {
	raw, found, err := r.get(ctx, languageKey)
	if err != nil || !found {
		return false, err
	}
	var arabic bool
	if err := json.Unmarshal([]byte(raw), &arabic); err != nil {
		return false, nil
	}
	return arabic, nil
}

func (r *TaskRepository) put(ctx context.Context, key, value string) error {
	record := KVRecord{Key: key, Value: value}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record).Error; err != nil {
		return fmt.Errorf("store %q: %w", key, err)
	}
	return nil
}

func (r *TaskRepository) get(ctx context.Context, key string) (string, bool, error) {
	var record KVRecord
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %q: %w", key, err)
	}
	return record.Value, true, nil
}
