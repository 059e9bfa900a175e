package storage

import (
	"context"
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sandeepkv93/mytodo/internal/logging"
	"github.com/sandeepkv93/mytodo/internal/model"
)

// TasksKey is the single key the whole task list is stored under.
const TasksKey = "myTasks"

//go:embed tasks.schema.json
var tasksSchemaJSON string

var tasksSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchemaJSON)

// TaskPersistence reads and writes the full task list as one JSON document.
type TaskPersistence struct {
	kv     KeyValueStore
	logger *log.Logger
}

func NewTaskPersistence(kv KeyValueStore, logger *log.Logger) *TaskPersistence {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TaskPersistence{kv: kv, logger: logger}
}

// Load returns the stored list. Missing, unreadable or malformed data
// yields an empty list; it never fails.
func (p *TaskPersistence) Load(ctx context.Context) []model.Task {
	raw, ok, err := p.kv.GetItem(ctx, TasksKey)
	if err != nil {
		p.logger.Warn("read stored tasks; starting empty", "err", err)
		return []model.Task{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []model.Task{}
	}
	tasks, err := decodeTasks(raw)
	if err != nil {
		p.logger.Warn("discarding corrupt stored tasks", "err", err)
		return []model.Task{}
	}
	return tasks
}

// Save replaces the stored list with tasks.
func (p *TaskPersistence) Save(ctx context.Context, tasks []model.Task) error {
	raw, err := EncodeTasks(tasks)
	if err != nil {
		return &model.PersistenceError{Op: "encode", Err: err}
	}
	if err := p.kv.SetItem(ctx, TasksKey, raw); err != nil {
		return &model.PersistenceError{Op: "save", Err: err}
	}
	return nil
}

// EncodeTasks serializes tasks the way they are stored. A nil list encodes
// as an empty array.
func EncodeTasks(tasks []model.Task) (string, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	raw, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeTasks(raw string) ([]model.Task, error) {
	var doc any
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if err := tasksSchema.Validate(doc); err != nil {
		return nil, err
	}
	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []model.Task{}
	}
	return tasks, nil
}
