// Package store holds the ordered task list and the mutations users make
// to it. Every mutation writes the full list through the Persistence.
package store

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sandeepkv93/mytodo/internal/logging"
	"github.com/sandeepkv93/mytodo/internal/model"
)

type Persistence interface {
	Load(ctx context.Context) []model.Task
	Save(ctx context.Context, tasks []model.Task) error
}

type Store struct {
	persist Persistence
	logger  *log.Logger
	now     func() time.Time
	newID   func() string
	tasks   []model.Task
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New loads the persisted list. Tasks stored without an id get one here;
// it is written back with the next mutation.
func New(ctx context.Context, persist Persistence, opts ...Option) *Store {
	s := &Store{
		persist: persist,
		logger:  logging.Discard(),
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	s.tasks = persist.Load(ctx)
	for i := range s.tasks {
		if s.tasks[i].ID == "" {
			s.tasks[i].ID = s.newID()
		}
	}
	s.logger.Debug("tasks loaded", "count", len(s.tasks))
	return s
}

// Tasks returns a copy of the list, most recently created first.
func (s *Store) Tasks() []model.Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Find(name string) (model.Task, bool) {
	if i := s.indexOfName(name); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

func (s *Store) FindByID(id string) (model.Task, bool) {
	if i := s.indexOfID(id); i >= 0 {
		return s.tasks[i], true
	}
	return model.Task{}, false
}

func (s *Store) Add(ctx context.Context, name, description string) ([]model.Task, error) {
	if err := model.ValidateInput(name, description); err != nil {
		return s.Tasks(), err
	}
	if s.nameTaken(name, -1) {
		return s.Tasks(), &model.DuplicateError{Name: strings.TrimSpace(name)}
	}
	task := model.Task{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		Stamp:       model.NewStamp(s.now()),
	}
	next := make([]model.Task, 0, len(s.tasks)+1)
	next = append(next, task)
	next = append(next, s.tasks...)
	return s.commit(ctx, next, "add", task.Name)
}

// BeginEdit returns the task to load into an edit form. Completed tasks
// cannot be edited.
func (s *Store) BeginEdit(name string) (model.Task, error) {
	i := s.indexOfName(name)
	if i < 0 {
		return model.Task{}, &model.NotFoundError{Key: name}
	}
	if s.tasks[i].Completed {
		return model.Task{}, &model.CompletedError{Name: s.tasks[i].Name}
	}
	return s.tasks[i], nil
}

// Edit renames and redescribes the task currently named originalName.
func (s *Store) Edit(ctx context.Context, originalName, newName, newDescription string) ([]model.Task, error) {
	if err := model.ValidateInput(newName, newDescription); err != nil {
		return s.Tasks(), err
	}
	i := s.indexOfName(originalName)
	if i < 0 {
		return s.Tasks(), &model.NotFoundError{Key: originalName}
	}
	return s.editAt(ctx, i, newName, newDescription)
}

func (s *Store) EditByID(ctx context.Context, id, newName, newDescription string) ([]model.Task, error) {
	if err := model.ValidateInput(newName, newDescription); err != nil {
		return s.Tasks(), err
	}
	i := s.indexOfID(id)
	if i < 0 {
		return s.Tasks(), &model.NotFoundError{Key: id}
	}
	return s.editAt(ctx, i, newName, newDescription)
}

func (s *Store) editAt(ctx context.Context, i int, newName, newDescription string) ([]model.Task, error) {
	if s.tasks[i].Completed {
		return s.Tasks(), &model.CompletedError{Name: s.tasks[i].Name}
	}
	if s.nameTaken(newName, i) {
		return s.Tasks(), &model.DuplicateError{Name: strings.TrimSpace(newName)}
	}
	next := slices.Clone(s.tasks)
	next[i].Name = newName
	next[i].Description = newDescription
	next[i].Edited = true
	return s.commit(ctx, next, "edit", newName)
}

// Delete removes every task named name. A missing name is not an error.
func (s *Store) Delete(ctx context.Context, name string) ([]model.Task, error) {
	next := slices.DeleteFunc(slices.Clone(s.tasks), func(t model.Task) bool {
		return t.Name == name
	})
	return s.commit(ctx, next, "delete", name)
}

func (s *Store) ToggleComplete(ctx context.Context, name string) ([]model.Task, error) {
	next := slices.Clone(s.tasks)
	for i := range next {
		if next[i].Name == name {
			next[i].Completed = !next[i].Completed
		}
	}
	return s.commit(ctx, next, "toggle", name)
}

// commit installs next and persists it. A failed save keeps the change in
// memory and returns the *model.PersistenceError for the caller to surface.
func (s *Store) commit(ctx context.Context, next []model.Task, op, name string) ([]model.Task, error) {
	s.tasks = next
	if err := s.persist.Save(ctx, s.tasks); err != nil {
		if !errors.Is(err, model.ErrPersistence) {
			err = &model.PersistenceError{Op: "save", Err: err}
		}
		s.logger.Warn("save failed; change kept in memory", "op", op, "task", name, "err", err)
		return s.Tasks(), err
	}
	s.logger.Debug("tasks saved", "op", op, "task", name, "count", len(s.tasks))
	return s.Tasks(), nil
}

func (s *Store) nameTaken(name string, except int) bool {
	for i, t := range s.tasks {
		if i != except && model.SameName(t.Name, name) {
			return true
		}
	}
	return false
}

func (s *Store) indexOfName(name string) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.Name == name })
}

func (s *Store) indexOfID(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}
