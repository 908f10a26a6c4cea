package repository

import (
	"errors"
	"sync"

	"github.com/edupack/scorm-server/internal/models"
)

// ErrNotFound is returned when no todo has the requested id.
var ErrNotFound = errors.New("todo not found")

// TodoRepo is the storage abstraction for todos. The server ships with the
// in-memory implementation below; a persistent backend only needs to satisfy
// this interface.
type TodoRepo interface {
	List() []models.Todo
	Get(id int) (models.Todo, error)
	Create(title string, completed bool) models.Todo
	Update(id int, title *string, completed *bool) (models.Todo, error)
	Delete(id int) error
}

// MemoryTodoRepo keeps todos in an ordered slice guarded by a mutex, so
// concurrent creates cannot assign the same id. Nothing is persisted; the
// collection resets to the seed on restart.
type MemoryTodoRepo struct {
	mu    sync.Mutex
	todos []models.Todo
}

// DefaultSeed is the fixed collection present at process start.
func DefaultSeed() []models.Todo {
	return []models.Todo{
		{ID: 1, Title: "Learn Go", Completed: false},
		{ID: 2, Title: "Learn SCORM packaging", Completed: false},
		{ID: 3, Title: "Build the course uploader", Completed: false},
	}
}

func NewMemoryTodoRepo(seed []models.Todo) *MemoryTodoRepo {
	r := &MemoryTodoRepo{}
	r.todos = append(r.todos, seed...)
	return r
}

func (r *MemoryTodoRepo) List() []models.Todo {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Todo, len(r.todos))
	copy(out, r.todos)
	return out
}

func (r *MemoryTodoRepo) Get(id int) (models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.todos {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Todo{}, ErrNotFound
}

// Create assigns max existing id + 1 (1 on an empty collection) and appends.
func (r *MemoryTodoRepo) Create(title string, completed bool) models.Todo {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := 1
	for _, t := range r.todos {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	todo := models.Todo{ID: id, Title: title, Completed: completed}
	r.todos = append(r.todos, todo)
	return todo
}

// Update applies only the non-nil fields and returns the merged record.
func (r *MemoryTodoRepo) Update(id int, title *string, completed *bool) (models.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.todos {
		if r.todos[i].ID != id {
			continue
		}
		if title != nil {
			r.todos[i].Title = *title
		}
		if completed != nil {
			r.todos[i].Completed = *completed
		}
		return r.todos[i], nil
	}
	return models.Todo{}, ErrNotFound
}

func (r *MemoryTodoRepo) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, t := range r.todos {
		if t.ID == id {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
