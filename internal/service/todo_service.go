package service

import (
	"errors"

	"github.com/edupack/scorm-server/internal/models"
	"github.com/edupack/scorm-server/internal/repository"
)

// ErrTitleRequired is returned when a create payload omits the title key.
var ErrTitleRequired = errors.New("Title is required")

type TodoService struct {
	repo repository.TodoRepo
}

func NewTodoService(repo repository.TodoRepo) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) List() []models.Todo {
	return s.repo.List()
}

func (s *TodoService) Get(id int) (models.Todo, error) {
	return s.repo.Get(id)
}

// Create requires a title; completed defaults to false when nil.
func (s *TodoService) Create(title *string, completed *bool) (models.Todo, error) {
	if title == nil {
		return models.Todo{}, ErrTitleRequired
	}
	done := false
	if completed != nil {
		done = *completed
	}
	return s.repo.Create(*title, done), nil
}

// Update applies a partial payload: nil fields keep their current values.
func (s *TodoService) Update(id int, title *string, completed *bool) (models.Todo, error) {
	return s.repo.Update(id, title, completed)
}

func (s *TodoService) Delete(id int) error {
	return s.repo.Delete(id)
}
