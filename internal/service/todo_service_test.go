package service

import (
	"errors"
	"testing"

	"github.com/edupack/scorm-server/internal/repository"
)

func TestCreateRequiresTitle(t *testing.T) {
	svc := NewTodoService(repository.NewMemoryTodoRepo(repository.DefaultSeed()))

	_, err := svc.Create(nil, nil)
	if !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("err = %v, want ErrTitleRequired", err)
	}
	if len(svc.List()) != 3 {
		t.Fatal("failed create mutated the collection")
	}
}

func TestCreateDefaultsCompleted(t *testing.T) {
	svc := NewTodoService(repository.NewMemoryTodoRepo(nil))

	title := "Write tests"
	todo, err := svc.Create(&title, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if todo.Completed {
		t.Fatal("completed did not default to false")
	}

	done := true
	todo, err = svc.Create(&title, &done)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !todo.Completed {
		t.Fatal("explicit completed not honored")
	}
}
