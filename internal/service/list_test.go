package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
	"github.com/taskan-dev/taskan/internal/validation"
)

// MockListStorage mocks the ListStorage interface.
type MockListStorage struct {
	getBoardFunc   func(id domain.BoardId) (*domain.Board, error)
	createListFunc func(list *domain.List) (*domain.List, error)
}

func (m *MockListStorage) GetBoard(id domain.BoardId) (*domain.Board, error) {
	if m.getBoardFunc != nil {
		return m.getBoardFunc(id)
	}
	return nil, &errors.NotFoundError{Message: "Board not found"}
}

func (m *MockListStorage) CreateList(list *domain.List) (*domain.List, error) {
	if m.createListFunc != nil {
		return m.createListFunc(list)
	}
	return list, nil
}

func TestListCreate(t *testing.T) {
	owner := uuid.New()
	board := domain.NewBoard(domain.BoardCreationData{Name: "b"}, owner, time.Now())
	storage := &MockListStorage{
		getBoardFunc: func(id domain.BoardId) (*domain.Board, error) { return board, nil },
	}
	s := NewList(storage, &validation.ListValidator{})

	list, err := s.Create(owner, board.Id, domain.ListCreationData{Name: "  To Do  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Name != "To Do" {
		t.Errorf("name = %q, want sanitized %q", list.Name, "To Do")
	}
	if list.BoardId != board.Id {
		t.Errorf("boardId = %v, want %v", list.BoardId, board.Id)
	}
}

func TestListCreateAccessDenied(t *testing.T) {
	board := domain.NewBoard(domain.BoardCreationData{Name: "b"}, uuid.New(), time.Now())
	storage := &MockListStorage{
		getBoardFunc: func(id domain.BoardId) (*domain.Board, error) { return board, nil },
		createListFunc: func(list *domain.List) (*domain.List, error) {
			t.Fatal("storage must not be reached for non-members")
			return nil, nil
		},
	}
	s := NewList(storage, &validation.ListValidator{})

	_, err := s.Create(uuid.New(), board.Id, domain.ListCreationData{Name: "To Do"})
	if !errors.Is[*errors.AccessDeniedError](err) {
		t.Errorf("want AccessDeniedError, got %v", err)
	}
}

func TestListCreateEmptyName(t *testing.T) {
	owner := uuid.New()
	board := domain.NewBoard(domain.BoardCreationData{Name: "b"}, owner, time.Now())
	storage := &MockListStorage{
		getBoardFunc: func(id domain.BoardId) (*domain.Board, error) { return board, nil },
	}
	s := NewList(storage, &validation.ListValidator{})

	_, err := s.Create(owner, board.Id, domain.ListCreationData{Name: "   "})
	if !errors.Is[*errors.ValidationError](err) {
		t.Errorf("want ValidationError, got %v", err)
	}
}

func TestListCreateUnknownBoard(t *testing.T) {
	s := NewList(&MockListStorage{}, &validation.ListValidator{})

	_, err := s.Create(uuid.New(), uuid.New(), domain.ListCreationData{Name: "To Do"})
	if !errors.Is[*errors.NotFoundError](err) {
		t.Errorf("want NotFoundError, got %v", err)
	}
}
