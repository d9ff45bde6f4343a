package service

import (
	"time"

	"github.com/taskan-dev/taskan/internal/access"
	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
	"github.com/taskan-dev/taskan/internal/validation"
)

type ListService interface {
	Create(userId domain.UserId, boardId domain.BoardId, data domain.ListCreationData) (*domain.List, error)
}

type List struct {
	storage   ListStorage
	validator ListValidator
	now       func() time.Time
}

type ListStorage interface {
	GetBoard(id domain.BoardId) (*domain.Board, error)
	// CreateList appends the list to its board, assigning position =
	// sibling count inside the board's critical section.
	CreateList(list *domain.List) (*domain.List, error)
}

type ListValidator interface {
	Name(name domain.ListName) error
}

func NewList(storage ListStorage, validator ListValidator) ListService {
	return &List{storage, validator, time.Now}
}

func (s *List) Create(userId domain.UserId, boardId domain.BoardId, data domain.ListCreationData) (*domain.List, error) {
	board, err := s.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(board, userId) {
		return nil, &errors.AccessDeniedError{}
	}

	data.Name = validation.Sanitize(data.Name)
	if err := s.validator.Name(data.Name); err != nil {
		return nil, err
	}

	return s.storage.CreateList(domain.NewList(data, boardId, s.now()))
}
