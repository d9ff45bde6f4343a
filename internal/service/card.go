package service

import (
	"time"

	"github.com/taskan-dev/taskan/internal/access"
	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
	"github.com/taskan-dev/taskan/internal/validation"
)

type CardService interface {
	Create(userId domain.UserId, boardId domain.BoardId, listId domain.ListId, data domain.CardCreationData) (*domain.Card, error)
	Move(userId domain.UserId, cardId domain.CardId, newListId domain.ListId, position *int) (*domain.Card, error)
	Patch(userId domain.UserId, cardId domain.CardId, patch domain.CardPatch) (*domain.Card, error)
}

type Card struct {
	storage   CardStorage
	validator CardValidator
	now       func() time.Time
}

type CardStorage interface {
	GetBoard(id domain.BoardId) (*domain.Board, error)
	BoardByList(listId domain.ListId) (*domain.Board, error)
	BoardByCard(cardId domain.CardId) (*domain.Board, error)
	// CreateCard appends the card to its list, assigning position =
	// sibling count inside the board's critical section.
	CreateCard(card *domain.Card) (*domain.Card, error)
	// MoveCard detaches the card from its current list, attaches it to the
	// destination and updates the card's own list and position fields as
	// one atomic unit.
	MoveCard(cardId domain.CardId, listId domain.ListId, position int) (*domain.Card, error)
	UpdateCard(card *domain.Card) error
}

type CardValidator interface {
	Title(title domain.CardTitle) error
	Patch(patch *domain.CardPatch) error
}

func NewCard(storage CardStorage, validator CardValidator) CardService {
	return &Card{storage, validator, time.Now}
}

func (s *Card) Create(userId domain.UserId, boardId domain.BoardId, listId domain.ListId, data domain.CardCreationData) (*domain.Card, error) {
	board, err := s.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(board, userId) {
		return nil, &errors.AccessDeniedError{}
	}
	if board.FindList(listId) == nil {
		return nil, &errors.NotFoundError{Message: "List does not belong to the board"}
	}

	data.Title = validation.Sanitize(data.Title)
	data.Description = validation.Sanitize(data.Description)
	if err := s.validator.Title(data.Title); err != nil {
		return nil, err
	}

	var dueDate *time.Time
	if data.DueDate != "" {
		due, err := validation.ParseDueDate(data.DueDate)
		if err != nil {
			return nil, err
		}
		dueDate = &due
	}

	return s.storage.CreateCard(domain.NewCard(data, listId, userId, dueDate, s.now()))
}

// Move relocates the card to newListId. Access is checked against the
// destination board. Without an explicit position the card goes to the
// front of the destination list.
func (s *Card) Move(userId domain.UserId, cardId domain.CardId, newListId domain.ListId, position *int) (*domain.Card, error) {
	board, err := s.storage.BoardByList(newListId)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(board, userId) {
		return nil, &errors.AccessDeniedError{}
	}

	pos := 0
	if position != nil {
		if *position < 0 {
			return nil, &errors.ValidationError{Message: "position must not be negative"}
		}
		pos = *position
	}

	return s.storage.MoveCard(cardId, newListId, pos)
}

// Patch applies a whitelisted partial update. An empty due-date string
// clears the due date; a malformed one is a validation error.
func (s *Card) Patch(userId domain.UserId, cardId domain.CardId, patch domain.CardPatch) (*domain.Card, error) {
	board, err := s.storage.BoardByCard(cardId)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(board, userId) {
		return nil, &errors.AccessDeniedError{}
	}

	if err := s.validator.Patch(&patch); err != nil {
		return nil, err
	}

	card, _ := board.FindCard(cardId)
	if card == nil {
		return nil, &errors.NotFoundError{Message: "Card not found"}
	}

	if patch.Title != nil {
		card.Title = validation.Sanitize(*patch.Title)
	}
	if patch.Description != nil {
		card.Description = validation.Sanitize(*patch.Description)
	}
	if patch.Priority != nil {
		card.Priority = *patch.Priority
	}
	if patch.Status != nil {
		card.Status = *patch.Status
	}
	if patch.DueDate != nil {
		if *patch.DueDate == "" {
			card.DueDate = nil
		} else {
			due, err := validation.ParseDueDate(*patch.DueDate)
			if err != nil {
				return nil, err
			}
			card.DueDate = &due
		}
	}
	if patch.AssignedTo != nil {
		card.Assignees = append([]domain.UserId{}, (*patch.AssignedTo)...)
	}

	if err := s.storage.UpdateCard(card); err != nil {
		return nil, err
	}
	return card, nil
}
