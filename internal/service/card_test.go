package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
	"github.com/taskan-dev/taskan/internal/validation"
)

// MockCardStorage mocks the CardStorage interface.
type MockCardStorage struct {
	getBoardFunc    func(id domain.BoardId) (*domain.Board, error)
	boardByListFunc func(listId domain.ListId) (*domain.Board, error)
	boardByCardFunc func(cardId domain.CardId) (*domain.Board, error)
	createCardFunc  func(card *domain.Card) (*domain.Card, error)
	moveCardFunc    func(cardId domain.CardId, listId domain.ListId, position int) (*domain.Card, error)
	updateCardFunc  func(card *domain.Card) error
}

func (m *MockCardStorage) GetBoard(id domain.BoardId) (*domain.Board, error) {
	if m.getBoardFunc != nil {
		return m.getBoardFunc(id)
	}
	return nil, &errors.NotFoundError{Message: "Board not found"}
}

func (m *MockCardStorage) BoardByList(listId domain.ListId) (*domain.Board, error) {
	if m.boardByListFunc != nil {
		return m.boardByListFunc(listId)
	}
	return nil, &errors.NotFoundError{Message: "List not found"}
}

func (m *MockCardStorage) BoardByCard(cardId domain.CardId) (*domain.Board, error) {
	if m.boardByCardFunc != nil {
		return m.boardByCardFunc(cardId)
	}
	return nil, &errors.NotFoundError{Message: "Card not found"}
}

func (m *MockCardStorage) CreateCard(card *domain.Card) (*domain.Card, error) {
	if m.createCardFunc != nil {
		return m.createCardFunc(card)
	}
	return card, nil
}

func (m *MockCardStorage) MoveCard(cardId domain.CardId, listId domain.ListId, position int) (*domain.Card, error) {
	if m.moveCardFunc != nil {
		return m.moveCardFunc(cardId, listId, position)
	}
	return nil, nil
}

func (m *MockCardStorage) UpdateCard(card *domain.Card) error {
	if m.updateCardFunc != nil {
		return m.updateCardFunc(card)
	}
	return nil
}

// boardWithList builds a populated single-list board owned by owner.
func boardWithList(owner domain.UserId) (*domain.Board, *domain.List) {
	board := domain.NewBoard(domain.BoardCreationData{Name: "b"}, owner, time.Now())
	list := domain.NewList(domain.ListCreationData{Name: "Todo"}, board.Id, time.Now())
	board.Lists = append(board.Lists, list)
	return board, list
}

func TestCardCreateDefaults(t *testing.T) {
	owner := uuid.New()
	board, list := boardWithList(owner)

	storage := &MockCardStorage{
		getBoardFunc: func(id domain.BoardId) (*domain.Board, error) { return board, nil },
	}
	s := NewCard(storage, &validation.CardValidator{})

	card, err := s.Create(owner, board.Id, list.Id, domain.CardCreationData{Title: "task"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if card.Priority != domain.PriorityLow {
		t.Errorf("priority = %v, want default low", card.Priority)
	}
	if card.Status != domain.StatusTodo {
		t.Errorf("status = %v, want default todo", card.Status)
	}
	if card.CreatorId != owner {
		t.Errorf("creator = %v, want caller", card.CreatorId)
	}
	if card.Assignees == nil {
		t.Error("assignees must be initialized")
	}
}

func TestCardCreateListNotOnBoard(t *testing.T) {
	owner := uuid.New()
	board, _ := boardWithList(owner)

	storage := &MockCardStorage{
		getBoardFunc: func(id domain.BoardId) (*domain.Board, error) { return board, nil },
	}
	s := NewCard(storage, &validation.CardValidator{})

	_, err := s.Create(owner, board.Id, uuid.New(), domain.CardCreationData{Title: "task"})
	if !errors.Is[*errors.NotFoundError](err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestCardCreateMalformedDueDate(t *testing.T) {
	owner := uuid.New()
	board, list := boardWithList(owner)

	storage := &MockCardStorage{
		getBoardFunc: func(id domain.BoardId) (*domain.Board, error) { return board, nil },
	}
	s := NewCard(storage, &validation.CardValidator{})

	_, err := s.Create(owner, board.Id, list.Id, domain.CardCreationData{Title: "task", DueDate: "not-a-date"})
	if !errors.Is[*errors.ValidationError](err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestCardMoveDefaultsToFront(t *testing.T) {
	owner := uuid.New()
	board, list := boardWithList(owner)

	var gotPos = -1
	storage := &MockCardStorage{
		boardByListFunc: func(listId domain.ListId) (*domain.Board, error) { return board, nil },
		moveCardFunc: func(cardId domain.CardId, listId domain.ListId, position int) (*domain.Card, error) {
			gotPos = position
			return &domain.Card{Id: cardId, ListId: listId, Position: position}, nil
		},
	}
	s := NewCard(storage, &validation.CardValidator{})

	if _, err := s.Move(owner, uuid.New(), list.Id, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPos != 0 {
		t.Errorf("default move position = %d, want 0", gotPos)
	}
}

func TestCardMoveNegativePosition(t *testing.T) {
	owner := uuid.New()
	board, list := boardWithList(owner)

	storage := &MockCardStorage{
		boardByListFunc: func(listId domain.ListId) (*domain.Board, error) { return board, nil },
	}
	s := NewCard(storage, &validation.CardValidator{})

	pos := -1
	_, err := s.Move(owner, uuid.New(), list.Id, &pos)
	if !errors.Is[*errors.ValidationError](err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestCardMoveChecksDestinationBoard(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	board, list := boardWithList(owner)

	moved := false
	storage := &MockCardStorage{
		boardByListFunc: func(listId domain.ListId) (*domain.Board, error) { return board, nil },
		moveCardFunc: func(cardId domain.CardId, listId domain.ListId, position int) (*domain.Card, error) {
			moved = true
			return nil, nil
		},
	}
	s := NewCard(storage, &validation.CardValidator{})

	_, err := s.Move(stranger, uuid.New(), list.Id, nil)
	if !errors.Is[*errors.AccessDeniedError](err) {
		t.Errorf("expected AccessDeniedError, got %v", err)
	}
	if moved {
		t.Error("move must not reach storage when access is denied")
	}
}

func TestCardPatchDueDateRoundTrip(t *testing.T) {
	owner := uuid.New()
	board, list := boardWithList(owner)
	card := domain.NewCard(domain.CardCreationData{Title: "task"}, list.Id, owner, nil, time.Now())
	list.Cards = append(list.Cards, card)

	storage := &MockCardStorage{
		boardByCardFunc: func(cardId domain.CardId) (*domain.Board, error) { return board, nil },
	}
	s := NewCard(storage, &validation.CardValidator{})

	iso := "2026-09-15T00:00:00Z"
	got, err := s.Patch(owner, card.Id, domain.CardPatch{DueDate: &iso})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := time.Parse(time.RFC3339, iso)
	if got.DueDate == nil || !got.DueDate.Equal(want) {
		t.Errorf("due date = %v, want %v", got.DueDate, want)
	}
}

func TestCardPatchClearsDueDate(t *testing.T) {
	owner := uuid.New()
	board, list := boardWithList(owner)
	due := time.Now().Add(24 * time.Hour)
	card := domain.NewCard(domain.CardCreationData{Title: "task"}, list.Id, owner, &due, time.Now())
	list.Cards = append(list.Cards, card)

	storage := &MockCardStorage{
		boardByCardFunc: func(cardId domain.CardId) (*domain.Board, error) { return board, nil },
	}
	s := NewCard(storage, &validation.CardValidator{})

	empty := ""
	got, err := s.Patch(owner, card.Id, domain.CardPatch{DueDate: &empty})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DueDate != nil {
		t.Errorf("due date = %v, want cleared", got.DueDate)
	}
}

func TestCardPatchRejectsUnknownEnums(t *testing.T) {
	owner := uuid.New()
	board, list := boardWithList(owner)
	card := domain.NewCard(domain.CardCreationData{Title: "task"}, list.Id, owner, nil, time.Now())
	list.Cards = append(list.Cards, card)

	updated := false
	storage := &MockCardStorage{
		boardByCardFunc: func(cardId domain.CardId) (*domain.Board, error) { return board, nil },
		updateCardFunc:  func(card *domain.Card) error { updated = true; return nil },
	}
	s := NewCard(storage, &validation.CardValidator{})

	bad := domain.Status("paused")
	_, err := s.Patch(owner, card.Id, domain.CardPatch{Status: &bad})
	if !errors.Is[*errors.ValidationError](err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
	if updated {
		t.Error("storage must not be touched on validation failure")
	}
}
