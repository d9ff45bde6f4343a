package memory

import (
	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
	"github.com/taskan-dev/taskan/internal/ordering"
)

// CreateCard appends the card to its list, assigning position under the
// store lock.
func (s *Storage) CreateCard(card *domain.Card) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, list := s.findList(card.ListId)
	if list == nil {
		return nil, &errors.NotFoundError{Message: "List not found"}
	}

	stored := cloneCard(card)
	stored.Position = ordering.AppendPosition(len(list.Cards))
	list.Cards = append(list.Cards, stored)
	return cloneCard(stored), nil
}

// BoardByCard returns the populated board owning the given card.
func (s *Storage) BoardByCard(cardId domain.CardId) (*domain.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board, _, _ := s.findCard(cardId)
	if board == nil {
		return nil, &errors.NotFoundError{Message: "Card not found"}
	}
	return cloneBoard(board), nil
}

// MoveCard transfers the card to the destination list at the given
// position. Detach, attach and the card's own list/position update happen
// in one critical section: either all three apply or none do.
func (s *Storage) MoveCard(cardId domain.CardId, listId domain.ListId, position int) (*domain.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, source, card := s.findCard(cardId)
	if card == nil {
		return nil, &errors.NotFoundError{Message: "Card not found"}
	}
	_, dest := s.findList(listId)
	if dest == nil {
		return nil, &errors.NotFoundError{Message: "List not found"}
	}

	ordering.DetachCard(source, cardId)
	ordering.InsertCard(dest, card, position)
	return cloneCard(card), nil
}

// UpdateCard copies the mutable fields of the given card onto the stored
// record. Identity, creator and placement are not touched here; placement
// changes go through MoveCard.
func (s *Storage) UpdateCard(card *domain.Card) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _, stored := s.findCard(card.Id)
	if stored == nil {
		return &errors.NotFoundError{Message: "Card not found"}
	}

	stored.Title = card.Title
	stored.Description = card.Description
	stored.Priority = card.Priority
	stored.Status = card.Status
	if card.DueDate != nil {
		due := *card.DueDate
		stored.DueDate = &due
	} else {
		stored.DueDate = nil
	}
	stored.Assignees = append([]domain.UserId{}, card.Assignees...)
	return nil
}
