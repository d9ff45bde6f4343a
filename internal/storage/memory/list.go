package memory

import (
	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
	"github.com/taskan-dev/taskan/internal/ordering"
)

// CreateList appends the list to its board. Position assignment and the
// append happen under the store lock, so concurrent creates cannot
// observe the same sibling count.
func (s *Storage) CreateList(list *domain.List) (*domain.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[list.BoardId]
	if !ok {
		return nil, &errors.NotFoundError{Message: "Board not found"}
	}

	stored := cloneList(list)
	stored.Position = ordering.AppendPosition(len(board.Lists))
	board.Lists = append(board.Lists, stored)
	return cloneList(stored), nil
}

// BoardByList returns the populated board owning the given list.
func (s *Storage) BoardByList(listId domain.ListId) (*domain.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board, _ := s.findList(listId)
	if board == nil {
		return nil, &errors.NotFoundError{Message: "List not found"}
	}
	return cloneBoard(board), nil
}
