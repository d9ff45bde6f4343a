package memory

import (
	"sort"

	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
)

// CreateBoard stores the board and records it on the owner's board list.
func (s *Storage) CreateBoard(board *domain.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.boards[board.Id]; ok {
		return &errors.ConflictError{Message: "Board already exists"}
	}
	owner, ok := s.users[board.OwnerId]
	if !ok {
		return &errors.NotFoundError{Message: "Owner not found"}
	}

	s.boards[board.Id] = cloneBoard(board)
	owner.Boards = append(owner.Boards, board.Id)
	return nil
}

func (s *Storage) GetBoard(id domain.BoardId) (*domain.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	board, ok := s.boards[id]
	if !ok {
		return nil, &errors.NotFoundError{Message: "Board not found"}
	}
	return cloneBoard(board), nil
}

// BoardsForUser returns metadata for boards the user owns or belongs to,
// most recently created first.
func (s *Storage) BoardsForUser(userId domain.UserId) ([]domain.BoardMetadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.BoardMetadata{}
	for _, b := range s.boards {
		if b.OwnerId != userId && !b.HasMember(userId) {
			continue
		}
		meta := b.BoardMetadata
		meta.Members = append([]domain.UserId{}, b.Members...)
		out = append(out, meta)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Id.String() < out[j].Id.String()
	})
	return out, nil
}

// AddBoardMember applies both sides of a successful invite inside one
// critical section: the board's member set and the user's board list.
func (s *Storage) AddBoardMember(boardId domain.BoardId, userId domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board, ok := s.boards[boardId]
	if !ok {
		return &errors.NotFoundError{Message: "Board not found"}
	}
	user, ok := s.users[userId]
	if !ok {
		return &errors.NotFoundError{Message: "User not found"}
	}
	if board.HasMember(userId) {
		return &errors.ConflictError{Message: "User is already a member"}
	}

	board.Members = append(board.Members, userId)
	user.Boards = append(user.Boards, boardId)
	return nil
}
