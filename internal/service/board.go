package service

import (
	"time"

	"github.com/taskan-dev/taskan/internal/access"
	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
	"github.com/taskan-dev/taskan/internal/validation"
)

// to mock service in tests
type BoardService interface {
	Create(userId domain.UserId, data domain.BoardCreationData) (*domain.Board, error)
	Get(userId domain.UserId, boardId domain.BoardId) (*domain.Board, error)
	ForUser(userId domain.UserId) ([]domain.BoardMetadata, error)
	Invite(inviterId domain.UserId, boardId domain.BoardId, inviteeEmail domain.Email) (*domain.Board, error)
}

type Board struct {
	storage   BoardStorage
	validator BoardValidator
	now       func() time.Time
}

type BoardStorage interface {
	CreateBoard(board *domain.Board) error
	GetBoard(id domain.BoardId) (*domain.Board, error) // fully populated aggregate
	BoardsForUser(userId domain.UserId) ([]domain.BoardMetadata, error)
	UserByEmail(email domain.Email) (*domain.User, error)
	// AddBoardMember applies board.Members += user and user.Boards += board
	// as one atomic unit, re-checking membership under the store's lock.
	AddBoardMember(boardId domain.BoardId, userId domain.UserId) error
}

type BoardValidator interface {
	Name(name domain.BoardName) error
}

func NewBoard(storage BoardStorage, validator BoardValidator) BoardService {
	return &Board{storage, validator, time.Now}
}

func (b *Board) Create(userId domain.UserId, data domain.BoardCreationData) (*domain.Board, error) {
	data.Name = validation.Sanitize(data.Name)
	data.Description = validation.Sanitize(data.Description)
	if err := b.validator.Name(data.Name); err != nil {
		return nil, err
	}

	board := domain.NewBoard(data, userId, b.now())
	if err := b.storage.CreateBoard(board); err != nil {
		return nil, err
	}
	return board, nil
}

func (b *Board) Get(userId domain.UserId, boardId domain.BoardId) (*domain.Board, error) {
	board, err := b.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if !access.CanAccess(board, userId) {
		return nil, &errors.AccessDeniedError{}
	}
	return board, nil
}

// ForUser returns metadata for every board the user owns or belongs to,
// most recently created first.
func (b *Board) ForUser(userId domain.UserId) ([]domain.BoardMetadata, error) {
	return b.storage.BoardsForUser(userId)
}

func (b *Board) Invite(inviterId domain.UserId, boardId domain.BoardId, inviteeEmail domain.Email) (*domain.Board, error) {
	board, err := b.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if !access.CanInvite(board, inviterId) {
		return nil, &errors.AccessDeniedError{Message: "Only the board owner can invite members"}
	}

	invitee, err := b.storage.UserByEmail(inviteeEmail)
	if err != nil {
		return nil, err
	}
	if board.HasMember(invitee.Id) {
		return nil, &errors.ConflictError{Message: "User is already a member"}
	}

	if err := b.storage.AddBoardMember(boardId, invitee.Id); err != nil {
		return nil, err
	}
	return b.storage.GetBoard(boardId)
}
