// Package memory is the reference persistence collaborator: a
// mutex-guarded in-memory store holding the four record collections
// (users, boards, lists, cards) as nested aggregates. Every operation
// that touches sibling positions or membership runs inside one critical
// section, which serializes position assignment and makes card moves and
// invites atomic. Reads return deep copies so callers never share state
// with the store.
package memory

import (
	"sync"

	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/ordering"
)

type Storage struct {
	mu           sync.RWMutex
	users        map[domain.UserId]*domain.User
	usersByEmail map[domain.Email]domain.UserId
	boards       map[domain.BoardId]*domain.Board
}

func New() *Storage {
	return &Storage{
		users:        make(map[domain.UserId]*domain.User),
		usersByEmail: make(map[domain.Email]domain.UserId),
		boards:       make(map[domain.BoardId]*domain.Board),
	}
}

// findList locates a list anywhere in the store. Caller holds the lock.
func (s *Storage) findList(id domain.ListId) (*domain.Board, *domain.List) {
	for _, b := range s.boards {
		if l := b.FindList(id); l != nil {
			return b, l
		}
	}
	return nil, nil
}

// findCard locates a card anywhere in the store. Caller holds the lock.
func (s *Storage) findCard(id domain.CardId) (*domain.Board, *domain.List, *domain.Card) {
	for _, b := range s.boards {
		if c, l := b.FindCard(id); c != nil {
			return b, l, c
		}
	}
	return nil, nil, nil
}

func cloneUser(u *domain.User) *domain.User {
	out := *u
	out.Boards = append([]domain.BoardId{}, u.Boards...)
	return &out
}

func cloneCard(c *domain.Card) *domain.Card {
	out := *c
	if c.DueDate != nil {
		due := *c.DueDate
		out.DueDate = &due
	}
	out.Assignees = append([]domain.UserId{}, c.Assignees...)
	return &out
}

func cloneList(l *domain.List) *domain.List {
	out := *l
	out.Cards = make([]*domain.Card, 0, len(l.Cards))
	for _, c := range l.Cards {
		out.Cards = append(out.Cards, cloneCard(c))
	}
	ordering.SortCards(out.Cards)
	return &out
}

// cloneBoard deep-copies the aggregate with lists and cards in display
// order.
func cloneBoard(b *domain.Board) *domain.Board {
	out := *b
	out.Members = append([]domain.UserId{}, b.Members...)
	out.Lists = make([]*domain.List, 0, len(b.Lists))
	for _, l := range b.Lists {
		out.Lists = append(out.Lists, cloneList(l))
	}
	ordering.SortLists(out.Lists)
	return &out
}
