package domain

import (
	"time"

	"github.com/google/uuid"
)

type ListCreationData struct {
	Name ListName `validate:"required"`
}

type List struct {
	Id        ListId
	Name      ListName
	BoardId   BoardId
	Position  int
	Cards     []*Card
	CreatedAt time.Time
}

// NewList constructs a list for boardId. Position is assigned by the
// storage collaborator when the list is appended. Cards is always non-nil.
func NewList(data ListCreationData, boardId BoardId, now time.Time) *List {
	return &List{
		Id:        uuid.New(),
		Name:      data.Name,
		BoardId:   boardId,
		Cards:     []*Card{},
		CreatedAt: now,
	}
}

// FindCard returns the card with the given id, or nil.
func (l *List) FindCard(id CardId) *Card {
	for _, c := range l.Cards {
		if c.Id == id {
			return c
		}
	}
	return nil
}
