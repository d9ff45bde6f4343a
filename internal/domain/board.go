package domain

import (
	"time"

	"github.com/google/uuid"
)

// creation payloads flow service -> storage
type BoardCreationData struct {
	Name        BoardName `validate:"required"`
	Description string
}

type BoardMetadata struct {
	Id          BoardId
	Name        BoardName
	Description string
	OwnerId     UserId
	Members     []UserId
	CreatedAt   time.Time
}

type Board struct {
	BoardMetadata
	Lists []*List
}

// NewBoard constructs a board owned by ownerId with the owner as its sole
// member. Members and Lists are always non-nil.
func NewBoard(data BoardCreationData, ownerId UserId, now time.Time) *Board {
	return &Board{
		BoardMetadata: BoardMetadata{
			Id:          uuid.New(),
			Name:        data.Name,
			Description: data.Description,
			OwnerId:     ownerId,
			Members:     []UserId{ownerId},
			CreatedAt:   now,
		},
		Lists: []*List{},
	}
}

func (b *Board) HasMember(userId UserId) bool {
	for _, m := range b.Members {
		if m == userId {
			return true
		}
	}
	return false
}

// FindList returns the list with the given id, or nil.
func (b *Board) FindList(id ListId) *List {
	for _, l := range b.Lists {
		if l.Id == id {
			return l
		}
	}
	return nil
}

// FindCard returns the card with the given id and its containing list.
// The lookup is a linear scan; board scale is assumed small.
func (b *Board) FindCard(id CardId) (*Card, *List) {
	for _, l := range b.Lists {
		for _, c := range l.Cards {
			if c.Id == id {
				return c, l
			}
		}
	}
	return nil, nil
}
