// Package ordering maintains the sibling position invariants for lists
// under a board and cards under a list. Positions are dense and
// gap-tolerant: they only drive relative sequencing, ties are permitted
// transiently and broken by creation order.
//
// None of these functions lock. Callers that share aggregates across
// goroutines (the storage collaborator) must hold the aggregate's lock
// across count-and-assign so concurrent appends cannot race.
package ordering

import (
	"bytes"
	"sort"

	"github.com/taskan-dev/taskan/internal/domain"
)

// AppendPosition is the position assigned to a new sibling: the current
// sibling count at creation time (append-to-end).
func AppendPosition(siblingCount int) int {
	return siblingCount
}

// InsertCard splices card into list at position and updates the card's
// own ListId and Position fields. Positions past the end clamp to append.
// Existing siblings are not renumbered.
func InsertCard(list *domain.List, card *domain.Card, position int) {
	if position < 0 {
		position = 0
	}
	idx := position
	if idx > len(list.Cards) {
		idx = len(list.Cards)
	}
	list.Cards = append(list.Cards, nil)
	copy(list.Cards[idx+1:], list.Cards[idx:])
	list.Cards[idx] = card
	card.ListId = list.Id
	card.Position = position
}

// DetachCard removes the card with the given id from the list's sequence
// and returns it, or nil when the list does not contain it.
func DetachCard(list *domain.List, id domain.CardId) *domain.Card {
	for i, c := range list.Cards {
		if c.Id == id {
			list.Cards = append(list.Cards[:i], list.Cards[i+1:]...)
			return c
		}
	}
	return nil
}

// SortLists orders sibling lists by position, then creation time, then id.
// The sort is stable so equal keys keep their arrival order.
func SortLists(lists []*domain.List) {
	sort.SliceStable(lists, func(i, j int) bool {
		a, b := lists[i], lists[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return bytes.Compare(a.Id[:], b.Id[:]) < 0
	})
}

// SortCards orders sibling cards the same way SortLists orders lists.
func SortCards(cards []*domain.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		if a.Position != b.Position {
			return a.Position < b.Position
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return bytes.Compare(a.Id[:], b.Id[:]) < 0
	})
}
