// Package recommend scans a fully materialized board and surfaces
// prioritized action items. It never fetches: the caller supplies the
// board with every list and card already populated, and gets back plain
// advisory records for the boundary layer to serialize.
package recommend

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/taskan-dev/taskan/internal/domain"
)

// Evaluate applies the four independent rule groups to every card on the
// board and returns advisories ranked by descending severity. Groups are
// concatenated in fixed order (alerts, priority, due date, status) and
// the sort is stable, so equal severities keep group order and then card
// iteration order. A board with no lists yields an empty slice.
func Evaluate(board *domain.Board, now time.Time) []domain.Advisory {
	out := []domain.Advisory{}
	out = append(out, alertAdvisories(board)...)
	out = append(out, priorityAdvisories(board)...)
	out = append(out, dueDateAdvisories(board, now)...)
	out = append(out, statusAdvisories(board, now)...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity.Rank() > out[j].Severity.Rank()
	})
	return out
}

// daysUntilDue counts days until the due date at day granularity,
// rounding up: ceil((due - now) / 24h). Negative means overdue.
func daysUntilDue(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// containingList returns the first list in board order holding cardId, or
// nil when no list references it. Linear on purpose: boards stay small
// enough that an inverse card->list index is not worth carrying.
func containingList(board *domain.Board, cardId domain.CardId) *domain.List {
	for _, l := range board.Lists {
		if l.FindCard(cardId) != nil {
			return l
		}
	}
	return nil
}

// inListNamed reports whether a list holding the card has a name
// containing one of the case-insensitive substrings.
func inListNamed(board *domain.Board, cardId domain.CardId, substrs ...string) bool {
	for _, l := range board.Lists {
		if l.FindCard(cardId) == nil {
			continue
		}
		if nameContains(l.Name, substrs...) {
			return true
		}
	}
	return false
}

func nameContains(name domain.ListName, substrs ...string) bool {
	lower := strings.ToLower(name)
	for _, s := range substrs {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// eachCard visits the full card population in board order: lists in
// sequence, cards in sequence within each list.
func eachCard(board *domain.Board, fn func(*domain.Card)) {
	for _, l := range board.Lists {
		for _, c := range l.Cards {
			fn(c)
		}
	}
}
