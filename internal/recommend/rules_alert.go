package recommend

import (
	"fmt"

	"github.com/taskan-dev/taskan/internal/domain"
)

// alertAdvisories flags done cards stranded outside a done list when the
// board has one. Cards referenced by no list are skipped: without a
// containing list there is nothing to move.
func alertAdvisories(board *domain.Board) []domain.Advisory {
	var out []domain.Advisory
	eachCard(board, func(c *domain.Card) {
		if c.Status != domain.StatusDone {
			return
		}
		current := containingList(board, c.Id)
		if current == nil || nameContains(current.Name, "done") {
			return
		}
		target := doneList(board)
		if target == nil {
			return
		}
		out = append(out, domain.Advisory{
			CardId:    c.Id,
			CardTitle: c.Title,
			Type:      domain.AdvisoryMoveToDone,
			Reason:    fmt.Sprintf("Done card is still in %q", current.Name),
			Severity:  domain.SeverityLow,
			Action:    fmt.Sprintf("Move the card to %q", target.Name),
		})
	})
	return out
}

// doneList returns the first list whose name contains "done" or
// "complete", or nil.
func doneList(board *domain.Board) *domain.List {
	for _, l := range board.Lists {
		if nameContains(l.Name, "done", "complete") {
			return l
		}
	}
	return nil
}
