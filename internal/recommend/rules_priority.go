package recommend

import (
	"fmt"

	"github.com/taskan-dev/taskan/internal/domain"
)

// priorityAdvisories flags critical cards that sit outside any
// "in progress" list and high-priority cards still parked in a todo or
// backlog list.
func priorityAdvisories(board *domain.Board) []domain.Advisory {
	var out []domain.Advisory
	eachCard(board, func(c *domain.Card) {
		switch c.Priority {
		case domain.PriorityCritical:
			if !inListNamed(board, c.Id, "in progress") {
				out = append(out, domain.Advisory{
					CardId:    c.Id,
					CardTitle: c.Title,
					Type:      domain.AdvisoryCriticalPriority,
					Reason:    "Critical priority card is not being worked on",
					Severity:  domain.SeverityHigh,
					Action:    fmt.Sprintf("Move %q to an in-progress list and start it", c.Title),
				})
			}
		case domain.PriorityHigh:
			if inListNamed(board, c.Id, "todo", "backlog") {
				out = append(out, domain.Advisory{
					CardId:    c.Id,
					CardTitle: c.Title,
					Type:      domain.AdvisoryHighPriorityWaiting,
					Reason:    "High priority card is waiting in a todo or backlog list",
					Severity:  domain.SeverityMedium,
					Action:    "Schedule this card ahead of lower priority work",
				})
			}
		}
	})
	return out
}
