package recommend

import (
	"time"

	"github.com/taskan-dev/taskan/internal/domain"
)

// statusAdvisories evaluates the status dimension. The in-progress checks
// form a chain (overdue wins over due-soon); the blocked and
// critical-in-todo checks are independent of it and of each other, so one
// card can collect several status advisories.
func statusAdvisories(board *domain.Board, now time.Time) []domain.Advisory {
	var out []domain.Advisory
	eachCard(board, func(c *domain.Card) {
		if c.Status == domain.StatusInProgress && c.DueDate != nil {
			days := daysUntilDue(*c.DueDate, now)
			if days < 0 {
				out = append(out, domain.Advisory{
					CardId:    c.Id,
					CardTitle: c.Title,
					Type:      domain.AdvisoryInProgressOverdue,
					Reason:    "In progress but already past its due date",
					Severity:  domain.SeverityHigh,
					Action:    "Re-estimate the remaining work or split the card",
				})
			} else if days <= 1 {
				out = append(out, domain.Advisory{
					CardId:    c.Id,
					CardTitle: c.Title,
					Type:      domain.AdvisoryInProgressDueSoon,
					Reason:    "In progress with the due date about to pass",
					Severity:  domain.SeverityMedium,
					Action:    "Focus on finishing this card first",
				})
			}
		}
		if c.Status == domain.StatusBlocked {
			out = append(out, domain.Advisory{
				CardId:    c.Id,
				CardTitle: c.Title,
				Type:      domain.AdvisoryBlockedTask,
				Reason:    "Card is blocked",
				Severity:  domain.SeverityMedium,
				Action:    "Identify and clear the blocker",
			})
		}
		if c.Status == domain.StatusTodo && c.Priority == domain.PriorityCritical {
			out = append(out, domain.Advisory{
				CardId:    c.Id,
				CardTitle: c.Title,
				Type:      domain.AdvisoryCriticalInTodo,
				Reason:    "Critical priority card is still in todo",
				Severity:  domain.SeverityHigh,
				Action:    "Start this card before lower priority work",
			})
		}
	})
	return out
}
