package recommend

import (
	"fmt"
	"time"

	"github.com/taskan-dev/taskan/internal/domain"
)

func dueDateAdvisories(board *domain.Board, now time.Time) []domain.Advisory {
	var out []domain.Advisory
	eachCard(board, func(c *domain.Card) {
		if adv, ok := dueDateAdvisory(c, now); ok {
			out = append(out, adv)
		}
	})
	return out
}

// dueDateAdvisory emits at most one advisory per card: the conditions are
// mutually exclusive by construction (if/else-if chain).
func dueDateAdvisory(c *domain.Card, now time.Time) (domain.Advisory, bool) {
	if c.DueDate == nil {
		if c.Priority != domain.PriorityCritical && c.Priority != domain.PriorityHigh {
			return domain.Advisory{}, false
		}
		severity := domain.SeverityLow
		if c.Priority == domain.PriorityCritical {
			severity = domain.SeverityMedium
		}
		return domain.Advisory{
			CardId:    c.Id,
			CardTitle: c.Title,
			Type:      domain.AdvisoryNoDueDateHighPriority,
			Reason:    fmt.Sprintf("%s priority card has no due date", c.Priority),
			Severity:  severity,
			Action:    "Set a due date so this card does not drift",
		}, true
	}

	days := daysUntilDue(*c.DueDate, now)
	switch {
	case days < 0 && c.Status != domain.StatusDone:
		severity := domain.SeverityMedium
		if c.Priority == domain.PriorityCritical {
			severity = domain.SeverityHigh
		}
		action := "Finish the card or reschedule its due date"
		if c.Status == domain.StatusBlocked {
			action = "Resolve the blocker, then finish or reschedule the card"
		}
		return domain.Advisory{
			CardId:    c.Id,
			CardTitle: c.Title,
			Type:      domain.AdvisoryOverdue,
			Reason:    fmt.Sprintf("Overdue by %d day(s)", -days),
			Severity:  severity,
			Action:    action,
		}, true
	case days >= 0 && days <= 2 && c.Status != domain.StatusDone && c.Status != domain.StatusInProgress:
		severity := domain.SeverityMedium
		if c.Priority == domain.PriorityCritical {
			severity = domain.SeverityHigh
		}
		return domain.Advisory{
			CardId:    c.Id,
			CardTitle: c.Title,
			Type:      domain.AdvisoryDueSoon,
			Reason:    fmt.Sprintf("Due in %d day(s)", days),
			Severity:  severity,
			Action:    "Start this card now to meet the deadline",
		}, true
	case days >= 3 && days <= 7 && c.Status == domain.StatusBacklog:
		return domain.Advisory{
			CardId:    c.Id,
			CardTitle: c.Title,
			Type:      domain.AdvisoryUpcomingDeadline,
			Reason:    fmt.Sprintf("Due in %d days but still in the backlog", days),
			Severity:  domain.SeverityLow,
			Action:    "Plan this card into an active list",
		}, true
	}
	return domain.Advisory{}, false
}
