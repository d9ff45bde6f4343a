package domain

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Rank maps severity to its sort weight: high=3, medium=2, low=1.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

type AdvisoryType string

const (
	AdvisoryCriticalPriority      AdvisoryType = "critical_priority"
	AdvisoryHighPriorityWaiting   AdvisoryType = "high_priority_waiting"
	AdvisoryNoDueDateHighPriority AdvisoryType = "no_due_date_high_priority"
	AdvisoryOverdue               AdvisoryType = "overdue"
	AdvisoryDueSoon               AdvisoryType = "due_soon"
	AdvisoryUpcomingDeadline      AdvisoryType = "upcoming_deadline"
	AdvisoryInProgressOverdue     AdvisoryType = "in_progress_overdue"
	AdvisoryInProgressDueSoon     AdvisoryType = "in_progress_due_soon"
	AdvisoryBlockedTask           AdvisoryType = "blocked_task"
	AdvisoryCriticalInTodo        AdvisoryType = "critical_in_todo"
	AdvisoryMoveToDone            AdvisoryType = "move_to_done"
)

// Advisory is one recommendation emitted by the engine. A card may appear
// in several advisories across rule groups; the engine never deduplicates.
type Advisory struct {
	CardId    CardId
	CardTitle CardTitle
	Type      AdvisoryType
	Reason    string
	Severity  Severity
	Action    string
}
