package domain

import (
	"time"

	"github.com/google/uuid"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
	StatusBlocked    Status = "blocked"
)

func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusReview, StatusDone, StatusBlocked:
		return true
	}
	return false
}

type CardCreationData struct {
	Title       CardTitle `validate:"required"`
	Description string
	DueDate     string // optional, ISO date or RFC3339 timestamp
}

// CardPatch is the closed set of patchable card fields. Unset pointers
// leave the field untouched; anything outside this whitelist cannot be
// expressed and is therefore rejected by construction.
type CardPatch struct {
	Title       *CardTitle `validate:"omitempty,min=1"`
	Description *string
	Priority    *Priority
	Status      *Status
	DueDate     *string
	AssignedTo  *[]UserId
}

type Card struct {
	Id          CardId
	Title       CardTitle
	Description string
	ListId      ListId
	Position    int
	DueDate     *time.Time
	Priority    Priority
	Status      Status
	CreatorId   UserId // immutable after creation
	Assignees   []UserId
	CreatedAt   time.Time
}

// NewCard constructs a card for listId with default priority and status.
// Position is assigned by the storage collaborator on append.
func NewCard(data CardCreationData, listId ListId, creatorId UserId, dueDate *time.Time, now time.Time) *Card {
	return &Card{
		Id:          uuid.New(),
		Title:       data.Title,
		Description: data.Description,
		ListId:      listId,
		DueDate:     dueDate,
		Priority:    PriorityLow,
		Status:      StatusTodo,
		CreatorId:   creatorId,
		Assignees:   []UserId{},
		CreatedAt:   now,
	}
}
