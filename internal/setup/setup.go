package setup

import (
	"time"

	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/service"
	"github.com/taskan-dev/taskan/internal/storage/memory"
	"github.com/taskan-dev/taskan/internal/validation"
)

// Dependencies holds all initialized services over the reference store.
type Dependencies struct {
	Storage         *memory.Storage
	Boards          service.BoardService
	Lists           service.ListService
	Cards           service.CardService
	Recommendations service.RecommendationService
}

func SetupDependencies() *Dependencies {
	storage := memory.New()
	return &Dependencies{
		Storage:         storage,
		Boards:          service.NewBoard(storage, &validation.BoardValidator{}),
		Lists:           service.NewList(storage, &validation.ListValidator{}),
		Cards:           service.NewCard(storage, &validation.CardValidator{}),
		Recommendations: service.NewRecommendation(storage),
	}
}

// SeedDemo populates the store with a small board through the regular
// operations and returns the owner and board ids.
func SeedDemo(deps *Dependencies) (domain.UserId, domain.BoardId, error) {
	owner := domain.NewUser("Demo Owner", "owner@example.com", "")
	if err := deps.Storage.CreateUser(owner); err != nil {
		return domain.UserId{}, domain.BoardId{}, err
	}

	board, err := deps.Boards.Create(owner.Id, domain.BoardCreationData{
		Name:        "Product launch",
		Description: "Everything needed for the next release",
	})
	if err != nil {
		return domain.UserId{}, domain.BoardId{}, err
	}

	backlog, err := deps.Lists.Create(owner.Id, board.Id, domain.ListCreationData{Name: "Backlog"})
	if err != nil {
		return domain.UserId{}, domain.BoardId{}, err
	}
	todo, err := deps.Lists.Create(owner.Id, board.Id, domain.ListCreationData{Name: "Todo"})
	if err != nil {
		return domain.UserId{}, domain.BoardId{}, err
	}
	doing, err := deps.Lists.Create(owner.Id, board.Id, domain.ListCreationData{Name: "In Progress"})
	if err != nil {
		return domain.UserId{}, domain.BoardId{}, err
	}
	if _, err := deps.Lists.Create(owner.Id, board.Id, domain.ListCreationData{Name: "Done"}); err != nil {
		return domain.UserId{}, domain.BoardId{}, err
	}

	yesterday := time.Now().AddDate(0, 0, -1).Format(time.RFC3339)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(time.RFC3339)
	nextWeek := time.Now().AddDate(0, 0, 5).Format(time.RFC3339)

	type seedCard struct {
		list     domain.ListId
		data     domain.CardCreationData
		priority domain.Priority
		status   domain.Status
	}
	cards := []seedCard{
		{backlog.Id, domain.CardCreationData{Title: "Fix login outage", DueDate: yesterday}, domain.PriorityCritical, domain.StatusTodo},
		{backlog.Id, domain.CardCreationData{Title: "Write release notes", DueDate: nextWeek}, domain.PriorityHigh, domain.StatusBacklog},
		{todo.Id, domain.CardCreationData{Title: "Update billing plans", DueDate: tomorrow}, domain.PriorityMedium, domain.StatusTodo},
		{todo.Id, domain.CardCreationData{Title: "Refresh landing page"}, domain.PriorityHigh, domain.StatusTodo},
		{doing.Id, domain.CardCreationData{Title: "Migrate user database", DueDate: yesterday}, domain.PriorityHigh, domain.StatusInProgress},
		{doing.Id, domain.CardCreationData{Title: "Ship dark mode"}, domain.PriorityLow, domain.StatusDone},
		{todo.Id, domain.CardCreationData{Title: "Chase vendor contract"}, domain.PriorityMedium, domain.StatusBlocked},
	}

	for _, sc := range cards {
		card, err := deps.Cards.Create(owner.Id, board.Id, sc.list, sc.data)
		if err != nil {
			return domain.UserId{}, domain.BoardId{}, err
		}
		priority, status := sc.priority, sc.status
		if _, err := deps.Cards.Patch(owner.Id, card.Id, domain.CardPatch{
			Priority: &priority,
			Status:   &status,
		}); err != nil {
			return domain.UserId{}, domain.BoardId{}, err
		}
	}

	return owner.Id, board.Id, nil
}
