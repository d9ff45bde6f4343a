// Package snapshot loads a serialized board aggregate for offline
// evaluation. The file is a plain JSON rendition of the board with its
// lists and their cards in display order.
package snapshot

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
	"github.com/taskan-dev/taskan/internal/logger"
	"github.com/taskan-dev/taskan/internal/ordering"
	"github.com/taskan-dev/taskan/internal/validation"
)

type boardFile struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Lists       []listFile `json:"lists"`
}

type listFile struct {
	Name  string     `json:"name"`
	Cards []cardFile `json:"cards"`
}

type cardFile struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	Due         string `json:"due"`
}

// Load reads a board snapshot and materializes the aggregate. Unknown
// priority or status values fail the load; a malformed due date degrades
// to "no due date" with a warning, it never fails the evaluation.
func Load(path string) (*domain.Board, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file boardFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, &errors.ValidationError{Message: "snapshot is invalid json"}
	}
	if file.Name == "" {
		return nil, &errors.ValidationError{Message: "snapshot board name is required"}
	}

	now := time.Now()
	board := domain.NewBoard(domain.BoardCreationData{
		Name:        file.Name,
		Description: file.Description,
	}, uuid.New(), now)

	for _, lf := range file.Lists {
		list := domain.NewList(domain.ListCreationData{Name: lf.Name}, board.Id, now)
		list.Position = ordering.AppendPosition(len(board.Lists))

		for _, cf := range lf.Cards {
			card, err := buildCard(cf, list, now)
			if err != nil {
				return nil, err
			}
			card.Position = ordering.AppendPosition(len(list.Cards))
			list.Cards = append(list.Cards, card)
		}
		board.Lists = append(board.Lists, list)
	}
	return board, nil
}

func buildCard(cf cardFile, list *domain.List, now time.Time) (*domain.Card, error) {
	var due *time.Time
	if cf.Due != "" {
		parsed, err := validation.ParseDueDate(cf.Due)
		if err != nil {
			logger.Log.Warn("ignoring malformed due date", "card", cf.Title, "due", cf.Due)
		} else {
			due = &parsed
		}
	}

	card := domain.NewCard(domain.CardCreationData{
		Title:       cf.Title,
		Description: cf.Description,
	}, list.Id, uuid.Nil, due, now)

	if cf.Priority != "" {
		p := domain.Priority(cf.Priority)
		if !p.Valid() {
			return nil, &errors.ValidationError{Message: "unknown priority: " + cf.Priority}
		}
		card.Priority = p
	}
	if cf.Status != "" {
		st := domain.Status(cf.Status)
		if !st.Valid() {
			return nil, &errors.ValidationError{Message: "unknown status: " + cf.Status}
		}
		card.Status = st
	}
	return card, nil
}
