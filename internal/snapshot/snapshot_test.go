package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskan-dev/taskan/internal/domain"
	"github.com/taskan-dev/taskan/internal/errors"
)

func writeSnapshot(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSnapshot(t, `{
		"name": "Release",
		"lists": [
			{"name": "Todo", "cards": [
				{"title": "ship it", "priority": "high", "status": "todo", "due": "2026-09-15"}
			]},
			{"name": "Done", "cards": []}
		]
	}`)

	board, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.BoardName("Release"), board.Name)
	require.Len(t, board.Lists, 2)
	assert.Equal(t, 0, board.Lists[0].Position)
	assert.Equal(t, 1, board.Lists[1].Position)

	require.Len(t, board.Lists[0].Cards, 1)
	card := board.Lists[0].Cards[0]
	assert.Equal(t, domain.PriorityHigh, card.Priority)
	assert.Equal(t, domain.StatusTodo, card.Status)
	require.NotNil(t, card.DueDate)
}

func TestLoadMalformedDueDateDegrades(t *testing.T) {
	path := writeSnapshot(t, `{
		"name": "Release",
		"lists": [{"name": "Todo", "cards": [{"title": "task", "due": "someday"}]}]
	}`)

	board, err := Load(path)
	require.NoError(t, err, "a malformed due date must not fail the load")
	assert.Nil(t, board.Lists[0].Cards[0].DueDate)
}

func TestLoadUnknownStatusFails(t *testing.T) {
	path := writeSnapshot(t, `{
		"name": "Release",
		"lists": [{"name": "Todo", "cards": [{"title": "task", "status": "paused"}]}]
	}`)

	_, err := Load(path)
	assert.True(t, errors.Is[*errors.ValidationError](err))
}

func TestLoadDefaultsApply(t *testing.T) {
	path := writeSnapshot(t, `{
		"name": "Release",
		"lists": [{"name": "Todo", "cards": [{"title": "task"}]}]
	}`)

	board, err := Load(path)
	require.NoError(t, err)
	card := board.Lists[0].Cards[0]
	assert.Equal(t, domain.PriorityLow, card.Priority)
	assert.Equal(t, domain.StatusTodo, card.Status)
}

func TestLoadInvalidJson(t *testing.T) {
	path := writeSnapshot(t, `{not json`)
	_, err := Load(path)
	assert.True(t, errors.Is[*errors.ValidationError](err))
}
