package commands_test

import (
	"testing"

	"dinepos/internal/core/application/usecases/commands"
	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/order"
	"dinepos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitItemsCommand_ValidInput(t *testing.T) {
	id := kernel.NewID()
	items := []order.LineItem{mustLineItem(t, "espresso", 2)}
	cmd, err := commands.NewSubmitItemsCommand(id, "Table 1", items)
	require.NoError(t, err)
	assert.True(t, cmd.TableID().IsEqual(id))
	assert.Equal(t, "Table 1", cmd.TableName())
	assert.Len(t, cmd.Items(), 1)
}

func TestNewSubmitItemsCommand_EmptyBatch(t *testing.T) {
	cmd, err := commands.NewSubmitItemsCommand(kernel.NewID(), "Table 1", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Items())
}

func TestNewSubmitItemsCommand_MissingTableName(t *testing.T) {
	_, err := commands.NewSubmitItemsCommand(kernel.NewID(), "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewSubmitItemsCommand_InvalidTableID(t *testing.T) {
	_, err := commands.NewSubmitItemsCommand(kernel.ID{}, "Table 1", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrIDIsNotConstructed)
}
