package commands

import (
	"context"

	"dinepos/internal/core/domain/model/table"
)

// CreateTableCommandHandler handles the business logic for table registration.
// Duplicate identifiers are rejected by the repository with an already-exists
// error, which the HTTP layer maps to a conflict.
type CreateTableCommandHandler struct {
	uowFactory TableUoWFactory
}

// NewCreateTableCommandHandler creates a handler for table registration.
func NewCreateTableCommandHandler(uowFactory TableUoWFactory) CreateTableCommandHandler {
	return CreateTableCommandHandler{uowFactory: uowFactory}
}

// Handle processes the table registration command and returns the created table.
func (h *CreateTableCommandHandler) Handle(ctx context.Context, cmd CreateTableCommand) (*table.Table, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	tbl, err := table.NewTable(cmd.ID(), cmd.Name(), cmd.Seats(), cmd.Category(), cmd.Status())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TableRepository().Add(ctx, tbl); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tbl, nil
}
