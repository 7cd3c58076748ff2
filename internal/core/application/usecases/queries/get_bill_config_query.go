package queries

import (
	"errors"

	"dinepos/internal/pkg/guard"
)

var (
	ErrGetBillConfigQueryIsNotConstructed = errors.New(
		"GetBillConfigQuery must be created via NewGetBillConfigQuery constructor",
	)
)

// GetBillConfigQuery retrieves the bill auto-print preferences, creating the
// default row if none exists yet.
type GetBillConfigQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBillConfigQuery creates a query for the bill configuration.
func NewGetBillConfigQuery() GetBillConfigQuery {
	return GetBillConfigQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetBillConfigQuery) Validate() error {
	return q.guard.Validate(ErrGetBillConfigQueryIsNotConstructed)
}
