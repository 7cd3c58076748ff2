package queries

import (
	"errors"

	"dinepos/internal/pkg/guard"
)

var (
	ErrGetKOTConfigQueryIsNotConstructed = errors.New(
		"GetKOTConfigQuery must be created via NewGetKOTConfigQuery constructor",
	)
)

// GetKOTConfigQuery retrieves the Kitchen Order Ticket printing preferences,
// creating the default row if none exists yet.
type GetKOTConfigQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKOTConfigQuery creates a query for the KOT configuration.
func NewGetKOTConfigQuery() GetKOTConfigQuery {
	return GetKOTConfigQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKOTConfigQuery) Validate() error {
	return q.guard.Validate(ErrGetKOTConfigQueryIsNotConstructed)
}
