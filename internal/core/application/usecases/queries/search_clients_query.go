package queries

import (
	"errors"
	"strings"

	"orgtrack/internal/core/domain/model/kernel"
	"orgtrack/internal/pkg/errs"
	"orgtrack/internal/pkg/guard"
)

var ErrSearchClientsQueryIsNotConstructed = errors.New(
	"SearchClientsQuery must be created via NewSearchClientsQuery constructor",
)

var ErrSearchTermIsRequired = errs.NewValueIsRequiredError("term")

// SearchClientsQuery finds client accounts by a name or email fragment.
// The coordinator uses it to look up the requesting client when creating
// a shipment on their behalf.
type SearchClientsQuery struct { //nolint:recvcheck //using for validation
	term string

	guard guard.ConstructorGuard
}

// NewSearchClientsQuery creates a client search query. The term is matched
// case-insensitively against first name, last name and email.
func NewSearchClientsQuery(term string) (SearchClientsQuery, error) {
	clientsQuery := SearchClientsQuery{
		guard: guard.NewConstructorGuard(),
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return SearchClientsQuery{}, ErrSearchTermIsRequired
	}

	clientsQuery.term = term
	return clientsQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q SearchClientsQuery) Validate() error {
	return q.guard.Validate(ErrSearchClientsQueryIsNotConstructed)
}

// Term returns the search fragment.
func (q SearchClientsQuery) Term() string {
	return q.term
}

// SearchClientsQueryResponse is the client account read model.
type SearchClientsQueryResponse struct {
	ID        kernel.UUID
	FirstName string
	LastName  string
	Email     string
}
