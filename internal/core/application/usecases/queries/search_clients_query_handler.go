package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"orgtrack/internal/core/domain/model/account"
	"orgtrack/internal/core/domain/model/kernel"
)

// SearchClientsQueryHandler finds client accounts with direct SQL.
type SearchClientsQueryHandler struct {
	db *gorm.DB
}

// NewSearchClientsQueryHandler creates a handler for client search queries.
func NewSearchClientsQueryHandler(db *gorm.DB) SearchClientsQueryHandler {
	return SearchClientsQueryHandler{db: db}
}

// Handle executes the search. Only accounts with the client role match.
func (h SearchClientsQueryHandler) Handle(
	ctx context.Context,
	query SearchClientsQuery,
) ([]SearchClientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pattern := "%" + query.Term() + "%"
	clients := make([]SearchClientsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			email
		FROM users
		WHERE role = ?
		  AND (first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?)
		ORDER BY last_name, first_name
		LIMIT 50
	`, int(account.RoleClient), pattern, pattern, pattern).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var client SearchClientsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&client.FirstName,
			&client.LastName,
			&client.Email,
		)
		if err != nil {
			return nil, err
		}

		clientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		client.ID = clientID

		clients = append(clients, client)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}
