package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fanstore/internal/core/domain/model/kernel"
	"fanstore/internal/core/domain/model/user"
)

// GetRidersQueryHandler retrieves the rider roster from the database.
type GetRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetRidersQueryHandler creates a handler for rider roster queries.
// Requires a GORM database connection for query execution.
func NewGetRidersQueryHandler(db *gorm.DB) GetRidersQueryHandler {
	return GetRidersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by name for stable output.
func (h GetRidersQueryHandler) Handle(
	ctx context.Context,
	query GetRidersQuery,
) ([]GetRidersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetRidersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email
		FROM users
		WHERE role = ?
		ORDER BY name
	`, user.RoleRider.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			rider GetRidersQueryResponse
		)

		if err = rows.Scan(&id, &rider.Name, &rider.Email); err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		rider.ID = riderID
		riders = append(riders, rider)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
