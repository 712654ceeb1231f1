package gateway

import (
	"context"
	"database/sql"
	"errors"

	"budget_service/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

type IdentityPostgresGateway struct {
	db *sqlx.DB
}

var _ interfaces.IIdentityGateway = (*IdentityPostgresGateway)(nil)

func NewIdentityPostgresGateway(db *sqlx.DB) *IdentityPostgresGateway {
	return &IdentityPostgresGateway{db: db}
}

// GetUserRole returns "" for unknown and soft-deleted users.
func (g *IdentityPostgresGateway) GetUserRole(ctx context.Context, userID string) (string, error) {
	var role string
	query := `
        SELECT r.name
        FROM users u
        JOIN roles r ON r.id = u.role_id
        WHERE u.id = $1 AND u.deleted_at IS NULL`
	err := g.db.GetContext(ctx, &role, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return role, err
}
