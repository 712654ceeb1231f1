package gateway

import (
	"context"
	"database/sql"
	"errors"

	"budget_service/internal/domain/entities"
	"budget_service/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
)

type clientRow struct {
	ID                 string `db:"id"`
	CompanyName        string `db:"company_name"`
	PrimaryContactName string `db:"primary_contact_name"`
	Phone              string `db:"phone"`
	Email              string `db:"email"`
}

type ClientPostgresGateway struct {
	db *sqlx.DB
}

var _ interfaces.IClientGateway = (*ClientPostgresGateway)(nil)

func NewClientPostgresGateway(db *sqlx.DB) *ClientPostgresGateway {
	return &ClientPostgresGateway{db: db}
}

func (g *ClientPostgresGateway) ClientExists(ctx context.Context, clientID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`
	err := g.db.GetContext(ctx, &exists, query, clientID)
	return exists, err
}

func (g *ClientPostgresGateway) FindClient(ctx context.Context, clientID string) (entities.Client, error) {
	var row clientRow
	query := `SELECT id, company_name, primary_contact_name, phone, email FROM clients WHERE id = $1`
	err := g.db.GetContext(ctx, &row, query, clientID)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return entities.Client{
		ID:                 row.ID,
		CompanyName:        row.CompanyName,
		PrimaryContactName: row.PrimaryContactName,
		Phone:              row.Phone,
		Email:              row.Email,
	}, nil
}
