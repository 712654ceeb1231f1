package gateway

import (
	"context"
	"database/sql"
	"errors"

	"budget_service/internal/domain/entities"
	"budget_service/internal/usecase/interfaces"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type teamLinkRow struct {
	TeamID       string          `db:"team_id"`
	TeamName     string          `db:"team_name"`
	WorkHours    float64         `db:"work_hours"`
	ValuePerHour decimal.Decimal `db:"value_per_hour"`
}

type alternativeRow struct {
	ID          string `db:"id"`
	QuestionID  string `db:"question_id"`
	Description string `db:"description"`
}

// CatalogPostgresGateway reads questions, alternatives and their team links.
type CatalogPostgresGateway struct {
	db *sqlx.DB
}

var _ interfaces.ICatalogGateway = (*CatalogPostgresGateway)(nil)

func NewCatalogPostgresGateway(db *sqlx.DB) *CatalogPostgresGateway {
	return &CatalogPostgresGateway{db: db}
}

func (g *CatalogPostgresGateway) QuestionExists(ctx context.Context, questionID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM questions WHERE id = $1)`
	err := g.db.GetContext(ctx, &exists, query, questionID)
	return exists, err
}

func (g *CatalogPostgresGateway) AlternativeBelongsToQuestion(ctx context.Context, alternativeID, questionID string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM alternatives WHERE id = $1 AND question_id = $2)`
	err := g.db.GetContext(ctx, &exists, query, alternativeID, questionID)
	return exists, err
}

func (g *CatalogPostgresGateway) GetAlternativeTeamLinks(ctx context.Context, alternativeID string) ([]entities.AlternativeTeamLink, error) {
	query := `
        SELECT t.id AS team_id, t.name AS team_name, ats.work_hours, t.value_per_hour
        FROM alternatives_teams ats
        JOIN teams t ON t.id = ats.team_id
        WHERE ats.alternative_id = $1
        ORDER BY t.name ASC`
	rows := []teamLinkRow{}
	if err := g.db.SelectContext(ctx, &rows, query, alternativeID); err != nil {
		return nil, err
	}

	links := make([]entities.AlternativeTeamLink, 0, len(rows))
	for _, r := range rows {
		links = append(links, entities.AlternativeTeamLink{
			TeamID:       r.TeamID,
			TeamName:     r.TeamName,
			WorkHours:    r.WorkHours,
			ValuePerHour: r.ValuePerHour,
		})
	}
	return links, nil
}

func (g *CatalogPostgresGateway) FindQuestion(ctx context.Context, questionID string) (entities.Question, error) {
	var q entities.Question
	query := `SELECT id, description FROM questions WHERE id = $1`
	err := g.db.QueryRowxContext(ctx, query, questionID).Scan(&q.ID, &q.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Question{}, nil
	}
	if err != nil {
		return entities.Question{}, err
	}
	return q, nil
}

// FindAlternative returns the alternative with its linked teams, by name only.
func (g *CatalogPostgresGateway) FindAlternative(ctx context.Context, alternativeID string) (entities.Alternative, error) {
	var row alternativeRow
	query := `SELECT id, question_id, description FROM alternatives WHERE id = $1`
	err := g.db.GetContext(ctx, &row, query, alternativeID)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Alternative{}, nil
	}
	if err != nil {
		return entities.Alternative{}, err
	}

	teamsQuery := `
        SELECT t.id, t.name
        FROM alternatives_teams ats
        JOIN teams t ON t.id = ats.team_id
        WHERE ats.alternative_id = $1
        ORDER BY t.name ASC`
	teams := []entities.TeamRef{}
	rows, err := g.db.QueryxContext(ctx, teamsQuery, alternativeID)
	if err != nil {
		return entities.Alternative{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var t entities.TeamRef
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return entities.Alternative{}, err
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return entities.Alternative{}, err
	}

	return entities.Alternative{
		ID:          row.ID,
		QuestionID:  row.QuestionID,
		Description: row.Description,
		Teams:       teams,
	}, nil
}
