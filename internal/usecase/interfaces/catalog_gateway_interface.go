package interfaces

import (
	"context"

	"budget_service/internal/domain/entities"
)

// ICatalogGateway reads the question/alternative/team registries.
//
// Find* methods return zero values (ID == "") when the record does not exist.
type ICatalogGateway interface {
	QuestionExists(ctx context.Context, questionID string) (bool, error)
	AlternativeBelongsToQuestion(ctx context.Context, alternativeID, questionID string) (bool, error)
	GetAlternativeTeamLinks(ctx context.Context, alternativeID string) ([]entities.AlternativeTeamLink, error)
	FindQuestion(ctx context.Context, questionID string) (entities.Question, error)
	FindAlternative(ctx context.Context, alternativeID string) (entities.Alternative, error)
}
