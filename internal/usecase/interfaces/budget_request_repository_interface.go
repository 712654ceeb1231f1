package interfaces

import (
	"context"

	"budget_service/internal/domain/entities"
)

// IBudgetRequestStore abstracts persistence of budget requests and their answers.
//
// Lookups return zero values (ID == "") when the record does not exist.
// Conditional writes fail with pkg.ErrConflict when ExpectedVersion no longer
// matches the stored row, and the caller is expected to retry.
type IBudgetRequestStore interface {
	CreateBudgetRequest(ctx context.Context, br entities.BudgetRequest) (entities.BudgetRequest, error)
	CreateAnswerRecords(ctx context.Context, answers []entities.AnswerRecord) error
	FindByID(ctx context.Context, id string) (entities.BudgetRequest, error)
	FindByIDWithAnswers(ctx context.Context, id string) (entities.BudgetRequestWithAnswers, error)
	FindAllByStatus(ctx context.Context, status entities.BudgetStatus) ([]entities.BudgetRequest, error)
	UpdateStatusAndApprover(ctx context.Context, id string, patch entities.ApprovalPatch) error
	UpdateAnswer(ctx context.Context, budgetRequestID, id string, patch entities.AnswerPatch) error
	UpdateTotals(ctx context.Context, id string, patch entities.TotalsPatch) error
	DeleteByID(ctx context.Context, id string) error
}

// IBudgetRequestRepository is the store plus a unit of work.
//
// Writes issued on the tx passed to fn become visible together when fn
// returns nil, and not at all otherwise.
type IBudgetRequestRepository interface {
	IBudgetRequestStore
	WithinTx(ctx context.Context, fn func(tx IBudgetRequestStore) error) error
}
