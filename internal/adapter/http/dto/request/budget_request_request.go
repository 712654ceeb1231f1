package request

import (
	"budget_service/internal/usecase"

	"github.com/shopspring/decimal"
)

type ResponseRequest struct {
	QuestionID      string `json:"questionId" binding:"required"`
	AlternativeID   string `json:"alternativeId"`
	ResponseDetails string `json:"responseDetails"`
}

// CreateBudgetRequestRequest is the body of POST /budget-requests.
type CreateBudgetRequestRequest struct {
	ClientID  string            `json:"clientId" binding:"required"`
	Responses []ResponseRequest `json:"responses"`
}

func (r CreateBudgetRequestRequest) ToInput() usecase.CreateBudgetRequestInput {
	answers := make([]usecase.AnswerInput, 0, len(r.Responses))
	for _, resp := range r.Responses {
		answers = append(answers, usecase.AnswerInput{
			QuestionID:      resp.QuestionID,
			AlternativeID:   resp.AlternativeID,
			ResponseDetails: resp.ResponseDetails,
		})
	}
	return usecase.CreateBudgetRequestInput{ClientID: r.ClientID, Answers: answers}
}

type ApproveBudgetRequestRequest struct {
	BudgetRequestID string `json:"budgetRequestId" binding:"required"`
	Notes           string `json:"notes"`
}

func (r ApproveBudgetRequestRequest) ToInput() usecase.ApproveBudgetRequestInput {
	return usecase.ApproveBudgetRequestInput{BudgetRequestID: r.BudgetRequestID, Notes: r.Notes}
}

// FormResponseRequest overrides the contribution of one stored response.
// Omitted fields keep their current value.
type FormResponseRequest struct {
	ID           string           `json:"id" binding:"required"`
	ValuePerHour *decimal.Decimal `json:"valuePerHour"`
	WorkHours    *float64         `json:"workHours"`
}

type UpdateBudgetRequestRequest struct {
	FormResponses []FormResponseRequest `json:"formResponses"`
}

func (r UpdateBudgetRequestRequest) ToUpdates() []usecase.AnswerUpdate {
	updates := make([]usecase.AnswerUpdate, 0, len(r.FormResponses))
	for _, fr := range r.FormResponses {
		updates = append(updates, usecase.AnswerUpdate{
			ID:           fr.ID,
			ValuePerHour: fr.ValuePerHour,
			WorkHours:    fr.WorkHours,
		})
	}
	return updates
}
