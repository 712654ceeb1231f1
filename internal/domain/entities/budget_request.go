package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetStatus represents the lifecycle of a budget request.
//
// Status only moves forward: request -> review -> approved. Each step is
// driven by an approval from the matching role, never by a direct write.
type BudgetStatus string

const (
	BudgetStatusRequest  BudgetStatus = "request"
	BudgetStatusReview   BudgetStatus = "review"
	BudgetStatusApproved BudgetStatus = "approved"
)

var budgetStatusOrder = map[BudgetStatus]int{
	BudgetStatusRequest:  1,
	BudgetStatusReview:   2,
	BudgetStatusApproved: 3,
}

func (s BudgetStatus) IsValid() bool {
	_, ok := budgetStatusOrder[s]
	return ok
}

// CanAdvanceTo reports whether next is strictly later than s.
func (s BudgetStatus) CanAdvanceTo(next BudgetStatus) bool {
	cur, ok := budgetStatusOrder[s]
	if !ok {
		return false
	}
	nxt, ok := budgetStatusOrder[next]
	if !ok {
		return false
	}
	return nxt > cur
}

// BudgetRequest is the computed budget for one client's answer set.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (status-index): status
//
// Amount and TotalHours are always derived from the answers; Version is the
// optimistic concurrency token checked by every conditional write.
type BudgetRequest struct {
	ID                  string          `json:"id"`
	ClientID            string          `json:"client_id"`
	Status              BudgetStatus    `json:"status"`
	Amount              decimal.Decimal `json:"amount"`
	TotalHours          float64         `json:"total_hours"`
	ApprovedByPreSale   string          `json:"approved_by_pre_sale,omitempty"`
	ApprovedByFinancial string          `json:"approved_by_financial,omitempty"`
	Notes               string          `json:"notes,omitempty"`
	Version             int             `json:"version"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// AnswerRecord is one client response to a catalog question.
//
// Storage model (DynamoDB):
//   - PK: budget_request_id
//   - SK: id
//
// ValuePerHour and WorkHours are nil unless the selected alternative has
// linked teams.
type AnswerRecord struct {
	ID              string           `json:"id"`
	BudgetRequestID string           `json:"budget_request_id"`
	QuestionID      string           `json:"question_id"`
	AlternativeID   string           `json:"alternative_id,omitempty"`
	ResponseDetails string           `json:"response_details,omitempty"`
	ValuePerHour    *decimal.Decimal `json:"value_per_hour,omitempty"`
	WorkHours       *float64         `json:"work_hours,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

type BudgetRequestWithAnswers struct {
	BudgetRequest
	Answers []AnswerRecord
}

// ApprovalPatch is the single atomic write applied by an approval.
type ApprovalPatch struct {
	ExpectedVersion     int
	Status              BudgetStatus
	ApprovedByPreSale   string
	ApprovedByFinancial string
	Notes               *string
}

// AnswerPatch updates the contribution of one answer. Nil fields are left untouched.
type AnswerPatch struct {
	ValuePerHour *decimal.Decimal
	WorkHours    *float64
}

type TotalsPatch struct {
	ExpectedVersion int
	Amount          decimal.Decimal
	TotalHours      float64
}
