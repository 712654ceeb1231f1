package response

import (
	"time"

	"budget_service/internal/domain/budget"
	"budget_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DateLayout is how timestamps are rendered to API consumers (dd/mm/yyyy hh:mm, UTC).
const DateLayout = "02/01/2006 15:04"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(budget.AmountPlaces)
}

// BudgetRequestResponse is returned by create, approve and update.
type BudgetRequestResponse struct {
	ID                  string  `json:"id"`
	ClientID            string  `json:"clientId"`
	Status              string  `json:"status"`
	Amount              string  `json:"amount"`
	TotalHours          float64 `json:"totalHours"`
	ApprovedByPreSale   string  `json:"approvedByPreSale,omitempty"`
	ApprovedByFinancial string  `json:"approvedByFinancial,omitempty"`
	Notes               string  `json:"notes,omitempty"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           string  `json:"updatedAt"`
}

func FromBudgetRequest(br entities.BudgetRequest) BudgetRequestResponse {
	return BudgetRequestResponse{
		ID:                  br.ID,
		ClientID:            br.ClientID,
		Status:              string(br.Status),
		Amount:              formatAmount(br.Amount),
		TotalHours:          br.TotalHours,
		ApprovedByPreSale:   br.ApprovedByPreSale,
		ApprovedByFinancial: br.ApprovedByFinancial,
		Notes:               br.Notes,
		CreatedAt:           formatDate(br.CreatedAt),
		UpdatedAt:           formatDate(br.UpdatedAt),
	}
}

type ClientSummaryResponse struct {
	ID                 string `json:"id"`
	CompanyName        string `json:"companyName"`
	PrimaryContactName string `json:"primaryContactName"`
}

type BudgetRequestSummaryResponse struct {
	ID        string                `json:"id"`
	Status    string                `json:"status"`
	CreatedAt string                `json:"createdAt"`
	UpdatedAt string                `json:"updatedAt"`
	Client    ClientSummaryResponse `json:"client"`
}

func FromBudgetRequestSummaries(items []entities.BudgetRequestSummary) []BudgetRequestSummaryResponse {
	out := make([]BudgetRequestSummaryResponse, 0, len(items))
	for _, s := range items {
		out = append(out, BudgetRequestSummaryResponse{
			ID:        s.ID,
			Status:    string(s.Status),
			CreatedAt: formatDate(s.CreatedAt),
			UpdatedAt: formatDate(s.UpdatedAt),
			Client: ClientSummaryResponse{
				ID:                 s.Client.ID,
				CompanyName:        s.Client.CompanyName,
				PrimaryContactName: s.Client.PrimaryContactName,
			},
		})
	}
	return out
}

type ClientResponse struct {
	ID                 string `json:"id"`
	CompanyName        string `json:"companyName"`
	PrimaryContactName string `json:"primaryContactName"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
}

type QuestionResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AlternativeResponse struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Teams       []TeamResponse `json:"teams"`
}

// FormResponseResponse is one stored answer. Team rates are never exposed,
// only the answer's aggregated contribution.
type FormResponseResponse struct {
	ID              string               `json:"id"`
	ResponseDetails string               `json:"responseDetails,omitempty"`
	ValuePerHour    *string              `json:"valuePerHour"`
	WorkHours       *float64             `json:"workHours"`
	Question        *QuestionResponse    `json:"question"`
	Alternative     *AlternativeResponse `json:"alternative"`
}

type BudgetRequestDetailsResponse struct {
	ID                  string                 `json:"id"`
	Status              string                 `json:"status"`
	Amount              string                 `json:"amount"`
	TotalHours          float64                `json:"totalHours"`
	ApprovedByPreSale   string                 `json:"approvedByPreSale,omitempty"`
	ApprovedByFinancial string                 `json:"approvedByFinancial,omitempty"`
	Notes               string                 `json:"notes,omitempty"`
	CreatedAt           string                 `json:"createdAt"`
	UpdatedAt           string                 `json:"updatedAt"`
	Client              ClientResponse         `json:"client"`
	FormResponses       []FormResponseResponse `json:"formResponses"`
}

func FromBudgetRequestDetails(d entities.BudgetRequestDetails) BudgetRequestDetailsResponse {
	res := BudgetRequestDetailsResponse{
		ID:                  d.ID,
		Status:              string(d.Status),
		Amount:              formatAmount(d.Amount),
		TotalHours:          d.TotalHours,
		ApprovedByPreSale:   d.ApprovedByPreSale,
		ApprovedByFinancial: d.ApprovedByFinancial,
		Notes:               d.Notes,
		CreatedAt:           formatDate(d.CreatedAt),
		UpdatedAt:           formatDate(d.UpdatedAt),
		Client: ClientResponse{
			ID:                 d.Client.ID,
			CompanyName:        d.Client.CompanyName,
			PrimaryContactName: d.Client.PrimaryContactName,
			Phone:              d.Client.Phone,
			Email:              d.Client.Email,
		},
		FormResponses: make([]FormResponseResponse, 0, len(d.Responses)),
	}

	for _, a := range d.Responses {
		fr := FormResponseResponse{
			ID:              a.ID,
			ResponseDetails: a.ResponseDetails,
			WorkHours:       a.WorkHours,
		}
		if a.ValuePerHour != nil {
			v := a.ValuePerHour.String()
			fr.ValuePerHour = &v
		}
		if a.Question != nil {
			fr.Question = &QuestionResponse{ID: a.Question.ID, Description: a.Question.Description}
		}
		if a.Alternative != nil {
			alt := &AlternativeResponse{
				ID:          a.Alternative.ID,
				Description: a.Alternative.Description,
				Teams:       make([]TeamResponse, 0, len(a.Alternative.Teams)),
			}
			for _, t := range a.Alternative.Teams {
				alt.Teams = append(alt.Teams, TeamResponse{ID: t.ID, Name: t.Name})
			}
			fr.Alternative = alt
		}
		res.FormResponses = append(res.FormResponses, fr)
	}
	return res
}
