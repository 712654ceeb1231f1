package entities

import "github.com/shopspring/decimal"

// Catalog, client and team records are owned by the back-office registries.
// The budget service only reads them.

type Question struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// TeamRef exposes a team by name only; rates never leave the aggregation path.
type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Alternative struct {
	ID          string    `json:"id"`
	QuestionID  string    `json:"question_id"`
	Description string    `json:"description"`
	Teams       []TeamRef `json:"teams"`
}

// AlternativeTeamLink pairs an alternative with a team estimate.
// Multiple links per alternative are legal and are all summed.
type AlternativeTeamLink struct {
	TeamID       string
	TeamName     string
	WorkHours    float64
	ValuePerHour decimal.Decimal
}

type Client struct {
	ID                 string `json:"id"`
	CompanyName        string `json:"company_name"`
	PrimaryContactName string `json:"primary_contact_name"`
	Phone              string `json:"phone,omitempty"`
	Email              string `json:"email,omitempty"`
}

type BudgetRequestSummary struct {
	BudgetRequest
	Client Client
}

type AnswerDetails struct {
	AnswerRecord
	Question    *Question
	Alternative *Alternative
}

type BudgetRequestDetails struct {
	BudgetRequest
	Client    Client
	Responses []AnswerDetails
}
