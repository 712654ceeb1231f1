// Package budget computes cost and hour contributions of questionnaire answers.
//
// Everything here is pure: no I/O, no errors, deterministic for a given input.
package budget

import (
	"budget_service/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the number of decimal places kept on a persisted amount.
const AmountPlaces = 2

// Contribution is what one answer adds to its budget request.
type Contribution struct {
	// ValuePerHour is the sum of every linked team's hourly rate (not an average).
	ValuePerHour decimal.Decimal
	// WorkHours is the sum of every linked team's estimated hours.
	WorkHours float64
	// Amount is the sum of rate x hours per team link.
	Amount   decimal.Decimal
	HasTeams bool
}

// AnswerContribution aggregates the team links of the alternative selected by one answer.
// An alternative without teams contributes nothing and the answer is qualitative feedback.
func AnswerContribution(links []entities.AlternativeTeamLink) Contribution {
	c := Contribution{ValuePerHour: decimal.Zero, Amount: decimal.Zero}
	for _, l := range links {
		c.ValuePerHour = c.ValuePerHour.Add(l.ValuePerHour)
		c.WorkHours += l.WorkHours
		c.Amount = c.Amount.Add(linkAmount(l))
		c.HasTeams = true
	}
	return c
}

// Totals accumulates the amount and hours of a whole budget request.
type Totals struct {
	Amount     decimal.Decimal
	TotalHours float64
}

// AddLinks adds every team link's rate x hours and hours.
// This is the creation-time basis.
func (t *Totals) AddLinks(links []entities.AlternativeTeamLink) {
	for _, l := range links {
		t.Amount = t.Amount.Add(linkAmount(l))
		t.TotalHours += l.WorkHours
	}
}

// AddAnswer adds answer.ValuePerHour x answer.WorkHours. Missing fields count as zero.
// This is the update-time basis.
func (t *Totals) AddAnswer(a entities.AnswerRecord) {
	rate := decimal.Zero
	if a.ValuePerHour != nil {
		rate = *a.ValuePerHour
	}
	hours := 0.0
	if a.WorkHours != nil {
		hours = *a.WorkHours
	}
	t.Amount = t.Amount.Add(rate.Mul(decimal.NewFromFloat(hours)))
	t.TotalHours += hours
}

// Rounded returns the totals with the amount rounded for persistence.
func (t Totals) Rounded() Totals {
	return Totals{Amount: RoundAmount(t.Amount), TotalHours: t.TotalHours}
}

// CreationTotals sums team-link products over every answer's links.
func CreationTotals(linksPerAnswer [][]entities.AlternativeTeamLink) Totals {
	t := Totals{Amount: decimal.Zero}
	for _, links := range linksPerAnswer {
		t.AddLinks(links)
	}
	return t
}

// RecomputeTotals sums per-answer products over the current answers.
func RecomputeTotals(answers []entities.AnswerRecord) Totals {
	t := Totals{Amount: decimal.Zero}
	for _, a := range answers {
		t.AddAnswer(a)
	}
	return t
}

// RoundAmount rounds half-up to AmountPlaces. Amounts are never negative,
// so decimal's half-away-from-zero rounding is half-up here.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

func linkAmount(l entities.AlternativeTeamLink) decimal.Decimal {
	return l.ValuePerHour.Mul(decimal.NewFromFloat(l.WorkHours))
}
