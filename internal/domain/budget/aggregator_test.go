package budget

import (
	"testing"

	"budget_service/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func link(rate string, hours float64) entities.AlternativeTeamLink {
	return entities.AlternativeTeamLink{ValuePerHour: decimal.RequireFromString(rate), WorkHours: hours}
}

func TestAnswerContribution(t *testing.T) {
	t.Run("sums rates and hours across teams", func(t *testing.T) {
		c := AnswerContribution([]entities.AlternativeTeamLink{link("50", 2), link("30", 1)})

		require.True(t, c.HasTeams)
		require.True(t, c.ValuePerHour.Equal(decimal.NewFromInt(80)), "rate: %s", c.ValuePerHour)
		require.Equal(t, 3.0, c.WorkHours)
		require.True(t, c.Amount.Equal(decimal.NewFromInt(130)), "amount: %s", c.Amount)
	})

	t.Run("no teams contributes nothing", func(t *testing.T) {
		c := AnswerContribution(nil)

		require.False(t, c.HasTeams)
		require.True(t, c.ValuePerHour.IsZero())
		require.Zero(t, c.WorkHours)
		require.True(t, c.Amount.IsZero())
	})
}

func TestCreationTotals(t *testing.T) {
	totals := CreationTotals([][]entities.AlternativeTeamLink{
		{link("50", 2), link("30", 1)},
		nil,
		{link("12.345", 1)},
	})

	require.True(t, totals.Amount.Equal(decimal.RequireFromString("142.345")), "amount: %s", totals.Amount)
	require.Equal(t, 4.0, totals.TotalHours)

	rounded := totals.Rounded()
	require.Equal(t, "142.35", rounded.Amount.StringFixed(2))
	require.Equal(t, 4.0, rounded.TotalHours)
}

func TestCreationAndRecomputeBasesDiverge(t *testing.T) {
	links := []entities.AlternativeTeamLink{link("50", 2), link("30", 1)}
	c := AnswerContribution(links)

	creation := CreationTotals([][]entities.AlternativeTeamLink{links})
	recomputed := RecomputeTotals([]entities.AnswerRecord{{ValuePerHour: &c.ValuePerHour, WorkHours: &c.WorkHours}})

	require.Equal(t, "130", creation.Amount.String())
	require.Equal(t, "240", recomputed.Amount.String())
	require.Equal(t, creation.TotalHours, recomputed.TotalHours)
}

func TestRecomputeTotals(t *testing.T) {
	rate := decimal.RequireFromString("40.5")
	hours := 2.0
	onlyRate := decimal.NewFromInt(99)

	totals := RecomputeTotals([]entities.AnswerRecord{
		{ValuePerHour: &rate, WorkHours: &hours},
		{ResponseDetails: "feedback only"},
		{ValuePerHour: &onlyRate},
	})

	require.Equal(t, "81", totals.Amount.String())
	require.Equal(t, 2.0, totals.TotalHours)
}

func TestRoundAmount(t *testing.T) {
	cases := map[string]string{
		"10.005":  "10.01",
		"10.004":  "10",
		"0.125":   "0.13",
		"130":     "130",
		"99.9949": "99.99",
	}
	for in, want := range cases {
		got := RoundAmount(decimal.RequireFromString(in))
		require.True(t, got.Equal(decimal.RequireFromString(want)), "RoundAmount(%s) = %s, want %s", in, got, want)
	}
}
