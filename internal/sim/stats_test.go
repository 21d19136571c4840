package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/premodern/goldfisher/internal/game"
)

func TestReportAggregation(t *testing.T) {
	r := NewReport("test")

	r.Add(game.Result{Outcome: game.OutcomeWin, Turn: 3, Mulligans: 1})
	r.Add(game.Result{Outcome: game.OutcomeWin, Turn: 3})
	r.Add(game.Result{Outcome: game.OutcomeWin, Turn: 5, Mulligans: 2})
	r.Add(game.Result{Outcome: game.OutcomeLose, Turn: 4, Mulligans: 1})
	r.Add(game.Result{Outcome: game.OutcomeDraw, Turn: 6})

	assert.Equal(t, 5, r.Games)
	assert.Equal(t, 3, r.Wins)
	assert.Equal(t, 1, r.Loses)
	assert.Equal(t, 1, r.Draws)
	assert.InDelta(t, (3.0+3+5)/3, r.AverageWinTurn(), 1e-9)
	assert.InDelta(t, 4.0/5, r.AverageMulligans(), 1e-9)
}

func TestReportRowsAreCumulative(t *testing.T) {
	r := NewReport("test")
	for i := 0; i < 6; i++ {
		r.Add(game.Result{Outcome: game.OutcomeWin, Turn: 2})
	}
	for i := 0; i < 2; i++ {
		r.Add(game.Result{Outcome: game.OutcomeWin, Turn: 4})
	}
	r.Add(game.Result{Outcome: game.OutcomeLose, Turn: 9})
	r.Add(game.Result{Outcome: game.OutcomeLose, Turn: 9})

	rows := r.WinRows()
	assert.Equal(t, []TurnRow{
		{Turn: 2, Count: 6, Percent: 60, Cumulative: 60},
		{Turn: 4, Count: 2, Percent: 20, Cumulative: 80},
	}, rows)

	losses := r.LossRows()
	assert.Equal(t, []TurnRow{
		{Turn: 9, Count: 2, Percent: 20, Cumulative: 20},
	}, losses)
}

func TestEmptyReportAverages(t *testing.T) {
	r := NewReport("empty")

	assert.Zero(t, r.AverageWinTurn())
	assert.Zero(t, r.AverageMulligans())
	assert.Empty(t, r.WinRows())
}

func TestSummaryLayout(t *testing.T) {
	r := NewReport("test")
	r.Add(game.Result{Outcome: game.OutcomeWin, Turn: 3})

	lines := r.Summary()
	assert.Contains(t, lines, "Turn 03: 1 wins (100.0%) - cumulative 100.0%")
}
