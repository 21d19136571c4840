package sim

import (
	"fmt"
	"sort"

	"github.com/premodern/goldfisher/internal/game"
)

// Report aggregates the results of a simulation batch.
type Report struct {
	ID    string `json:"id"`
	Games int    `json:"games"`
	Wins  int    `json:"wins"`
	Loses int    `json:"loses"`
	Draws int    `json:"draws"`

	WinsByTurn   map[int]int `json:"wins_by_turn"`
	LossesByTurn map[int]int `json:"losses_by_turn"`

	totalWinTurns  int
	totalMulligans int
}

// NewReport returns an empty report for the batch.
func NewReport(id string) *Report {
	return &Report{
		ID:           id,
		WinsByTurn:   make(map[int]int),
		LossesByTurn: make(map[int]int),
	}
}

// Add folds one game result into the report.
func (r *Report) Add(result game.Result) {
	r.Games++
	r.totalMulligans += result.Mulligans

	switch result.Outcome {
	case game.OutcomeWin:
		r.Wins++
		r.WinsByTurn[result.Turn]++
		r.totalWinTurns += result.Turn
	case game.OutcomeDraw:
		r.Draws++
		r.LossesByTurn[result.Turn]++
	default:
		r.Loses++
		r.LossesByTurn[result.Turn]++
	}
}

// AverageWinTurn is the mean turn of the winning games.
func (r *Report) AverageWinTurn() float64 {
	if r.Wins == 0 {
		return 0
	}
	return float64(r.totalWinTurns) / float64(r.Wins)
}

// AverageMulligans is the mean mulligan count across all games.
func (r *Report) AverageMulligans() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.totalMulligans) / float64(r.Games)
}

// TurnRow is one line of the per-turn breakdown.
type TurnRow struct {
	Turn       int     `json:"turn"`
	Count      int     `json:"count"`
	Percent    float64 `json:"percent"`
	Cumulative float64 `json:"cumulative"`
}

func turnRows(byTurn map[int]int, total int) []TurnRow {
	turns := make([]int, 0, len(byTurn))
	for turn := range byTurn {
		turns = append(turns, turn)
	}
	sort.Ints(turns)

	rows := make([]TurnRow, 0, len(turns))
	cumulative := 0.0
	for _, turn := range turns {
		percent := 100 * float64(byTurn[turn]) / float64(total)
		cumulative += percent
		rows = append(rows, TurnRow{
			Turn:       turn,
			Count:      byTurn[turn],
			Percent:    percent,
			Cumulative: cumulative,
		})
	}
	return rows
}

// WinRows is the per-turn win breakdown, earliest turn first.
func (r *Report) WinRows() []TurnRow {
	return turnRows(r.WinsByTurn, r.Games)
}

// LossRows is the per-turn loss breakdown, earliest turn first.
func (r *Report) LossRows() []TurnRow {
	return turnRows(r.LossesByTurn, r.Games)
}

// Summary renders the report in the classic results table layout.
func (r *Report) Summary() []string {
	lines := []string{
		"=======================[ RESULTS ]==========================",
		fmt.Sprintf("                 Average turn: %.2f", r.AverageWinTurn()),
		fmt.Sprintf("            Average mulligans: %.2f", r.AverageMulligans()),
		fmt.Sprintf("         Wins per turn after %d games:", r.Games),
		"============================================================",
	}
	for _, row := range r.WinRows() {
		lines = append(lines, fmt.Sprintf(
			"Turn %02d: %d wins (%.1f%%) - cumulative %.1f%%",
			row.Turn, row.Count, row.Percent, row.Cumulative,
		))
	}
	for _, row := range r.LossRows() {
		lines = append(lines, fmt.Sprintf(
			"Turn %02d: %d losses (%.1f%%) - cumulative %.1f%%",
			row.Turn, row.Count, row.Percent, row.Cumulative,
		))
	}
	return lines
}
