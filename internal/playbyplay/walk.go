package playbyplay

import (
	"github.com/pfrederiksen/pfr-turnovers/internal/boxscore"
	"github.com/pfrederiksen/pfr-turnovers/internal/turnover"
)

// regulationPeriods is the number of quarters before overtime
const regulationPeriods = 4

// Play is a Normal row together with the turnovers found in it
type Play struct {
	Row       int               `json:"row"`
	Period    int               `json:"period"`
	Detail    string            `json:"detail"`
	Turnovers []turnover.Record `json:"turnovers,omitempty"`
}

// GameResult is the outcome of walking one game's play-by-play table
type GameResult struct {
	Plays       []Play                `json:"plays"`
	Diagnostics []turnover.Diagnostic `json:"diagnostics,omitempty"`
	Counts      map[turnover.Kind]int `json:"counts"`
}

// Turnovers returns every play that has at least one turnover
func (g *GameResult) Turnovers() []Play {
	var out []Play
	for _, p := range g.Plays {
		if len(p.Turnovers) > 0 {
			out = append(out, p)
		}
	}
	return out
}

// Walk classifies every row, tracks the current period, and extracts turnovers
// from each play. Rows that cannot be resolved only add diagnostics.
func Walk(rows []boxscore.Row, home, away turnover.Roster) *GameResult {
	result := &GameResult{
		Plays:  make([]Play, 0, len(rows)),
		Counts: make(map[turnover.Kind]int),
	}

	period := 1
	for i, row := range rows {
		kind := Classify(row.Text)
		switch kind {
		case Header, EndOfPeriod:
			continue
		case Quarter1, Quarter2, Quarter3, Quarter4:
			period = kind.Quarter()
			continue
		case Overtime:
			if period < regulationPeriods {
				period = regulationPeriods
			}
			period++
			continue
		}

		result.add(i, period, row.Detail(), home, away)
	}

	return result
}

// Single extracts the turnovers of one play description without row
// classification. The play has period 0.
func Single(detail string, home, away turnover.Roster) *GameResult {
	result := &GameResult{Counts: make(map[turnover.Kind]int)}
	result.add(0, 0, detail, home, away)
	return result
}

func (g *GameResult) add(row, period int, detail string, home, away turnover.Roster) {
	extracted := turnover.Extract(detail, home, away)
	for _, rec := range extracted.Records {
		g.Counts[rec.Kind]++
	}

	g.Plays = append(g.Plays, Play{
		Row:       row,
		Period:    period,
		Detail:    detail,
		Turnovers: extracted.Records,
	})
	g.Diagnostics = append(g.Diagnostics, extracted.Diagnostics...)
}
