package cli

import (
	"sort"

	"github.com/pfrederiksen/pfr-turnovers/internal/playbyplay"
	"github.com/pfrederiksen/pfr-turnovers/internal/turnover"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByRow  SortOrder = "row"
	SortByKind SortOrder = "kind"
	SortByTeam SortOrder = "team"
)

// sortPlays orders turnover plays in place. Ties keep table order.
func sortPlays(plays []playbyplay.Play, order SortOrder) {
	switch order {
	case SortByRow:
		sort.SliceStable(plays, func(i, j int) bool {
			return plays[i].Row < plays[j].Row
		})
	case SortByKind:
		sort.SliceStable(plays, func(i, j int) bool {
			return firstKind(plays[i]) < firstKind(plays[j])
		})
	case SortByTeam:
		sort.SliceStable(plays, func(i, j int) bool {
			return teamRank(plays[i]) < teamRank(plays[j])
		})
	}
}

// firstKind returns the kind of a play's first turnover
func firstKind(p playbyplay.Play) turnover.Kind {
	if len(p.Turnovers) == 0 {
		return turnover.Unknown
	}
	return p.Turnovers[0].Kind
}

// teamRank puts home giveaways first, then away, then unattributed plays
func teamRank(p playbyplay.Play) int {
	if len(p.Turnovers) == 0 {
		return 2
	}
	switch p.Turnovers[0].CommittingTeam {
	case turnover.Home:
		return 0
	case turnover.Away:
		return 1
	default:
		return 2
	}
}
