package turnover

import (
	"fmt"
)

// Roster is a team's set of player names
type Roster interface {
	Contains(name string) bool
}

// PlayerSet is a Roster backed by a map
type PlayerSet map[string]struct{}

// NewPlayerSet builds a PlayerSet from names
func NewPlayerSet(names ...string) PlayerSet {
	set := make(PlayerSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Contains reports whether name is on the roster
func (p PlayerSet) Contains(name string) bool {
	_, ok := p[name]
	return ok
}

// sideOf returns the team a player uniquely belongs to. Absent names and names
// on both or neither roster are unresolved.
func sideOf(name *string, home, away Roster) Side {
	if name == nil {
		return ""
	}
	inHome := home != nil && home.Contains(*name)
	inAway := away != nil && away.Contains(*name)
	switch {
	case inHome && !inAway:
		return Home
	case inAway && !inHome:
		return Away
	default:
		return ""
	}
}

// AttributeTeams determines which team committed and which recovered the
// turnover in fragment.
//
// An interception always changes possession, so one uniquely identified player
// settles both sides. A fumble may be recovered by either team, so committer and
// recoverer are resolved independently. Every player left unresolved produces a
// Diagnostic naming them. Unknown kinds carry no names and resolve to nothing.
func AttributeTeams(fragment string, kind Kind, committer, recoverer *string, home, away Roster) (Attribution, []Diagnostic) {
	if kind == Unknown {
		return Attribution{}, nil
	}

	comSide := sideOf(committer, home, away)
	recSide := sideOf(recoverer, home, away)

	if kind == Interception {
		switch {
		case comSide == Home || recSide == Away:
			return Attribution{Committing: Home, Recovering: Away}, nil
		case comSide == Away || recSide == Home:
			return Attribution{Committing: Away, Recovering: Home}, nil
		}
		return Attribution{}, []Diagnostic{
			ambiguousInterception(fragment, "passing", committer),
			ambiguousInterception(fragment, "intercepting", recoverer),
		}
	}

	var diags []Diagnostic
	attr := Attribution{Committing: comSide, Recovering: recSide}
	if !comSide.Resolved() {
		diags = append(diags, unresolvedPlayer(fragment, "committing", committer))
	}
	if !recSide.Resolved() {
		diags = append(diags, unresolvedPlayer(fragment, "recovering", recoverer))
	}
	return attr, diags
}

func unresolvedPlayer(fragment, role string, name *string) Diagnostic {
	player := nameOrUnknown(name)
	return Diagnostic{
		Code:     CodeUnresolvedPlayer,
		Fragment: fragment,
		Player:   player,
		Message:  fmt.Sprintf("turnover %s player %q not recognized", role, player),
	}
}

func ambiguousInterception(fragment, role string, name *string) Diagnostic {
	player := nameOrUnknown(name)
	return Diagnostic{
		Code:     CodeAmbiguousInterception,
		Fragment: fragment,
		Player:   player,
		Message:  fmt.Sprintf("interception %s player %q not uniquely on either roster", role, player),
	}
}

func nameOrUnknown(name *string) string {
	if name == nil {
		return "<unknown>"
	}
	return *name
}
