package turnover

import (
	"strings"
)

// Kind is the type of a turnover
type Kind int

const (
	Unknown Kind = iota
	Fumble
	Interception
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case Fumble:
		return "fumble"
	case Interception:
		return "interception"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name so JSON output stays readable
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Side identifies which team a player belongs to. The zero value means unresolved.
type Side string

const (
	Home Side = "home"
	Away Side = "away"
)

// Resolved reports whether the side names a team
func (s Side) Resolved() bool {
	return s == Home || s == Away
}

// Record is one turnover extracted from a play
type Record struct {
	Fragment       string  `json:"fragment"`
	Kind           Kind    `json:"kind"`
	Committer      *string `json:"committer,omitempty"`
	Recoverer      *string `json:"recoverer,omitempty"`
	CommittingTeam Side    `json:"committing_team,omitempty"`
	RecoveringTeam Side    `json:"recovering_team,omitempty"`
}

// Attribution is the (committing, recovering) team pair for a turnover
type Attribution struct {
	Committing Side
	Recovering Side
}

const (
	keywordFumble      = "fumble"
	keywordIntercepted = "intercepted"
	keywordIntercept   = "intercept"
)

// SplitFragments splits a play description on periods and returns the trimmed
// segments that mention a fumble or an interception, in order.
func SplitFragments(play string) []string {
	// A turnover is either the whole play or set off in its own sentence
	var fragments []string
	for _, segment := range strings.Split(play, ".") {
		lower := strings.ToLower(segment)
		if strings.Contains(lower, keywordFumble) || strings.Contains(lower, keywordIntercepted) {
			fragments = append(fragments, strings.TrimSpace(segment))
		}
	}
	return fragments
}

// ClassifyKind returns the turnover type named in a fragment. Fumble wins when
// both keywords are present; Unknown is returned when neither is.
func ClassifyKind(fragment string) Kind {
	lower := strings.ToLower(fragment)
	switch {
	case strings.Contains(lower, keywordFumble):
		return Fumble
	case strings.Contains(lower, keywordIntercept):
		return Interception
	default:
		return Unknown
	}
}
