package playbyplay

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTeamCode is returned when a field position names no known team
var ErrUnknownTeamCode = errors.New("unknown team code")

// TeamCodes maps box-score team codes (e.g. "NWE") to team identifiers
type TeamCodes map[string]string

// KickingTeam returns the kicking team on a kickoff given the kick's field
// position, such as "NWE 35". The first token is looked up in codes.
func KickingTeam(fieldPosition string, codes TeamCodes) (string, error) {
	fields := strings.Fields(fieldPosition)
	if len(fields) == 0 {
		return "", fmt.Errorf("%w: empty field position", ErrUnknownTeamCode)
	}

	team, ok := codes[fields[0]]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTeamCode, fields[0])
	}
	return team, nil
}
