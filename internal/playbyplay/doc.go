// Package playbyplay routes play-by-play table rows.
//
// Classify tags each row as a header, a period marker, or a play. Walk uses
// those tags to track the period across a game and hands every play's
// description to the turnover extractor. KickingTeam resolves the kicking team
// on a kickoff from its field position.
package playbyplay
