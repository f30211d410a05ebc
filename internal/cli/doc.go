// Package cli implements the command-line interface for pfr-turnovers.
//
// The cli package provides the Cobra-based commands: classify tags table rows,
// turnovers extracts attributed turnovers from a saved play-by-play page or a
// single play, and kicking-team resolves a kickoff's field position. Output is
// text or JSON on stdout; diagnostics are JSON log lines on stderr.
package cli
