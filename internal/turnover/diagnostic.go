package turnover

import (
	"fmt"
)

// Code classifies a Diagnostic
type Code string

const (
	CodeUnknownKind           Code = "unknown_kind"
	CodeMissingAnchor         Code = "missing_anchor"
	CodeUnresolvedPlayer      Code = "unresolved_player"
	CodeAmbiguousInterception Code = "ambiguous_interception"
)

// Diagnostic describes data that could not be resolved. It is a data-quality
// signal for the caller to log or aggregate, never a failure.
type Diagnostic struct {
	Code     Code   `json:"code"`
	Fragment string `json:"fragment"`
	Player   string `json:"player,omitempty"`
	Message  string `json:"message"`
}

// String returns the human-readable message with the offending fragment
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (in %q)", d.Code, d.Message, d.Fragment)
}
