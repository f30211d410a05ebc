package turnover

import (
	"fmt"
)

// Result holds the turnovers found in one play and everything that could not
// be resolved along the way
type Result struct {
	Records     []Record     `json:"records"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Extract finds every turnover in a play description and attributes each to a
// team using the home and away rosters. Fragments are handled independently, so
// one unreadable fragment only blanks its own record.
func Extract(play string, home, away Roster) Result {
	var result Result
	for _, fragment := range SplitFragments(play) {
		record, diags := extractFragment(fragment, home, away)
		result.Records = append(result.Records, record)
		result.Diagnostics = append(result.Diagnostics, diags...)
	}
	return result
}

func extractFragment(fragment string, home, away Roster) (Record, []Diagnostic) {
	var diags []Diagnostic

	kind := ClassifyKind(fragment)
	record := Record{Fragment: fragment, Kind: kind}
	if kind == Unknown {
		diags = append(diags, Diagnostic{
			Code:     CodeUnknownKind,
			Fragment: fragment,
			Message:  fmt.Sprintf("unknown turnover type: %q", fragment),
		})
		return record, diags
	}

	if name, ok := ExtractCommitter(fragment, kind); ok {
		record.Committer = &name
	} else {
		anchor, _ := committerAnchor(kind)
		diags = append(diags, missingAnchor(fragment, kind, anchor))
	}

	if name, ok := ExtractRecoverer(fragment, kind); ok {
		record.Recoverer = &name
	} else {
		anchor, _ := recovererAnchor(kind)
		diags = append(diags, missingAnchor(fragment, kind, anchor))
	}

	attr, attrDiags := AttributeTeams(fragment, kind, record.Committer, record.Recoverer, home, away)
	record.CommittingTeam = attr.Committing
	record.RecoveringTeam = attr.Recovering
	diags = append(diags, attrDiags...)

	return record, diags
}

func missingAnchor(fragment string, kind Kind, anchor string) Diagnostic {
	return Diagnostic{
		Code:     CodeMissingAnchor,
		Fragment: fragment,
		Message:  fmt.Sprintf("%s without %q", kind, anchor),
	}
}
