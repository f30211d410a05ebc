package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/pfr-turnovers/internal/playbyplay"
	"github.com/pfrederiksen/pfr-turnovers/internal/turnover"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains the turnovers found in one run
type OutputResult struct {
	ParsedAt        time.Time         `json:"parsed_at"`
	Source          string            `json:"source"`
	Home            string            `json:"home,omitempty"`
	Away            string            `json:"away,omitempty"`
	Plays           []playbyplay.Play `json:"plays"`
	TurnoverCount   int               `json:"turnover_count"`
	DiagnosticCount int               `json:"diagnostic_count"`
}

// ClassifiedRow is one row tagged by the classify command
type ClassifiedRow struct {
	Text string             `json:"text"`
	Kind playbyplay.RowKind `json:"kind"`
	Code int                `json:"code"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteClassified writes tagged rows in the specified format
func WriteClassified(w io.Writer, rows []ClassifiedRow, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, rows)
	case FormatText:
		for _, row := range rows {
			fmt.Fprintf(w, "%-13s %2d  %s\n", row.Kind, row.Code, row.Text)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeText outputs turnovers as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	if result.TurnoverCount == 0 {
		fmt.Fprintln(w, "No turnovers found.")
		return nil
	}

	if result.Home != "" || result.Away != "" {
		fmt.Fprintf(w, "%s (away) at %s (home)\n\n", result.Away, result.Home)
	}

	for _, play := range result.Plays {
		for _, rec := range play.Turnovers {
			fmt.Fprintf(w, "%s %s: %s by %s, recovered by %s [%s]\n",
				periodLabel(play.Period), rowLabel(play.Row), rec.Kind,
				nameLabel(rec.Committer), nameLabel(rec.Recoverer), recordTeams(rec))
			if verbose {
				fmt.Fprintf(w, "       Fragment: %s\n", rec.Fragment)
			}
		}
	}

	fmt.Fprintf(w, "\nTotal: %d turnovers", result.TurnoverCount)
	if result.DiagnosticCount > 0 {
		fmt.Fprintf(w, " (%d unresolved details)", result.DiagnosticCount)
	}
	fmt.Fprintln(w)

	return nil
}

func periodLabel(period int) string {
	if period <= 0 {
		return "--"
	}
	if period > 4 {
		if period == 5 {
			return "OT"
		}
		return fmt.Sprintf("OT%d", period-4)
	}
	return fmt.Sprintf("Q%d", period)
}

func rowLabel(row int) string {
	return fmt.Sprintf("row %d", row)
}

func nameLabel(name *string) string {
	if name == nil || *name == "" {
		return "?"
	}
	return *name
}

// recordTeams renders "committing -> recovering" with "?" for unresolved sides
func recordTeams(r turnover.Record) string {
	return sideLabel(r.CommittingTeam) + " -> " + sideLabel(r.RecoveringTeam)
}

func sideLabel(s turnover.Side) string {
	if !s.Resolved() {
		return "?"
	}
	return string(s)
}
