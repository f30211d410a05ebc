package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pfrederiksen/pfr-turnovers/internal/playbyplay"
)

const testGame = `
home: NWE
away: NYJ
rosters:
  home: [Tom Brady, Vince Wilfork, Wes Welker]
  away: [Mark Sanchez, Darrelle Revis, Shonn Greene]
team_codes:
  NWE: NE
  NYJ: NYJ
`

const testPage = `<html><body><div id="all_pbp"><!--
<table id="pbp">
  <tr><th>Quarter</th><th>Time</th><th>Down</th><th>ToGo</th><th>Location</th><th>Detail</th></tr>
  <tr><th colspan="6">1st Quarter</th></tr>
  <tr><th data-stat="quarter">1</th><td data-stat="location">NWE 35</td>
      <td data-stat="detail">Stephen Gostkowski kicks off 65 yards, touchback</td></tr>
  <tr><th data-stat="quarter">1</th><td data-stat="location">NYJ 20</td>
      <td data-stat="detail">Mark Sanchez pass incomplete short left intended for Shonn Greene is intercepted by Wes Welker at NYJ-30</td></tr>
  <tr><th colspan="6">4th Quarter</th></tr>
  <tr><th data-stat="quarter">4</th><td data-stat="location">NWE 40</td>
      <td data-stat="detail">Tom Brady fumbles (forced by Darrelle Revis), recovered by Darrelle Revis at NWE-38. Darrelle Revis for 4 yards</td></tr>
  <tr><th colspan="6">End of Regulation</th></tr>
</table>
--></div></body></html>`

// runCLI executes the root command with args and returns stdout, stderr and the error
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestClassifyCmd_Args(t *testing.T) {
	out, _, err := runCLI(t, "", "classify", "1st Quarter", "End of Overtime", "1 15:00 NWE 35 kicks off")
	if err != nil {
		t.Fatalf("classify error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("classify printed %d lines, want 3:\n%s", len(lines), out)
	}
	for i, want := range []string{"quarter_1", "end_of_period", "normal"} {
		if !strings.HasPrefix(lines[i], want) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], want)
		}
	}
}

func TestClassifyCmd_StdinJSON(t *testing.T) {
	out, _, err := runCLI(t, "Overtime\n\n  Quarter   Time Down ToGo\n", "classify", "--format", "json")
	if err != nil {
		t.Fatalf("classify error: %v", err)
	}

	var rows []struct {
		Text string `json:"text"`
		Kind string `json:"kind"`
		Code int    `json:"code"`
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}

	if len(rows) != 2 {
		t.Fatalf("classify returned %d rows, want 2", len(rows))
	}
	if rows[0].Kind != "overtime" || rows[0].Code != 5 {
		t.Errorf("row 0 = %+v, want overtime/5", rows[0])
	}
	if rows[1].Text != "Quarter Time Down ToGo" || rows[1].Code != -1 {
		t.Errorf("row 1 = %+v, want normalized header/-1", rows[1])
	}
}

func TestTurnoversCmd_Play(t *testing.T) {
	game := writeFile(t, "game.yaml", testGame)

	out, _, err := runCLI(t, "", "turnovers", "--game", game, "--format", "json",
		"--play", "Shonn Greene fumbles, recovered by Vince Wilfork at NYJ-22")
	if err != nil {
		t.Fatalf("turnovers error: %v", err)
	}

	var result struct {
		TurnoverCount int `json:"turnover_count"`
		Plays         []struct {
			Turnovers []struct {
				Kind           string `json:"kind"`
				Committer      string `json:"committer"`
				Recoverer      string `json:"recoverer"`
				CommittingTeam string `json:"committing_team"`
				RecoveringTeam string `json:"recovering_team"`
			} `json:"turnovers"`
		} `json:"plays"`
	}
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decoding output: %v\n%s", err, out)
	}

	if result.TurnoverCount != 1 || len(result.Plays) != 1 {
		t.Fatalf("result = %+v, want one turnover", result)
	}
	rec := result.Plays[0].Turnovers[0]
	if rec.Kind != "fumble" || rec.Committer != "Shonn Greene" || rec.Recoverer != "Vince Wilfork" {
		t.Errorf("record = %+v", rec)
	}
	if rec.CommittingTeam != "away" || rec.RecoveringTeam != "home" {
		t.Errorf("teams = %s/%s, want away/home", rec.CommittingTeam, rec.RecoveringTeam)
	}
}

func TestTurnoversCmd_HTML(t *testing.T) {
	game := writeFile(t, "game.yaml", testGame)
	page := writeFile(t, "boxscore.htm", testPage)

	out, stderr, err := runCLI(t, "", "turnovers", "--game", game, "--html", page, "--verbose")
	if err != nil {
		t.Fatalf("turnovers error: %v", err)
	}

	for _, want := range []string{
		"NYJ (away) at NWE (home)",
		"Q1 row 3: interception by Mark Sanchez, recovered by Wes Welker [away -> home]",
		"Q4 row 5: fumble by Tom Brady, recovered by Darrelle Revis [home -> away]",
		"Fragment: Tom Brady fumbles (forced by Darrelle Revis), recovered by Darrelle Revis at NWE-38",
		"Total: 2 turnovers",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}

	if !strings.Contains(stderr, "Run metrics") {
		t.Errorf("verbose run should log metrics, stderr:\n%s", stderr)
	}
}

func TestTurnoversCmd_StrictDiagnostics(t *testing.T) {
	game := writeFile(t, "game.yaml", testGame)

	out, stderr, err := runCLI(t, "", "turnovers", "--game", game, "--strict",
		"--play", "John Doe fumbles, recovered by Jane Roe at 35")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("turnovers error = %v, want errDiagnostics", err)
	}

	if !strings.Contains(out, "fumble by John Doe, recovered by Jane Roe [? -> ?]") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "(2 unresolved details)") {
		t.Errorf("output should count diagnostics: %q", out)
	}
	for _, name := range []string{"John Doe", "Jane Roe"} {
		if !strings.Contains(stderr, name) {
			t.Errorf("stderr should name %q, got:\n%s", name, stderr)
		}
	}
}

func TestTurnoversCmd_Errors(t *testing.T) {
	game := writeFile(t, "game.yaml", testGame)

	tests := []struct {
		name string
		args []string
	}{
		{"missing game", []string{"turnovers", "--play", "x"}},
		{"missing input", []string{"turnovers", "--game", game}},
		{"both inputs", []string{"turnovers", "--game", game, "--play", "x", "--html", "y"}},
		{"bad format", []string{"turnovers", "--game", game, "--play", "x", "--format", "xml"}},
		{"bad sort", []string{"turnovers", "--game", game, "--play", "x", "--sort", "date"}},
		{"missing page", []string{"turnovers", "--game", game, "--html", filepath.Join(t.TempDir(), "none.htm")}},
		{"missing game file", []string{"turnovers", "--game", "does-not-exist.yaml", "--play", "x"}},
		{"bad log level", []string{"--log-level", "loud", "turnovers", "--game", game, "--play", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := runCLI(t, "", tt.args...); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestKickingTeamCmd(t *testing.T) {
	game := writeFile(t, "game.yaml", testGame)

	out, _, err := runCLI(t, "", "kicking-team", "--game", game, "NWE 35")
	if err != nil {
		t.Fatalf("kicking-team error: %v", err)
	}
	if out != "NE\n" {
		t.Errorf("kicking-team output = %q, want NE", out)
	}

	_, _, err = runCLI(t, "", "kicking-team", "--game", game, "XYZ", "35")
	if !errors.Is(err, playbyplay.ErrUnknownTeamCode) {
		t.Errorf("kicking-team error = %v, want ErrUnknownTeamCode", err)
	}
}
