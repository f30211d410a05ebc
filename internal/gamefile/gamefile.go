// Package gamefile loads the per-game inputs the extractor needs: the two
// rosters and the team-code lookup table.
package gamefile

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/pfrederiksen/pfr-turnovers/internal/playbyplay"
	"github.com/pfrederiksen/pfr-turnovers/internal/turnover"
)

var (
	ErrEmptyHomeRoster = errors.New("home roster is empty")
	ErrEmptyAwayRoster = errors.New("away roster is empty")
)

// File is the YAML game description
type File struct {
	Home      string               `yaml:"home"`
	Away      string               `yaml:"away"`
	Rosters   Rosters              `yaml:"rosters"`
	TeamCodes playbyplay.TeamCodes `yaml:"team_codes"`
}

// Rosters lists player names as they appear in play descriptions
type Rosters struct {
	Home []string `yaml:"home"`
	Away []string `yaml:"away"`
}

// Load reads and validates a game file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading game file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates game file contents
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing game file: %w", err)
	}

	if len(f.Rosters.Home) == 0 {
		return nil, ErrEmptyHomeRoster
	}
	if len(f.Rosters.Away) == 0 {
		return nil, ErrEmptyAwayRoster
	}
	if f.TeamCodes == nil {
		f.TeamCodes = make(playbyplay.TeamCodes)
	}

	return &f, nil
}

// HomeRoster returns the home players as a set
func (f *File) HomeRoster() turnover.PlayerSet {
	return turnover.NewPlayerSet(f.Rosters.Home...)
}

// AwayRoster returns the away players as a set
func (f *File) AwayRoster() turnover.PlayerSet {
	return turnover.NewPlayerSet(f.Rosters.Away...)
}

// Overlap returns the sorted names listed on both rosters. Turnovers involving
// them cannot be attributed by roster alone.
func (f *File) Overlap() []string {
	away := f.AwayRoster()
	seen := make(map[string]bool)
	var both []string
	for _, name := range f.Rosters.Home {
		if away.Contains(name) && !seen[name] {
			seen[name] = true
			both = append(both, name)
		}
	}
	sort.Strings(both)
	return both
}
