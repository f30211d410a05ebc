package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/pfr-turnovers/internal/boxscore"
	"github.com/pfrederiksen/pfr-turnovers/internal/gamefile"
	"github.com/pfrederiksen/pfr-turnovers/internal/logger"
	"github.com/pfrederiksen/pfr-turnovers/internal/playbyplay"
)

const (
	ExitSuccess     = 0
	ExitError       = 1
	ExitDiagnostics = 2
)

// errDiagnostics signals --strict runs that reported unresolved data
var errDiagnostics = errors.New("turnovers reported diagnostics")

var (
	flagLogLevel string
	flagFormat   string
	flagGameFile string
	flagHTMLFile string
	flagTableID  string
	flagPlay     string
	flagSort     string
	flagStrict   bool
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pfr-turnovers",
		Short: "Extract turnovers from Pro-Football-Reference play-by-play tables",
		Long: `A CLI tool to extract fumbles and interceptions from box-score play-by-play text.
Each turnover is attributed to the home or away team using the game's rosters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(flagLogLevel)
			if err != nil {
				return err
			}
			logger.SetDefault(logger.New(level, cmd.ErrOrStderr()))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn or error")

	cmd.AddCommand(newClassifyCmd(), newTurnoversCmd(), newKickingTeamCmd())

	return cmd
}

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [row text...]",
		Short: "Classify play-by-play rows (reads stdin lines when no rows are given)",
		RunE:  runClassify,
	}
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	return cmd
}

func newTurnoversCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "turnovers",
		Short: "Extract attributed turnovers from a play-by-play page or a single play",
		RunE:  runTurnovers,
	}
	cmd.Flags().StringVar(&flagGameFile, "game", "", "Game file with rosters and team codes (required)")
	cmd.Flags().StringVar(&flagHTMLFile, "html", "", "Saved box-score HTML page")
	cmd.Flags().StringVar(&flagTableID, "table", boxscore.DefaultTableID, "Id of the play-by-play table")
	cmd.Flags().StringVar(&flagPlay, "play", "", "A single play description")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&flagSort, "sort", string(SortByRow), "Sort order: row, kind or team")
	cmd.Flags().BoolVar(&flagStrict, "strict", false, "Exit with code 2 when any turnover could not be fully resolved")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Show fragments and run metrics")

	cmd.MarkFlagRequired("game")
	cmd.MarkFlagsMutuallyExclusive("html", "play")
	cmd.MarkFlagsOneRequired("html", "play")

	return cmd
}

func newKickingTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kicking-team <field position>",
		Short: "Resolve the kicking team from a kickoff field position such as 'NWE 35'",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runKickingTeam,
	}
	cmd.Flags().StringVar(&flagGameFile, "game", "", "Game file with team codes (required)")
	cmd.MarkFlagRequired("game")
	return cmd
}

func parseFormat() (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}
	return format, nil
}

// runClassify tags each row given as an argument or read from stdin
func runClassify(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}

	rows := args
	if len(rows) == 0 {
		rows, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading rows: %w", err)
		}
	}

	results := make([]ClassifiedRow, 0, len(rows))
	for _, row := range rows {
		row = strings.Join(strings.Fields(row), " ")
		kind := playbyplay.Classify(row)
		logger.Debug("Row classified", logger.Fields{"row": row, "kind": kind.String()})
		results = append(results, ClassifiedRow{Text: row, Kind: kind, Code: kind.Code()})
	}

	return WriteClassified(cmd.OutOrStdout(), results, format)
}

// runTurnovers is the main extraction command
func runTurnovers(cmd *cobra.Command, args []string) error {
	format, err := parseFormat()
	if err != nil {
		return err
	}
	order := SortOrder(strings.ToLower(flagSort))
	if order != SortByRow && order != SortByKind && order != SortByTeam {
		return fmt.Errorf("invalid sort: %s (must be 'row', 'kind' or 'team')", flagSort)
	}

	game, err := gamefile.Load(flagGameFile)
	if err != nil {
		return fmt.Errorf("loading game: %w", err)
	}
	if overlap := game.Overlap(); len(overlap) > 0 {
		logger.Warn("Players on both rosters cannot be attributed", logger.Fields{
			"players": overlap,
		})
	}

	source := "play"
	var result *playbyplay.GameResult
	start := time.Now()
	if flagPlay != "" {
		result = playbyplay.Single(flagPlay, game.HomeRoster(), game.AwayRoster())
	} else {
		rows, err := loadRows(flagHTMLFile, flagTableID)
		if err != nil {
			return err
		}
		logger.Debug("Rows loaded", logger.Fields{"source": flagHTMLFile, "rows": len(rows)})
		source = flagHTMLFile
		result = playbyplay.Walk(rows, game.HomeRoster(), game.AwayRoster())
	}
	logger.RecordTiming("extract", time.Since(start))

	for _, d := range result.Diagnostics {
		logger.Warn("Turnover not fully resolved", logger.Fields{
			"code":     string(d.Code),
			"player":   d.Player,
			"fragment": d.Fragment,
			"detail":   d.Message,
		})
	}
	for kind, n := range result.Counts {
		logger.AddCounter("turnovers."+kind.String(), int64(n))
	}
	logger.AddCounter("diagnostics", int64(len(result.Diagnostics)))

	plays := result.Turnovers()
	sortPlays(plays, order)

	out := &OutputResult{
		ParsedAt:        time.Now().UTC(),
		Source:          source,
		Home:            game.Home,
		Away:            game.Away,
		Plays:           plays,
		TurnoverCount:   countRecords(plays),
		DiagnosticCount: len(result.Diagnostics),
	}
	if err := WriteOutput(cmd.OutOrStdout(), out, format, flagVerbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if flagVerbose {
		logger.Info("Run metrics", logger.Fields{"metrics": logger.GetMetricsSnapshot()})
	}

	if flagStrict && len(result.Diagnostics) > 0 {
		return errDiagnostics
	}
	return nil
}

// loadRows reads the play-by-play table rows from a saved page
func loadRows(path, tableID string) ([]boxscore.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()

	rows, err := boxscore.ReadRows(f, tableID)
	if err != nil {
		return nil, fmt.Errorf("reading table: %w", err)
	}
	return rows, nil
}

func countRecords(plays []playbyplay.Play) int {
	n := 0
	for _, p := range plays {
		n += len(p.Turnovers)
	}
	return n
}

// runKickingTeam prints the team kicking from the given field position
func runKickingTeam(cmd *cobra.Command, args []string) error {
	game, err := gamefile.Load(flagGameFile)
	if err != nil {
		return fmt.Errorf("loading game: %w", err)
	}

	position := strings.Join(args, " ")
	team, err := playbyplay.KickingTeam(position, game.TeamCodes)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), team)
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if errors.Is(err, errDiagnostics) {
			os.Exit(ExitDiagnostics)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
	os.Exit(ExitSuccess)
}
