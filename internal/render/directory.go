package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// Teams writes the team directory
func Teams(w io.Writer, f Format, teams []models.Team) error {
	if ok, err := encode(w, f, teams); ok {
		return err
	}

	rows := make([][]string, len(teams))
	for i, t := range teams {
		name := t.DisplayName
		if name == "" {
			name = t.FullName
		}
		rows[i] = []string{t.Abbreviation, name, strconv.Itoa(t.ID)}
	}
	return table(w, f, []string{"ABBR", "TEAM", "ID"}, rows)
}

// Players writes a player directory or roster
func Players(w io.Writer, f Format, players []models.PlayerRef) error {
	if ok, err := encode(w, f, players); ok {
		return err
	}

	rows := make([][]string, len(players))
	for i, p := range players {
		team := p.TeamAbbr
		if team == "" {
			team = "-"
		}
		rows[i] = []string{p.Name, team, strconv.Itoa(p.ID)}
	}
	return table(w, f, []string{"PLAYER", "TEAM", "ID"}, rows)
}

// Scoreboard writes the games of one day with their line scores
func Scoreboard(w io.Writer, f Format, board *models.Scoreboard) error {
	if ok, err := encode(w, f, board); ok {
		return err
	}

	if len(board.Games) == 0 {
		_, err := fmt.Fprintf(w, "No games on %s\n", board.Date.Format("2006-01-02"))
		return err
	}

	var rows [][]string
	for _, g := range board.Games {
		lines := board.LinesFor(g.GameID)
		matchup := fmt.Sprintf("%s @ %s", teamCode(g.VisitorTeamID, lines), teamCode(g.HomeTeamID, lines))
		rows = append(rows, []string{g.GameID, matchup, score(g, lines), g.StatusText})
	}
	return table(w, f, []string{"GAME", "MATCHUP", "SCORE", "STATUS"}, rows)
}

// teamCode prefers the line score abbreviation, then the static directory
func teamCode(teamID int, lines []models.LineScore) string {
	for _, l := range lines {
		if l.TeamID == teamID && l.TeamAbbr != "" {
			return l.TeamAbbr
		}
	}
	if t, ok := basketball_nba.TeamByID(teamID); ok {
		return t.Abbreviation
	}
	return strconv.Itoa(teamID)
}

// score is "visitor-home", empty before tip-off
func score(g models.Game, lines []models.LineScore) string {
	if g.Status == models.StatusUpcoming {
		return ""
	}
	points := func(teamID int) string {
		for _, l := range lines {
			if l.TeamID == teamID {
				return strconv.Itoa(l.Points)
			}
		}
		return "-"
	}
	s := points(g.VisitorTeamID) + "-" + points(g.HomeTeamID)
	if g.Status == models.StatusLive && g.PeriodLabel != "" {
		s += " (" + g.PeriodLabel + ")"
	}
	return s
}

// table writes an aligned text table or a markdown table
func table(w io.Writer, f Format, header []string, rows [][]string) error {
	if f == FormatMarkdown {
		var b strings.Builder
		b.WriteString("| " + strings.Join(header, " | ") + " |\n")
		b.WriteString("|" + strings.Repeat("---|", len(header)) + "\n")
		for _, r := range rows {
			b.WriteString("| " + strings.Join(r, " | ") + " |\n")
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}
	return tw.Flush()
}
