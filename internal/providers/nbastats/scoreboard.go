package nbastats

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// maxOvertimes is the number of PTS_OTn columns scoreboardv2 carries
const maxOvertimes = 10

// GetTodaysGames fetches the scoreboard of date (league-local calendar day)
func (c *Client) GetTodaysGames(ctx context.Context, date time.Time) (*models.Scoreboard, error) {
	params := url.Values{
		"GameDate":  {date.Format("2006-01-02")},
		"LeagueID":  {LeagueID},
		"DayOffset": {"0"},
	}

	resp, err := c.fetch(ctx, "scoreboardv2", params)
	if err != nil {
		return nil, err
	}

	headerSet, err := resp.set("GameHeader")
	if err != nil {
		return nil, err
	}
	headers, err := headerSet.rows()
	if err != nil {
		return nil, err
	}
	lineSet, err := resp.set("LineScore")
	if err != nil {
		return nil, err
	}
	lines, err := lineSet.rows()
	if err != nil {
		return nil, err
	}

	board := &models.Scoreboard{
		Date:       date,
		Games:      make([]models.Game, 0, len(headers)),
		LineScores: make([]models.LineScore, 0, len(lines)),
	}

	periods := make(map[string]int, len(headers))
	for _, r := range headers {
		period := r.Int("LIVE_PERIOD")
		periods[r.String("GAME_ID")] = period
		board.Games = append(board.Games, models.Game{
			GameID:         r.String("GAME_ID"),
			GameDate:       parseGameDate(r.String("GAME_DATE_EST")),
			Status:         parseGameStatus(r.Int("GAME_STATUS_ID")),
			StatusText:     r.String("GAME_STATUS_TEXT"),
			HomeTeamID:     r.Int("HOME_TEAM_ID"),
			VisitorTeamID:  r.Int("VISITOR_TEAM_ID"),
			Period:         period,
			PeriodLabel:    getPeriodLabel(period),
			NationalTVFeed: r.String("NATL_TV_BROADCASTER_ABBREVIATION"),
		})
	}

	for _, r := range lines {
		board.LineScores = append(board.LineScores, models.LineScore{
			GameID:       r.String("GAME_ID"),
			TeamID:       r.Int("TEAM_ID"),
			TeamAbbr:     r.String("TEAM_ABBREVIATION"),
			TeamCity:     r.String("TEAM_CITY_NAME"),
			TeamName:     r.String("TEAM_NAME"),
			WinsLosses:   r.String("TEAM_WINS_LOSSES"),
			PeriodPoints: periodPoints(r, periods[r.String("GAME_ID")]),
			Points:       r.Int("PTS"),
		})
	}

	return board, nil
}

// periodPoints collects the four quarters plus the overtimes played.
// played is the game's LIVE_PERIOD; when unknown, overtimes run through the
// last non-zero PTS_OTn column.
func periodPoints(r row, played int) []int {
	var points []int
	for q := 1; q <= 4; q++ {
		key := fmt.Sprintf("PTS_QTR%d", q)
		if !r.Has(key) {
			return points
		}
		points = append(points, r.Int(key))
	}

	overtimes := played - 4
	if played <= 0 {
		for ot := 1; ot <= maxOvertimes; ot++ {
			if r.Int(fmt.Sprintf("PTS_OT%d", ot)) != 0 {
				overtimes = ot
			}
		}
	}
	for ot := 1; ot <= overtimes && ot <= maxOvertimes; ot++ {
		key := fmt.Sprintf("PTS_OT%d", ot)
		if !r.Has(key) {
			break
		}
		points = append(points, r.Int(key))
	}
	return points
}

// parseGameStatus converts GAME_STATUS_ID to our GameStatus
func parseGameStatus(statusID int) models.GameStatus {
	switch statusID {
	case 2:
		return models.StatusLive
	case 3:
		return models.StatusFinal
	default:
		return models.StatusUpcoming
	}
}

// parseGameDate parses "2024-01-15T00:00:00"
func parseGameDate(s string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", strings.TrimSuffix(s, "Z"))
	if err != nil {
		return time.Time{}
	}
	return t
}

// getPeriodLabel returns NBA-specific period label
func getPeriodLabel(period int) string {
	switch {
	case period <= 0:
		return ""
	case period <= 4:
		return fmt.Sprintf("Q%d", period)
	default:
		return fmt.Sprintf("OT%d", period-4)
	}
}
