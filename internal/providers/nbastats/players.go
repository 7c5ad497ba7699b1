package nbastats

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// MatchPlayer finds name in a directory (case-insensitive, exact full name)
func MatchPlayer(players []models.PlayerRef, name string) (int, error) {
	for _, p := range players {
		if strings.EqualFold(p.Name, name) {
			return p.ID, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, contracts.ErrPlayerNotFound)
}

// FindPlayerID resolves a full name against the all-time player directory
func (c *Client) FindPlayerID(ctx context.Context, name string) (int, error) {
	players, err := c.ListAllPlayers(ctx)
	if err != nil {
		return 0, err
	}
	return MatchPlayer(players, name)
}

// ListAllPlayers returns every player in league history
func (c *Client) ListAllPlayers(ctx context.Context) ([]models.PlayerRef, error) {
	return c.commonAllPlayers(ctx, false)
}

// ListTeams returns the static franchise directory
func (c *Client) ListTeams(ctx context.Context) ([]models.Team, error) {
	return basketball_nba.Teams(), nil
}

// ListActivePlayersByTeam returns the current roster of one team
func (c *Client) ListActivePlayersByTeam(ctx context.Context, teamID int) ([]models.PlayerRef, error) {
	players, err := c.commonAllPlayers(ctx, true)
	if err != nil {
		return nil, err
	}

	roster := make([]models.PlayerRef, 0, 18)
	for _, p := range players {
		if p.TeamID == teamID {
			roster = append(roster, p)
		}
	}
	return roster, nil
}

func (c *Client) commonAllPlayers(ctx context.Context, currentOnly bool) ([]models.PlayerRef, error) {
	only := "0"
	if currentOnly {
		only = "1"
	}
	params := url.Values{
		"LeagueID":            {LeagueID},
		"Season":              {c.season},
		"IsOnlyCurrentSeason": {only},
	}

	resp, err := c.fetch(ctx, "commonallplayers", params)
	if err != nil {
		return nil, err
	}
	set, err := resp.set("CommonAllPlayers")
	if err != nil {
		return nil, err
	}
	rows, err := set.rows()
	if err != nil {
		return nil, err
	}

	players := make([]models.PlayerRef, 0, len(rows))
	for _, r := range rows {
		players = append(players, models.PlayerRef{
			ID:       r.Int("PERSON_ID"),
			Name:     r.String("DISPLAY_FIRST_LAST"),
			TeamID:   r.Int("TEAM_ID"),
			TeamAbbr: r.String("TEAM_ABBREVIATION"),
			Active:   r.Int("ROSTERSTATUS") == 1,
		})
	}
	return players, nil
}

// GetPlayerInfo fetches the biographical row of a player
func (c *Client) GetPlayerInfo(ctx context.Context, playerID int) (*models.PlayerInfo, error) {
	resp, err := c.fetch(ctx, "commonplayerinfo", playerParams(playerID))
	if err != nil {
		return nil, err
	}
	set, err := resp.set("CommonPlayerInfo")
	if err != nil {
		return nil, err
	}
	r, err := set.firstRow()
	if err != nil {
		return nil, err
	}

	return &models.PlayerInfo{
		ID:               r.Int("PERSON_ID"),
		DisplayName:      r.String("DISPLAY_FIRST_LAST"),
		PositionCode:     r.String("POSITION"),
		TeamAbbreviation: r.String("TEAM_ABBREVIATION"),
		TeamCity:         r.String("TEAM_CITY"),
		TeamName:         r.String("TEAM_NAME"),
		Height:           r.String("HEIGHT"),
		WeightLbs:        r.String("WEIGHT"),
		JerseyNumber:     r.String("JERSEY"),
		Birthdate:        trimTime(r.String("BIRTHDATE")),
		School:           r.String("SCHOOL"),
		DraftYear:        r.String("DRAFT_YEAR"),
		DraftNumber:      r.String("DRAFT_NUMBER"),
		YearsExperience:  r.Int("SEASON_EXP"),
	}, nil
}

// GetCareerStats fetches regular-season totals per season plus the career row.
// The career row is nil when the provider has none.
func (c *Client) GetCareerStats(ctx context.Context, playerID int) ([]models.SeasonRow, *models.CareerTotals, error) {
	params := playerParams(playerID)
	params.Set("PerMode", "Totals")

	resp, err := c.fetch(ctx, "playercareerstats", params)
	if err != nil {
		return nil, nil, err
	}

	seasonSet, err := resp.set("SeasonTotalsRegularSeason")
	if err != nil {
		return nil, nil, err
	}
	seasonRows, err := seasonSet.rows()
	if err != nil {
		return nil, nil, err
	}

	seasons := make([]models.SeasonRow, 0, len(seasonRows))
	for _, r := range seasonRows {
		seasons = append(seasons, models.SeasonRow{
			Season:      r.String("SEASON_ID"),
			TeamID:      r.Int("TEAM_ID"),
			TeamAbbr:    r.String("TEAM_ABBREVIATION"),
			PlayerAge:   r.Float("PLAYER_AGE"),
			GamesPlayed: r.Int("GP"),
			Minutes:     r.Float("MIN"),
			Points:      r.Float("PTS"),
			Rebounds:    r.Float("REB"),
			Assists:     r.Float("AST"),
			Steals:      r.Float("STL"),
			Blocks:      r.Float("BLK"),
			Turnovers:   r.Float("TOV"),
			FTAttempts:  r.Float("FTA"),
			FGPct:       r.Float("FG_PCT"),
			FTPct:       r.Float("FT_PCT"),
		})
	}

	careerSet, err := resp.set("CareerTotalsRegularSeason")
	if err != nil {
		return nil, nil, err
	}
	careerRows, err := careerSet.rows()
	if err != nil {
		return nil, nil, err
	}
	if len(careerRows) == 0 {
		return seasons, nil, nil
	}

	r := careerRows[0]
	return seasons, &models.CareerTotals{
		GamesPlayed: r.Int("GP"),
		Points:      r.Float("PTS"),
		Rebounds:    r.Float("REB"),
		Assists:     r.Float("AST"),
		FGPct:       r.Float("FG_PCT"),
	}, nil
}

// GetAwards fetches every award of a player
func (c *Client) GetAwards(ctx context.Context, playerID int) ([]models.AwardRow, error) {
	resp, err := c.fetch(ctx, "playerawards", url.Values{"PlayerID": {strconv.Itoa(playerID)}})
	if err != nil {
		return nil, err
	}
	set, err := resp.set("PlayerAwards")
	if err != nil {
		return nil, err
	}
	rows, err := set.rows()
	if err != nil {
		return nil, err
	}

	awards := make([]models.AwardRow, 0, len(rows))
	for _, r := range rows {
		awards = append(awards, models.AwardRow{
			Description: r.String("DESCRIPTION"),
			Season:      r.String("SEASON"),
			Type:        r.String("TYPE"),
		})
	}
	return awards, nil
}

func playerParams(playerID int) url.Values {
	return url.Values{
		"PlayerID": {strconv.Itoa(playerID)},
		"LeagueID": {LeagueID},
	}
}

// trimTime drops the time part of "1984-12-30T00:00:00"
func trimTime(s string) string {
	if i := strings.IndexByte(s, 'T'); i > 0 {
		return s[:i]
	}
	return s
}
