package models

import "regexp"

// CombinedTeam is the provider's synthetic team code for a traded player's season aggregate
const CombinedTeam = "TOT"

var seasonPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// SeasonRow holds one player's totals for one season with one team (or TOT)
type SeasonRow struct {
	Season      string  `json:"season" yaml:"season"`       // "2023-24"
	TeamID      int     `json:"team_id" yaml:"team_id"`
	TeamAbbr    string  `json:"team_abbr" yaml:"team_abbr"` // "LAL" or "TOT"
	PlayerAge   float64 `json:"player_age" yaml:"player_age"`
	GamesPlayed int     `json:"games_played" yaml:"games_played"`
	Minutes     float64 `json:"minutes" yaml:"minutes"`
	Points      float64 `json:"points" yaml:"points"`
	Rebounds    float64 `json:"rebounds" yaml:"rebounds"`
	Assists     float64 `json:"assists" yaml:"assists"`
	Steals      float64 `json:"steals" yaml:"steals"`
	Blocks      float64 `json:"blocks" yaml:"blocks"`
	Turnovers   float64 `json:"turnovers" yaml:"turnovers"`
	FTAttempts  float64 `json:"fta" yaml:"fta"`
	FGPct       float64 `json:"fg_pct" yaml:"fg_pct"` // fraction, 0.512
	FTPct       float64 `json:"ft_pct" yaml:"ft_pct"`
}

// IsCombined reports whether this is the TOT aggregate row
func (r SeasonRow) IsCombined() bool {
	return r.TeamAbbr == CombinedTeam
}

// CareerTotals is the career aggregate row for a player
type CareerTotals struct {
	GamesPlayed int     `json:"games_played" yaml:"games_played"`
	Points      float64 `json:"points" yaml:"points"`
	Rebounds    float64 `json:"rebounds" yaml:"rebounds"`
	Assists     float64 `json:"assists" yaml:"assists"`
	FGPct       float64 `json:"fg_pct" yaml:"fg_pct"`
}

// AwardRow is a single award entry
type AwardRow struct {
	Description string `json:"description" yaml:"description"`
	Season      string `json:"season" yaml:"season"`
	Type        string `json:"type" yaml:"type"`
}

// ValidSeason reports whether label has the "YYYY-YY" form
func ValidSeason(label string) bool {
	return seasonPattern.MatchString(label)
}

// SeasonStartYear returns the leading 4 characters of a season label
// ("2019-20" -> "2019"). Shorter labels are returned unchanged.
func SeasonStartYear(label string) string {
	if len(label) < 4 {
		return label
	}
	return label[:4]
}
