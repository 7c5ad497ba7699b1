package models

import "time"

// GameStatus represents the current state of a game
type GameStatus string

const (
	StatusUpcoming GameStatus = "upcoming"
	StatusLive     GameStatus = "live"
	StatusFinal    GameStatus = "final"
)

// Game is one entry of the day's scoreboard
type Game struct {
	GameID         string     `json:"game_id" yaml:"game_id"`
	GameDate       time.Time  `json:"game_date" yaml:"game_date"`
	Status         GameStatus `json:"status" yaml:"status"`
	StatusText     string     `json:"status_text" yaml:"status_text"` // "Final", "7:30 pm ET"
	HomeTeamID     int        `json:"home_team_id" yaml:"home_team_id"`
	VisitorTeamID  int        `json:"visitor_team_id" yaml:"visitor_team_id"`
	Period         int        `json:"period" yaml:"period"`
	PeriodLabel    string     `json:"period_label,omitempty" yaml:"period_label,omitempty"` // "Q4", "OT1"
	NationalTVFeed string     `json:"national_tv,omitempty" yaml:"national_tv,omitempty"`
}

// LineScore is one team's scoring line for a game
type LineScore struct {
	GameID       string `json:"game_id" yaml:"game_id"`
	TeamID       int    `json:"team_id" yaml:"team_id"`
	TeamAbbr     string `json:"team_abbr" yaml:"team_abbr"`
	TeamCity     string `json:"team_city" yaml:"team_city"`
	TeamName     string `json:"team_name" yaml:"team_name"`
	WinsLosses   string `json:"wins_losses" yaml:"wins_losses"` // "10-4"
	PeriodPoints []int  `json:"period_points" yaml:"period_points"`
	Points       int    `json:"points" yaml:"points"`
}

// Scoreboard groups the games of one day with their line scores
type Scoreboard struct {
	Date       time.Time   `json:"date" yaml:"date"`
	Games      []Game      `json:"games" yaml:"games"`
	LineScores []LineScore `json:"line_scores" yaml:"line_scores"`
}

// LinesFor returns the line scores of one game, in provider order
func (s *Scoreboard) LinesFor(gameID string) []LineScore {
	var lines []LineScore
	for _, l := range s.LineScores {
		if l.GameID == gameID {
			lines = append(lines, l)
		}
	}
	return lines
}
