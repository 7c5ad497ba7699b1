package models

// TrendStatus is the season-over-career classification
type TrendStatus string

const (
	TrendAscending         TrendStatus = "Ascending"
	TrendInefficientVolume TrendStatus = "Inefficient volume"
	TrendEfficiencySpike   TrendStatus = "Efficiency spike"
	TrendDecline           TrendStatus = "Decline"
	TrendFluctuating       TrendStatus = "Fluctuating"
	TrendNoData            TrendStatus = NotAvailable
)

// StyleLabel is the rule-based playing style
type StyleLabel string

const (
	StyleEliteAllAround   StyleLabel = "Elite all-around star"
	StyleVolumeScorer     StyleLabel = "Volume scorer"
	StylePlaymaker        StyleLabel = "Playmaking maestro"
	StyleReboundingAnchor StyleLabel = "Rebounding/defense anchor"
	StyleRolePlayer       StyleLabel = "Role player"
	StyleInsufficientData StyleLabel = "Insufficient data"
)

// TrendAnalysis compares the season averages to the career averages.
// Deltas are display strings: "+3.2", "-1.0", "+1.5%" or N/A.
type TrendAnalysis struct {
	Status      TrendStatus `json:"trend_status" yaml:"trend_status"`
	StatusLabel string      `json:"trend_label" yaml:"trend_label"` // localized
	DeltaPts    string      `json:"delta_pts" yaml:"delta_pts"`
	DeltaReb    string      `json:"delta_reb" yaml:"delta_reb"`
	DeltaAst    string      `json:"delta_ast" yaml:"delta_ast"`
	DeltaFGPct  string      `json:"delta_fg_pct" yaml:"delta_fg_pct"`
}

// StyleAnalysis is the style label plus its one-line rating
type StyleAnalysis struct {
	Style        StyleLabel `json:"core_style" yaml:"core_style"`
	StyleLabel   string     `json:"style_label" yaml:"style_label"` // localized
	SimpleRating string     `json:"simple_rating" yaml:"simple_rating"`
}

// PlayerReport is the derived report for one player and season.
// It is built fresh for every query and never mutated afterwards.
type PlayerReport struct {
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	Name             string   `json:"name" yaml:"name"`
	Position         string   `json:"position" yaml:"position"`
	PrecisePositions string   `json:"precise_positions" yaml:"precise_positions"`
	PositionCodes    []string `json:"position_codes,omitempty" yaml:"position_codes,omitempty"`
	TeamAbbr         string   `json:"team_abbr" yaml:"team_abbr"`
	TeamFull         string   `json:"team_full" yaml:"team_full"`
	MultiTeam        bool     `json:"multi_team" yaml:"multi_team"`
	Season           string   `json:"season" yaml:"season"`
	HasSeasonData    bool     `json:"has_season_data" yaml:"has_season_data"`

	GamesPlayed int  `json:"games_played" yaml:"games_played"`
	Points      Stat `json:"pts" yaml:"pts"`
	Rebounds    Stat `json:"reb" yaml:"reb"`
	Assists     Stat `json:"ast" yaml:"ast"`
	Steals      Stat `json:"stl" yaml:"stl"`
	Blocks      Stat `json:"blk" yaml:"blk"`
	Turnovers   Stat `json:"tov" yaml:"tov"`
	Minutes     Stat `json:"min_per_game" yaml:"min_per_game"`
	FTAPerGame  Stat `json:"fta_per_game" yaml:"fta_per_game"`
	FGPct       Stat `json:"fg_pct" yaml:"fg_pct"`
	FTPct       Stat `json:"ft_pct" yaml:"ft_pct"`
	AstToTov    Stat `json:"ato_ratio" yaml:"ato_ratio"`

	Trend  TrendAnalysis `json:"trend_analysis" yaml:"trend_analysis"`
	Style  StyleAnalysis `json:"style_analysis" yaml:"style_analysis"`
	Awards []string      `json:"awards" yaml:"awards"`
}

// Failed reports whether the report carries a lookup or provider error
func (r *PlayerReport) Failed() bool {
	return r.Error != ""
}
