package render

import (
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/report"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// SeriesPoint is one season of the career chart
type SeriesPoint struct {
	Season      string      `json:"season" yaml:"season"`
	TeamAbbr    string      `json:"team_abbr" yaml:"team_abbr"`
	GamesPlayed int         `json:"games_played" yaml:"games_played"`
	Points      models.Stat `json:"pts" yaml:"pts"`
	Rebounds    models.Stat `json:"reb" yaml:"reb"`
	Assists     models.Stat `json:"ast" yaml:"ast"`
	FGPct       models.Stat `json:"fg_pct" yaml:"fg_pct"`
}

// CareerSeries averages every season once, in the order seasons first
// appear. Traded seasons use the same row the report would.
func CareerSeries(rows []models.SeasonRow) []SeriesPoint {
	seen := make(map[string]bool)
	var points []SeriesPoint

	for _, r := range rows {
		if seen[r.Season] {
			continue
		}
		seen[r.Season] = true

		sel := report.ResolveSeason(rows, r.Season)
		avg := report.Average(sel.Row)
		team := sel.Row.TeamAbbr
		if sel.MultiTeam() {
			team = models.CombinedTeam
		}
		points = append(points, SeriesPoint{
			Season:      r.Season,
			TeamAbbr:    team,
			GamesPlayed: avg.GamesPlayed,
			Points:      avg.Points,
			Rebounds:    avg.Rebounds,
			Assists:     avg.Assists,
			FGPct:       avg.FGPct,
		})
	}
	return points
}
