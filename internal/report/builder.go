package report

import (
	"fmt"
	"strings"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// Input is everything the provider returned for one player
type Input struct {
	Season  string
	Info    models.PlayerInfo
	Seasons []models.SeasonRow
	Career  *models.CareerTotals // nil when the provider had no career row
	Awards  []models.AwardRow
}

// Builder assembles PlayerReports with a fixed locale and position table
type Builder struct {
	locale    *basketball_nba.Locale
	positions basketball_nba.PositionMap
}

// NewBuilder creates a report builder
func NewBuilder(locale *basketball_nba.Locale, positions basketball_nba.PositionMap) *Builder {
	return &Builder{
		locale:    locale,
		positions: positions,
	}
}

// Locale returns the locale reports are rendered with
func (b *Builder) Locale() *basketball_nba.Locale {
	return b.locale
}

// Build derives the report for in.Season. The returned selection tells how
// the season row was picked.
func (b *Builder) Build(in Input) (models.PlayerReport, SeasonSelection) {
	report := models.PlayerReport{
		Name:             in.Info.DisplayName,
		Position:         in.Info.PositionCode,
		PrecisePositions: DisplayPositions(in.Info.PositionCode, b.positions, b.locale),
		Season:           in.Season,
	}
	if codes, ok := ResolvePositions(in.Info.PositionCode, b.positions); ok {
		report.PositionCodes = codes
	}

	sel := ResolveSeason(in.Seasons, in.Season)
	b.applyTeam(&report, sel)

	avg := Averages{}
	if sel.Found() {
		avg = Average(sel.Row)
	}

	if !avg.HasData() {
		report.Season += b.locale.Text.NoSeasonSuffix
		report.Trend = b.trendAnalysis(NoTrend)
		report.Style = b.styleAnalysis(models.StyleInsufficientData)
		report.Awards = FormatAwards(in.Awards, b.locale.Text.NoAwards)
		return report, sel
	}

	report.HasSeasonData = true
	report.GamesPlayed = avg.GamesPlayed
	report.Points = avg.Points
	report.Rebounds = avg.Rebounds
	report.Assists = avg.Assists
	report.Steals = avg.Steals
	report.Blocks = avg.Blocks
	report.Turnovers = avg.Turnovers
	report.Minutes = avg.Minutes
	report.FTAPerGame = avg.FTAPerGame
	report.FGPct = avg.FGPct
	report.FTPct = avg.FTPct
	report.AstToTov = avg.AstToTov

	report.Trend = b.trendAnalysis(AnalyzeTrend(avg, Career(in.Career)))
	report.Style = b.styleAnalysis(ClassifyStyle(avg.Points, avg.Assists, avg.Rebounds))
	report.Awards = FormatAwards(in.Awards, b.locale.Text.NoAwards)

	return report, sel
}

// NotFound is the report for a name without a directory match
func (b *Builder) NotFound(name, season string) models.PlayerReport {
	return b.sentinel(name, season, fmt.Sprintf(b.locale.Text.PlayerNotFound, name))
}

// Failure is the report for a provider error
func (b *Builder) Failure(name, season string, err error) models.PlayerReport {
	return b.sentinel(name, season, fmt.Sprintf(b.locale.Text.ProviderFailure, name, err))
}

// InvalidSeason is the report for a malformed season label
func (b *Builder) InvalidSeason(name, season string) models.PlayerReport {
	return b.sentinel(name, season, fmt.Sprintf(b.locale.Text.InvalidSeason, season))
}

// sentinel builds a report where every field is "not found"/"no data"
func (b *Builder) sentinel(name, season, message string) models.PlayerReport {
	return models.PlayerReport{
		Error:            message,
		Name:             name,
		Position:         models.NotAvailable,
		PrecisePositions: models.NotAvailable,
		TeamAbbr:         models.NotAvailable,
		TeamFull:         models.NotAvailable,
		Season:           season,
		Trend:            b.trendAnalysis(NoTrend),
		Style:            b.styleAnalysis(models.StyleInsufficientData),
		Awards:           []string{},
	}
}

func (b *Builder) applyTeam(report *models.PlayerReport, sel SeasonSelection) {
	switch {
	case !sel.Found():
		report.TeamAbbr = models.NotAvailable
		report.TeamFull = b.locale.Text.NoSeasonTeam
	case sel.MultiTeam():
		names := make([]string, len(sel.Teams))
		for i, abbr := range sel.Teams {
			names[i] = b.locale.TeamName(abbr)
		}
		report.MultiTeam = true
		report.TeamAbbr = b.locale.Text.MultiTeamAbbr
		report.TeamFull = b.locale.Text.MultiTeamPrefix + strings.Join(names, ", ")
	default:
		abbr := sel.Row.TeamAbbr
		report.TeamAbbr = b.locale.TeamName(abbr)
		if name, ok := b.locale.Teams[abbr]; ok {
			report.TeamFull = name
		} else {
			report.TeamFull = basketball_nba.GetTeamName(abbr)
		}
	}
}

func (b *Builder) trendAnalysis(t Trend) models.TrendAnalysis {
	return models.TrendAnalysis{
		Status:      t.Status,
		StatusLabel: b.locale.TrendLabel(t.Status),
		DeltaPts:    FormatDelta(t.DeltaPts, ""),
		DeltaReb:    FormatDelta(t.DeltaReb, ""),
		DeltaAst:    FormatDelta(t.DeltaAst, ""),
		DeltaFGPct:  FormatDelta(t.DeltaFGPct, "%"),
	}
}

func (b *Builder) styleAnalysis(style models.StyleLabel) models.StyleAnalysis {
	return models.StyleAnalysis{
		Style:        style,
		StyleLabel:   b.locale.StyleLabel(style),
		SimpleRating: b.locale.Rating(style),
	}
}
