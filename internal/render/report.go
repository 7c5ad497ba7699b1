package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/service"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// chartWidth is the bar length of the best season
const chartWidth = 40

// ReportDocument is the machine-readable form of a report bundle
type ReportDocument struct {
	Report  models.PlayerReport  `json:"report" yaml:"report"`
	Info    *models.PlayerInfo   `json:"info,omitempty" yaml:"info,omitempty"`
	Seasons []models.SeasonRow   `json:"seasons,omitempty" yaml:"seasons,omitempty"`
	Career  *models.CareerTotals `json:"career,omitempty" yaml:"career,omitempty"`
	Awards  []models.AwardRow    `json:"award_rows,omitempty" yaml:"award_rows,omitempty"`
	Series  []SeriesPoint        `json:"series,omitempty" yaml:"series,omitempty"`

	text basketball_nba.LocaleText
}

// NewReportDocument pairs a bundle with its career series. Labels come from
// the bundle locale, English when it has none.
func NewReportDocument(b *service.Bundle) ReportDocument {
	locale := b.Locale
	if locale == nil {
		locale = basketball_nba.English()
	}
	return ReportDocument{
		Report:  b.Report,
		Info:    b.Info,
		Seasons: b.Seasons,
		Career:  b.Career,
		Awards:  b.Awards,
		Series:  CareerSeries(b.Seasons),
		text:    locale.Text,
	}
}

// Report writes b in format f
func Report(w io.Writer, f Format, b *service.Bundle) error {
	doc := NewReportDocument(b)
	if ok, err := encode(w, f, doc); ok {
		return err
	}
	if f == FormatMarkdown {
		return reportMarkdown(w, doc)
	}
	return reportText(w, doc)
}

var (
	titleColor = color.New(color.Bold)
	errorColor = color.New(color.FgRed, color.Bold)
	upColor    = color.New(color.FgGreen)
	downColor  = color.New(color.FgRed)
	flatColor  = color.New(color.FgYellow)
)

func trendColor(status models.TrendStatus) *color.Color {
	switch status {
	case models.TrendAscending, models.TrendEfficiencySpike:
		return upColor
	case models.TrendDecline, models.TrendInefficientVolume:
		return downColor
	default:
		return flatColor
	}
}

// label pads "name:" to the width of the text report's label column
func label(name string) string {
	return fmt.Sprintf("%-9s", name+":")
}

func reportText(w io.Writer, doc ReportDocument) error {
	r, text := doc.Report, doc.text
	if r.Failed() {
		_, err := errorColor.Fprintln(w, r.Error)
		return err
	}

	var b strings.Builder
	titleColor.Fprintf(&b, "%s", r.Name)
	fmt.Fprintf(&b, "  %s (%s)\n", r.Position, r.PrecisePositions)
	fmt.Fprintf(&b, "%s%s  %s\n", label(text.LabelTeam), r.TeamAbbr, r.TeamFull)
	fmt.Fprintf(&b, "%s%s", label(text.LabelSeason), r.Season)
	if r.HasSeasonData {
		fmt.Fprintf(&b, "  (%s)", fmt.Sprintf(text.LabelGames, r.GamesPlayed))
	}
	b.WriteString("\n\n")

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PTS\tREB\tAST\tSTL\tBLK\tTOV\tMIN\tFTA\tFG%\tFT%\tAST/TOV")
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		r.Points.Format(1), r.Rebounds.Format(1), r.Assists.Format(1),
		r.Steals.Format(1), r.Blocks.Format(1), r.Turnovers.Format(1),
		r.Minutes.Format(1), r.FTAPerGame.Format(1),
		r.FGPct.Format(1), r.FTPct.Format(1), r.AstToTov.Format(2))
	tw.Flush()
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s%s", label(text.LabelTrend), trendColor(r.Trend.Status).Sprint(r.Trend.StatusLabel))
	fmt.Fprintf(&b, "  (PTS %s, REB %s, AST %s, FG%% %s)\n",
		r.Trend.DeltaPts, r.Trend.DeltaReb, r.Trend.DeltaAst, r.Trend.DeltaFGPct)
	fmt.Fprintf(&b, "%s%s", label(text.LabelStyle), r.Style.StyleLabel)
	if r.Style.SimpleRating != "" {
		fmt.Fprintf(&b, " - %s", r.Style.SimpleRating)
	}
	fmt.Fprintf(&b, "\n\n%s:\n", text.LabelAwards)
	for _, a := range r.Awards {
		fmt.Fprintf(&b, "  - %s\n", a)
	}

	if len(doc.Series) > 0 {
		fmt.Fprintf(&b, "\n%s:\n", text.LabelPointsChart)
		writeChart(&b, doc.Series)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeChart draws one bar per season scaled to the best scoring season
func writeChart(b *strings.Builder, series []SeriesPoint) {
	best := 0.0
	for _, p := range series {
		if v, ok := p.Points.Float64(); ok && v > best {
			best = v
		}
	}

	for _, p := range series {
		v, ok := p.Points.Float64()
		bar := 0
		if ok && best > 0 {
			bar = int(math.Round(v / best * chartWidth))
		}
		fmt.Fprintf(b, "  %s %-3s |%s %s\n", p.Season, p.TeamAbbr, strings.Repeat("█", bar), p.Points.Format(1))
	}
}

func reportMarkdown(w io.Writer, doc ReportDocument) error {
	r, text := doc.Report, doc.text
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Name)
	if r.Failed() {
		fmt.Fprintf(&b, "> **Error:** %s\n", r.Error)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "- **%s:** %s (%s)\n", text.LabelPosition, r.Position, r.PrecisePositions)
	fmt.Fprintf(&b, "- **%s:** %s (%s)\n", text.LabelTeam, r.TeamFull, r.TeamAbbr)
	fmt.Fprintf(&b, "- **%s:** %s\n", text.LabelSeason, r.Season)
	if r.HasSeasonData {
		fmt.Fprintf(&b, "- **%s:** %d\n", text.LabelGamesPlayed, r.GamesPlayed)
	}

	fmt.Fprintf(&b, "\n## %s\n\n", text.LabelPerGame)
	b.WriteString("| PTS | REB | AST | STL | BLK | TOV | MIN | FTA | FG% | FT% | AST/TOV |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
		r.Points.Format(1), r.Rebounds.Format(1), r.Assists.Format(1),
		r.Steals.Format(1), r.Blocks.Format(1), r.Turnovers.Format(1),
		r.Minutes.Format(1), r.FTAPerGame.Format(1),
		r.FGPct.Format(1), r.FTPct.Format(1), r.AstToTov.Format(2))

	fmt.Fprintf(&b, "\n## %s\n\n", text.LabelAnalysis)
	fmt.Fprintf(&b, "- **%s:** %s (PTS %s, REB %s, AST %s, FG%% %s)\n",
		text.LabelTrend, r.Trend.StatusLabel, r.Trend.DeltaPts, r.Trend.DeltaReb, r.Trend.DeltaAst, r.Trend.DeltaFGPct)
	fmt.Fprintf(&b, "- **%s:** %s", text.LabelStyle, r.Style.StyleLabel)
	if r.Style.SimpleRating != "" {
		fmt.Fprintf(&b, ". %s", r.Style.SimpleRating)
	}
	fmt.Fprintf(&b, "\n\n## %s\n\n", text.LabelAwards)
	for _, a := range r.Awards {
		fmt.Fprintf(&b, "- %s\n", a)
	}

	if len(doc.Series) > 0 {
		fmt.Fprintf(&b, "\n## %s\n\n", text.LabelCareer)
		fmt.Fprintf(&b, "| %s | %s | GP | PTS | REB | AST | FG%% |\n", text.LabelSeason, text.LabelTeam)
		b.WriteString("|---|---|---|---|---|---|---|\n")
		for _, p := range doc.Series {
			fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s | %s |\n",
				p.Season, p.TeamAbbr, p.GamesPlayed,
				p.Points.Format(1), p.Rebounds.Format(1), p.Assists.Format(1), p.FGPct.Format(1))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
