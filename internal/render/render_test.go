package render_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/render"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/report"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/service"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func seasons() []models.SeasonRow {
	return []models.SeasonRow{
		{Season: "2022-23", TeamAbbr: "LAL", GamesPlayed: 50, Points: 1000, Rebounds: 300, Assists: 250, FGPct: 0.5},
		{
			Season: "2023-24", TeamAbbr: "LAL", GamesPlayed: 10,
			Points: 300, Rebounds: 70, Assists: 80, Turnovers: 40, FGPct: 0.52,
		},
	}
}

func bundle() *service.Bundle {
	return localizedBundle(basketball_nba.English())
}

func localizedBundle(locale *basketball_nba.Locale) *service.Bundle {
	info := models.PlayerInfo{ID: 7, DisplayName: "Test Star", PositionCode: "Forward"}
	career := &models.CareerTotals{GamesPlayed: 100, Points: 2500, Rebounds: 600, Assists: 700, FGPct: 0.5}
	awards := []models.AwardRow{{Description: "NBA All-Star", Season: "2023-24"}}

	r, _ := report.NewBuilder(locale, basketball_nba.Positions()).Build(report.Input{
		Season:  "2023-24",
		Info:    info,
		Seasons: seasons(),
		Career:  career,
		Awards:  awards,
	})
	return &service.Bundle{Report: r, Info: &info, Seasons: seasons(), Career: career, Awards: awards, Locale: locale}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want render.Format
	}{
		{"", render.FormatText},
		{"TEXT", render.FormatText},
		{"md", render.FormatMarkdown},
		{"markdown", render.FormatMarkdown},
		{" json ", render.FormatJSON},
		{"yml", render.FormatYAML},
		{"yaml", render.FormatYAML},
	}
	for _, tt := range tests {
		got, err := render.ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := render.ParseFormat("csv")
	assert.Error(t, err)
}

func TestFormat_ContentType(t *testing.T) {
	assert.Equal(t, "application/json", render.FormatJSON.ContentType())
	assert.Equal(t, "application/yaml", render.FormatYAML.ContentType())
	assert.Contains(t, render.FormatText.ContentType(), "text/plain")
	assert.Contains(t, render.FormatMarkdown.ContentType(), "text/markdown")
}

func TestCareerSeries(t *testing.T) {
	rows := []models.SeasonRow{
		{Season: "2021-22", TeamAbbr: "LAL", GamesPlayed: 70, Points: 1400},
		{Season: "2022-23", TeamAbbr: "TOT", GamesPlayed: 50, Points: 1000},
		{Season: "2022-23", TeamAbbr: "LAL", GamesPlayed: 20, Points: 300},
		{Season: "2022-23", TeamAbbr: "MIA", GamesPlayed: 30, Points: 700},
		{Season: "2023-24", TeamAbbr: "MIA", GamesPlayed: 0},
	}

	series := render.CareerSeries(rows)
	require.Len(t, series, 3)

	assert.Equal(t, "2021-22", series[0].Season)
	assert.Equal(t, "LAL", series[0].TeamAbbr)
	assert.Equal(t, "20.0", series[0].Points.Format(1))

	assert.Equal(t, "TOT", series[1].TeamAbbr)
	assert.Equal(t, 50, series[1].GamesPlayed)
	assert.Equal(t, "20.0", series[1].Points.Format(1))

	assert.False(t, series[2].Points.Valid())
}

func TestCareerSeries_Empty(t *testing.T) {
	assert.Empty(t, render.CareerSeries(nil))
}

func TestReport_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, render.FormatText, bundle()))
	out := buf.String()

	assert.Contains(t, out, "Test Star  Forward (SF, PF)")
	assert.Contains(t, out, "Team:    LAL  Los Angeles Lakers")
	assert.Contains(t, out, "Season:  2023-24  (10 games)")
	assert.Contains(t, out, "30.0")
	assert.Contains(t, out, "Trend:   Ascending  (PTS +5.0, REB +1.0, AST +1.0, FG% +2.0%)")
	assert.Contains(t, out, "Style:   Elite all-around star")
	assert.Contains(t, out, "  - NBA All-Star (2023)")
	assert.Contains(t, out, "Points per game by season:")

	// 30.0 is the best season, 20.0 gets two thirds of the bar
	assert.Contains(t, out, "2023-24 LAL |"+strings.Repeat("█", 40)+" 30.0")
	assert.Contains(t, out, "2022-23 LAL |"+strings.Repeat("█", 27)+" 20.0")
}

func TestReport_TextFailed(t *testing.T) {
	b := &service.Bundle{
		Report: report.NewBuilder(basketball_nba.English(), basketball_nba.Positions()).NotFound("Nobody", "2023-24"),
	}

	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, render.FormatText, b))
	assert.Equal(t, "Player not found: Nobody. Check that the name is spelled correctly.\n", buf.String())
}

func TestReport_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, render.FormatMarkdown, bundle()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Test Star\n"))
	assert.Contains(t, out, "- **Team:** Los Angeles Lakers (LAL)")
	assert.Contains(t, out, "| 30.0 | 7.0 | 8.0 |")
	assert.Contains(t, out, "## Career")
	assert.Contains(t, out, "| 2022-23 | LAL | 50 | 20.0 | 6.0 | 5.0 | 50.0 |")
}

func TestReport_TextLocalized(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, render.FormatText, localizedBundle(basketball_nba.TraditionalChinese())))
	out := buf.String()

	assert.Contains(t, out, "球隊:      洛杉磯 湖人")
	assert.Contains(t, out, "賽季:      2023-24  (10 場)")
	assert.Contains(t, out, "趨勢:      上升期")
	assert.Contains(t, out, "風格:      頂級全能巨星")
	assert.Contains(t, out, "獎項:\n")
	assert.Contains(t, out, "各賽季場均得分:\n")
	assert.NotContains(t, out, "Team:")
	assert.NotContains(t, out, "Points per game")
}

func TestReport_MarkdownLocalized(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, render.FormatMarkdown, localizedBundle(basketball_nba.TraditionalChinese())))
	out := buf.String()

	assert.Contains(t, out, "- **位置:** Forward (小前鋒, 大前鋒)")
	assert.Contains(t, out, "- **出賽場次:** 10")
	assert.Contains(t, out, "## 場均數據")
	assert.Contains(t, out, "## 生涯")
	assert.Contains(t, out, "| 賽季 | 球隊 | GP | PTS | REB | AST | FG% |")
	assert.NotContains(t, out, "## Awards")
}

func TestReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, render.FormatJSON, bundle()))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	rep := doc["report"].(map[string]interface{})
	assert.Equal(t, "Test Star", rep["name"])
	assert.Equal(t, 30.0, rep["pts"])
	assert.Len(t, doc["series"], 2)
	assert.Len(t, doc["seasons"], 2)
}

func TestReport_JSONSentinels(t *testing.T) {
	b := &service.Bundle{
		Report: report.NewBuilder(basketball_nba.English(), basketball_nba.Positions()).NotFound("Nobody", "2023-24"),
	}

	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, render.FormatJSON, b))

	var doc struct {
		Report map[string]interface{} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "N/A", doc.Report["pts"])
	assert.Equal(t, "N/A", doc.Report["ato_ratio"])
	assert.NotEmpty(t, doc.Report["error"])
}

func TestReport_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Report(&buf, render.FormatYAML, bundle()))

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	rep := doc["report"].(map[string]interface{})
	assert.Equal(t, "Test Star", rep["name"])
	assert.EqualValues(t, 30, rep["pts"])
	assert.Equal(t, "Ascending", rep["trend_analysis"].(map[string]interface{})["trend_status"])
}

func TestTeams(t *testing.T) {
	teams := []models.Team{
		{ID: 1610612747, Abbreviation: "LAL", FullName: "Los Angeles Lakers", DisplayName: "洛杉磯 湖人"},
		{ID: 1610612748, Abbreviation: "MIA", FullName: "Miami Heat"},
	}

	var text bytes.Buffer
	require.NoError(t, render.Teams(&text, render.FormatText, teams))
	lines := strings.Split(strings.TrimSpace(text.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ABBR"))
	assert.Contains(t, lines[1], "洛杉磯 湖人")
	assert.Contains(t, lines[2], "Miami Heat")

	var md bytes.Buffer
	require.NoError(t, render.Teams(&md, render.FormatMarkdown, teams))
	assert.Contains(t, md.String(), "| ABBR | TEAM | ID |\n|---|---|---|\n")
	assert.Contains(t, md.String(), "| MIA | Miami Heat | 1610612748 |")
}

func TestPlayers(t *testing.T) {
	players := []models.PlayerRef{
		{ID: 2544, Name: "LeBron James", TeamAbbr: "LAL"},
		{ID: 977, Name: "Kobe Bryant"},
	}

	var buf bytes.Buffer
	require.NoError(t, render.Players(&buf, render.FormatText, players))
	assert.Contains(t, buf.String(), "LeBron James")
	assert.Regexp(t, `Kobe Bryant\s+-\s+977`, buf.String())

	var js bytes.Buffer
	require.NoError(t, render.Players(&js, render.FormatJSON, players))
	var decoded []models.PlayerRef
	require.NoError(t, json.Unmarshal(js.Bytes(), &decoded))
	assert.Equal(t, players, decoded)
}

func TestScoreboard(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	board := &models.Scoreboard{
		Date: day,
		Games: []models.Game{
			{GameID: "001", Status: models.StatusFinal, StatusText: "Final", HomeTeamID: 1610612747, VisitorTeamID: 1610612738},
			{GameID: "002", Status: models.StatusLive, StatusText: "Q3 5:12", HomeTeamID: 1610612748, VisitorTeamID: 1610612744, PeriodLabel: "Q3"},
			{GameID: "003", Status: models.StatusUpcoming, StatusText: "7:30 pm ET", HomeTeamID: 1610612737, VisitorTeamID: 1610612751},
		},
		LineScores: []models.LineScore{
			{GameID: "001", TeamID: 1610612747, TeamAbbr: "LAL", Points: 122},
			{GameID: "001", TeamID: 1610612738, TeamAbbr: "BOS", Points: 118},
			{GameID: "002", TeamID: 1610612748, TeamAbbr: "MIA", Points: 70},
			{GameID: "002", TeamID: 1610612744, TeamAbbr: "GSW", Points: 66},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, render.Scoreboard(&buf, render.FormatText, board))
	out := buf.String()
	assert.Regexp(t, `001\s+BOS @ LAL\s+118-122\s+Final`, out)
	assert.Regexp(t, `002\s+GSW @ MIA\s+66-70 \(Q3\)\s+Q3 5:12`, out)
	assert.Regexp(t, `003\s+BKN @ ATL\s+7:30 pm ET`, out)
}

func TestScoreboard_NoGames(t *testing.T) {
	var buf bytes.Buffer
	board := &models.Scoreboard{Date: time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, render.Scoreboard(&buf, render.FormatText, board))
	assert.Equal(t, "No games on 2024-07-04\n", buf.String())
}
