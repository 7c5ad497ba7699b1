package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/logging"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/providers/providertest"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/publisher"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/registry"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/service"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

type event struct {
	query  string
	status publisher.Status
	report models.PlayerReport
}

type recorder struct {
	mu     sync.Mutex
	events []event
	err    error
}

func (r *recorder) PublishReport(ctx context.Context, query string, status publisher.Status, report *models.PlayerReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event{query: query, status: status, report: *report})
	return r.err
}

func (r *recorder) last(t *testing.T) event {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

func star() *providertest.Player {
	return &providertest.Player{
		Ref:  models.PlayerRef{ID: 7, Name: "Test Star", TeamID: 1610612747, TeamAbbr: "LAL", Active: true},
		Info: &models.PlayerInfo{ID: 7, DisplayName: "Test Star", PositionCode: "Forward", TeamAbbreviation: "LAL"},
		Seasons: []models.SeasonRow{
			{Season: "2022-23", TeamAbbr: "LAL", GamesPlayed: 50, Points: 1000},
			{
				Season: "2023-24", TeamAbbr: "LAL", GamesPlayed: 10,
				Points: 300, Rebounds: 70, Assists: 80, Turnovers: 40, FGPct: 0.52,
			},
		},
		Career: &models.CareerTotals{GamesPlayed: 100, Points: 2500, Rebounds: 600, Assists: 700, FGPct: 0.5},
		Awards: []models.AwardRow{{Description: "NBA All-Star", Season: "2023-24"}},
	}
}

func bench() *providertest.Player {
	return &providertest.Player{
		Ref:  models.PlayerRef{ID: 8, Name: "Bench Guard", TeamID: 1610612744, TeamAbbr: "GSW", Active: true},
		Info: &models.PlayerInfo{ID: 8, DisplayName: "Bench Guard", PositionCode: "Guard"},
	}
}

func newService(t *testing.T, fake *providertest.Provider) (*service.Service, *recorder) {
	t.Helper()
	rec := &recorder{}
	svc := service.New(fake, registry.New(),
		service.WithPublisher(rec),
		service.WithLogger(logging.Discard()),
		service.WithDefaultSeason("2023-24"),
	)
	return svc, rec
}

func TestReport_Success(t *testing.T) {
	svc, rec := newService(t, providertest.New(star(), bench()))

	bundle, err := svc.Report(context.Background(), service.Request{Name: "  test STAR ", Season: "2023-24"})
	require.NoError(t, err)

	r := bundle.Report
	assert.False(t, r.Failed())
	assert.Equal(t, "Test Star", r.Name)
	assert.Equal(t, "SF, PF", r.PrecisePositions)
	assert.Equal(t, "LAL", r.TeamAbbr)
	assert.Equal(t, "Los Angeles Lakers", r.TeamFull)
	assert.True(t, r.HasSeasonData)
	assert.Equal(t, 10, r.GamesPlayed)
	assert.Equal(t, "30.0", r.Points.Format(1))
	assert.Equal(t, "2.00", r.AstToTov.Format(2))
	assert.Equal(t, models.TrendAscending, r.Trend.Status)
	assert.Equal(t, "+5.0", r.Trend.DeltaPts)
	assert.Equal(t, "+2.0%", r.Trend.DeltaFGPct)
	assert.Equal(t, models.StyleEliteAllAround, r.Style.Style)
	assert.Equal(t, []string{"NBA All-Star (2023)"}, r.Awards)

	require.NotNil(t, bundle.Info)
	assert.Len(t, bundle.Seasons, 2)
	assert.Len(t, bundle.Awards, 1)
	require.NotNil(t, bundle.Locale)
	assert.Equal(t, "en", bundle.Locale.Key)

	assert.Equal(t, publisher.StatusOK, bundle.Status)

	ev := rec.last(t)
	assert.Equal(t, "test STAR", ev.query)
	assert.Equal(t, publisher.StatusOK, ev.status)
	assert.Equal(t, "Test Star", ev.report.Name)
}

func TestReport_DefaultSeason(t *testing.T) {
	svc, _ := newService(t, providertest.New(star()))

	bundle, err := svc.Report(context.Background(), service.Request{Name: "Test Star"})
	require.NoError(t, err)
	assert.Equal(t, "2023-24", bundle.Report.Season)
	assert.True(t, bundle.Report.HasSeasonData)
}

func TestReport_SeasonWithoutRows(t *testing.T) {
	svc, rec := newService(t, providertest.New(star()))

	bundle, err := svc.Report(context.Background(), service.Request{Name: "Test Star", Season: "2010-11"})
	require.NoError(t, err)

	r := bundle.Report
	assert.False(t, r.Failed())
	assert.Equal(t, "Test Star", r.Name)
	assert.Equal(t, "2010-11 (no data)", r.Season)
	assert.False(t, r.Points.Valid())
	assert.Equal(t, models.TrendNoData, r.Trend.Status)
	assert.Equal(t, publisher.StatusOK, rec.last(t).status)
}

func TestReport_SeveralTeamsWithoutCombinedRowIsLogged(t *testing.T) {
	traded := star()
	traded.Seasons = append(traded.Seasons,
		models.SeasonRow{Season: "2021-22", TeamAbbr: "DET", GamesPlayed: 10, Points: 50},
		models.SeasonRow{Season: "2021-22", TeamAbbr: "NYK", GamesPlayed: 20, Points: 200},
	)

	logger, hook := logrustest.NewNullLogger()
	svc := service.New(providertest.New(traded), registry.New(),
		service.WithLogger(logger),
		service.WithDefaultSeason("2023-24"),
	)

	bundle, err := svc.Report(context.Background(), service.Request{Name: "Test Star", Season: "2021-22"})
	require.NoError(t, err)
	assert.True(t, bundle.Report.MultiTeam)
	assert.Equal(t, 20, bundle.Report.GamesPlayed)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, []string{"DET", "NYK"}, entry.Data["teams"])
	assert.Equal(t, "2021-22", entry.Data["season"])

	hook.Reset()
	_, err = svc.Report(context.Background(), service.Request{Name: "Test Star"})
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries())
}

func TestReport_Localized(t *testing.T) {
	svc, _ := newService(t, providertest.New(star()))

	bundle, err := svc.Report(context.Background(), service.Request{Name: "Test Star", Locale: "zh-TW"})
	require.NoError(t, err)
	assert.Equal(t, "洛杉磯 湖人", bundle.Report.TeamFull)
	assert.Equal(t, "zh-TW", bundle.Locale.Key)
}

func TestReport_UnknownLocale(t *testing.T) {
	fake := providertest.New(star())
	svc, rec := newService(t, fake)

	_, err := svc.Report(context.Background(), service.Request{Name: "Test Star", Locale: "fr"})
	assert.Error(t, err)
	assert.Equal(t, 0, fake.Calls("FindPlayerID"))
	assert.Empty(t, rec.events)
}

func TestReport_NotFound(t *testing.T) {
	for _, name := range []string{"Nobody Atall", "Test", ""} {
		t.Run(name, func(t *testing.T) {
			svc, rec := newService(t, providertest.New(star()))

			bundle, err := svc.Report(context.Background(), service.Request{Name: name, Season: "2023-24"})
			require.NoError(t, err)

			r := bundle.Report
			assert.True(t, r.Failed())
			assert.Contains(t, r.Error, "Player not found")
			assert.Equal(t, models.NotAvailable, r.TeamAbbr)
			assert.False(t, r.Points.Valid())
			assert.Equal(t, models.TrendNoData, r.Trend.Status)
			assert.Nil(t, bundle.Info)
			assert.Equal(t, publisher.StatusNotFound, bundle.Status)
			assert.Equal(t, publisher.StatusNotFound, rec.last(t).status)
		})
	}
}

func TestReport_ProviderFailure(t *testing.T) {
	fake := providertest.New(star())
	fake.Err = errors.New("upstream down")
	svc, rec := newService(t, fake)

	bundle, err := svc.Report(context.Background(), service.Request{Name: "Test Star", Season: "2023-24"})
	require.NoError(t, err)

	r := bundle.Report
	assert.True(t, r.Failed())
	assert.Contains(t, r.Error, "upstream down")
	assert.Equal(t, "Test Star", r.Name)
	assert.Equal(t, models.NotAvailable, r.Position)
	assert.False(t, r.Rebounds.Valid())
	assert.Empty(t, r.Awards)
	assert.Nil(t, bundle.Seasons)
	assert.Equal(t, publisher.StatusFailed, rec.last(t).status)
}

func TestReport_InvalidSeason(t *testing.T) {
	fake := providertest.New(star())
	svc, rec := newService(t, fake)

	bundle, err := svc.Report(context.Background(), service.Request{Name: "Test Star", Season: "2023"})
	require.NoError(t, err)

	assert.True(t, bundle.Report.Failed())
	assert.Contains(t, bundle.Report.Error, `"2023"`)
	assert.Equal(t, 0, fake.Calls("FindPlayerID"))
	assert.Equal(t, publisher.StatusInvalidSeason, rec.last(t).status)
}

func TestReport_PublishFailureIsIgnored(t *testing.T) {
	fake := providertest.New(star())
	rec := &recorder{err: errors.New("stream unavailable")}
	svc := service.New(fake, registry.New(), service.WithPublisher(rec), service.WithLogger(logging.Discard()))

	bundle, err := svc.Report(context.Background(), service.Request{Name: "Test Star", Season: "2023-24"})
	require.NoError(t, err)
	assert.False(t, bundle.Report.Failed())
}

func TestTeams(t *testing.T) {
	svc, _ := newService(t, providertest.New())

	teams, err := svc.Teams(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, teams, 30)
	assert.Equal(t, "ATL", teams[0].Abbreviation)
	assert.Equal(t, teams[0].FullName, teams[0].DisplayName)

	zh, err := svc.Teams(context.Background(), "zh-TW")
	require.NoError(t, err)
	for _, team := range zh {
		if team.Abbreviation == "LAL" {
			assert.Equal(t, "洛杉磯 湖人", team.DisplayName)
		}
	}

	_, err = svc.Teams(context.Background(), "xx")
	assert.Error(t, err)
}

func TestPlayers(t *testing.T) {
	svc, _ := newService(t, providertest.New(star(), bench()))
	ctx := context.Background()

	all, err := svc.Players(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	roster, err := svc.Players(ctx, " gsw ")
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "Bench Guard", roster[0].Name)

	_, err = svc.Players(ctx, "XYZ")
	assert.ErrorIs(t, err, contracts.ErrUnknownTeam)
}

func TestScoreboard(t *testing.T) {
	fake := providertest.New()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	fake.AddScoreboard(&models.Scoreboard{
		Date:  day,
		Games: []models.Game{{GameID: "0022300589", Status: models.StatusFinal}},
	})
	svc, _ := newService(t, fake)

	board, err := svc.Scoreboard(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, board.Games, 1)
	assert.Equal(t, "0022300589", board.Games[0].GameID)

	fake.Err = errors.New("timeout")
	_, err = svc.Scoreboard(context.Background(), day)
	assert.ErrorContains(t, err, "scoreboard 2024-01-15")
}
