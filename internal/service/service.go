package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/publisher"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/registry"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/report"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// Request is one report query. Empty Season and Locale use the service defaults.
type Request struct {
	Name   string
	Season string
	Locale string
}

// Bundle is a report plus the raw tables it was derived from
type Bundle struct {
	Report  models.PlayerReport    `json:"report" yaml:"report"`
	Info    *models.PlayerInfo     `json:"info,omitempty" yaml:"info,omitempty"`
	Seasons []models.SeasonRow     `json:"seasons,omitempty" yaml:"seasons,omitempty"`
	Career  *models.CareerTotals   `json:"career,omitempty" yaml:"career,omitempty"`
	Awards  []models.AwardRow      `json:"awards,omitempty" yaml:"awards,omitempty"`
	Locale  *basketball_nba.Locale `json:"-" yaml:"-"`
	Status  publisher.Status       `json:"-" yaml:"-"`
}

// Service is the report assembly boundary: provider faults become sentinel reports here
type Service struct {
	provider      contracts.StatsProvider
	locales       *registry.Registry
	positions     basketball_nba.PositionMap
	publisher     publisher.Publisher
	logger        *logrus.Logger
	defaultSeason string
	defaultLocale string
}

// Option configures a Service
type Option func(*Service)

// WithPublisher announces every assembled report
func WithPublisher(p publisher.Publisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// WithLogger sets the service logger
func WithLogger(logger *logrus.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithDefaultSeason sets the season used when a request names none
func WithDefaultSeason(season string) Option {
	return func(s *Service) {
		s.defaultSeason = season
	}
}

// WithDefaultLocale sets the locale used when a request names none
func WithDefaultLocale(key string) Option {
	return func(s *Service) {
		s.defaultLocale = key
	}
}

// New creates a report service
func New(provider contracts.StatsProvider, locales *registry.Registry, opts ...Option) *Service {
	s := &Service{
		provider:      provider,
		locales:       locales,
		positions:     basketball_nba.Positions(),
		publisher:     publisher.NopPublisher{},
		logger:        logrus.StandardLogger(),
		defaultSeason: "2023-24",
		defaultLocale: basketball_nba.LocaleEnglish,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultSeason returns the season used when a request names none
func (s *Service) DefaultSeason() string {
	return s.defaultSeason
}

// Locale resolves key, falling back to the default locale when empty
func (s *Service) Locale(key string) (*basketball_nba.Locale, error) {
	if key == "" {
		key = s.defaultLocale
	}
	return s.locales.GetLocale(key)
}

// Report assembles the report for one player and season.
// The only error is an unknown locale; lookup and provider faults are carried in Report.Error.
func (s *Service) Report(ctx context.Context, req Request) (*Bundle, error) {
	locale, err := s.Locale(req.Locale)
	if err != nil {
		return nil, err
	}
	builder := report.NewBuilder(locale, s.positions)

	name := strings.TrimSpace(req.Name)
	season := strings.TrimSpace(req.Season)
	if season == "" {
		season = s.defaultSeason
	}
	log := s.logger.WithFields(logrus.Fields{"player": name, "season": season})

	bundle := &Bundle{Locale: locale}
	status := publisher.StatusOK

	switch {
	case !models.ValidSeason(season):
		log.Warn("invalid season label")
		bundle.Report = builder.InvalidSeason(name, season)
		status = publisher.StatusInvalidSeason
	default:
		err := s.load(ctx, name, bundle)
		switch {
		case errors.Is(err, contracts.ErrPlayerNotFound):
			log.Info("player not found")
			bundle = &Bundle{Locale: locale, Report: builder.NotFound(name, season)}
			status = publisher.StatusNotFound
		case err != nil:
			log.WithError(err).Error("provider failure")
			bundle = &Bundle{Locale: locale, Report: builder.Failure(name, season, err)}
			status = publisher.StatusFailed
		default:
			var sel report.SeasonSelection
			bundle.Report, sel = builder.Build(report.Input{
				Season:  season,
				Info:    *bundle.Info,
				Seasons: bundle.Seasons,
				Career:  bundle.Career,
				Awards:  bundle.Awards,
			})
			if sel.Resolution == report.ResolutionLastRow {
				log.WithField("teams", sel.Teams).Warn("no combined row for multi-team season, using last row")
			}
		}
	}

	bundle.Status = status
	if err := s.publisher.PublishReport(ctx, name, status, &bundle.Report); err != nil {
		log.WithError(err).Warn("failed to publish report event")
	}

	return bundle, nil
}

// load fills the raw tables of bundle for name
func (s *Service) load(ctx context.Context, name string, bundle *Bundle) error {
	if name == "" {
		return fmt.Errorf("empty name: %w", contracts.ErrPlayerNotFound)
	}

	id, err := s.provider.FindPlayerID(ctx, name)
	if err != nil {
		return err
	}

	info, err := s.provider.GetPlayerInfo(ctx, id)
	if err != nil {
		return fmt.Errorf("player info: %w", err)
	}
	if info == nil {
		return fmt.Errorf("player info: %w", contracts.ErrEmptyResultSet)
	}

	seasons, career, err := s.provider.GetCareerStats(ctx, id)
	if err != nil {
		return fmt.Errorf("career stats: %w", err)
	}

	awards, err := s.provider.GetAwards(ctx, id)
	if err != nil {
		return fmt.Errorf("awards: %w", err)
	}

	bundle.Info = info
	bundle.Seasons = seasons
	bundle.Career = career
	bundle.Awards = awards
	return nil
}

// Teams lists the franchise directory sorted by abbreviation, with
// DisplayName set in the requested locale
func (s *Service) Teams(ctx context.Context, localeKey string) ([]models.Team, error) {
	locale, err := s.Locale(localeKey)
	if err != nil {
		return nil, err
	}
	teams, err := s.provider.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	out := make([]models.Team, len(teams))
	for i, t := range teams {
		t.DisplayName = t.FullName
		if name, ok := locale.Teams[t.Abbreviation]; ok {
			t.DisplayName = name
		}
		out[i] = t
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Abbreviation < out[j].Abbreviation
	})
	return out, nil
}

// Players lists the active roster of team, or every player when team is empty
func (s *Service) Players(ctx context.Context, team string) ([]models.PlayerRef, error) {
	team = strings.TrimSpace(team)
	if team == "" {
		players, err := s.provider.ListAllPlayers(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing players: %w", err)
		}
		return players, nil
	}

	t, ok := basketball_nba.TeamByAbbreviation(team)
	if !ok {
		return nil, fmt.Errorf("%q: %w", team, contracts.ErrUnknownTeam)
	}
	players, err := s.provider.ListActivePlayersByTeam(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("listing %s roster: %w", t.Abbreviation, err)
	}
	return players, nil
}

// Scoreboard returns the games of date
func (s *Service) Scoreboard(ctx context.Context, date time.Time) (*models.Scoreboard, error) {
	board, err := s.provider.GetTodaysGames(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("scoreboard %s: %w", date.Format("2006-01-02"), err)
	}
	return board, nil
}
