package cache

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// TTL constants
const (
	DirectoryTTL  = 24 * time.Hour
	PlayerDataTTL = 1 * time.Hour
	RosterTTL     = 1 * time.Hour
	ScoreboardTTL = 5 * time.Minute
)

// Provider memoizes every StatsProvider operation in a Store.
// Errors are never cached; store failures are logged and bypassed.
type Provider struct {
	next   contracts.StatsProvider
	store  Store
	logger *logrus.Logger
}

var _ contracts.StatsProvider = (*Provider)(nil)

// NewProvider wraps next with memoization
func NewProvider(next contracts.StatsProvider, store Store, logger *logrus.Logger) *Provider {
	if store == nil {
		store = NopStore{}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Provider{
		next:   next,
		store:  store,
		logger: logger,
	}
}

// memoize returns the cached value at key or calls fetch and stores its result
func memoize[T any](ctx context.Context, p *Provider, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	log := p.logger.WithField("key", key)

	var cached T
	found, err := p.store.Get(ctx, key, &cached)
	if err != nil {
		log.WithError(err).Warn("cache read failed, bypassing")
	} else if found {
		log.Debug("cache hit")
		return cached, nil
	}

	value, err := fetch()
	if err != nil {
		return value, err
	}

	if err := p.store.Set(ctx, key, value, ttl); err != nil {
		log.WithError(err).Warn("cache write failed")
	}
	return value, nil
}

// FindPlayerID memoizes name resolution; names are keyed case-insensitively
func (p *Provider) FindPlayerID(ctx context.Context, name string) (int, error) {
	key := Key("find_player_id", strings.ToLower(name))
	return memoize(ctx, p, key, DirectoryTTL, func() (int, error) {
		return p.next.FindPlayerID(ctx, name)
	})
}

// ListAllPlayers memoizes the full player directory
func (p *Provider) ListAllPlayers(ctx context.Context) ([]models.PlayerRef, error) {
	return memoize(ctx, p, Key("all_players"), DirectoryTTL, func() ([]models.PlayerRef, error) {
		return p.next.ListAllPlayers(ctx)
	})
}

// ListTeams memoizes the team directory
func (p *Provider) ListTeams(ctx context.Context) ([]models.Team, error) {
	return memoize(ctx, p, Key("teams"), DirectoryTTL, func() ([]models.Team, error) {
		return p.next.ListTeams(ctx)
	})
}

// ListActivePlayersByTeam memoizes one team's roster
func (p *Provider) ListActivePlayersByTeam(ctx context.Context, teamID int) ([]models.PlayerRef, error) {
	return memoize(ctx, p, Key("active_players", teamID), RosterTTL, func() ([]models.PlayerRef, error) {
		return p.next.ListActivePlayersByTeam(ctx, teamID)
	})
}

// GetPlayerInfo memoizes biographical data
func (p *Provider) GetPlayerInfo(ctx context.Context, playerID int) (*models.PlayerInfo, error) {
	return memoize(ctx, p, Key("player_info", playerID), PlayerDataTTL, func() (*models.PlayerInfo, error) {
		return p.next.GetPlayerInfo(ctx, playerID)
	})
}

// careerEntry holds both career tables under one key
type careerEntry struct {
	Seasons []models.SeasonRow   `json:"seasons"`
	Career  *models.CareerTotals `json:"career"`
}

// GetCareerStats memoizes season and career totals together
func (p *Provider) GetCareerStats(ctx context.Context, playerID int) ([]models.SeasonRow, *models.CareerTotals, error) {
	e, err := memoize(ctx, p, Key("career_stats", playerID), PlayerDataTTL, func() (careerEntry, error) {
		seasons, career, err := p.next.GetCareerStats(ctx, playerID)
		return careerEntry{Seasons: seasons, Career: career}, err
	})
	if err != nil {
		return nil, nil, err
	}
	return e.Seasons, e.Career, nil
}

// GetAwards memoizes a player's awards
func (p *Provider) GetAwards(ctx context.Context, playerID int) ([]models.AwardRow, error) {
	return memoize(ctx, p, Key("awards", playerID), PlayerDataTTL, func() ([]models.AwardRow, error) {
		return p.next.GetAwards(ctx, playerID)
	})
}

// GetTodaysGames memoizes the scoreboard of one calendar day
func (p *Provider) GetTodaysGames(ctx context.Context, date time.Time) (*models.Scoreboard, error) {
	key := Key("scoreboard", date.Format("2006-01-02"))
	return memoize(ctx, p, key, ScoreboardTTL, func() (*models.Scoreboard, error) {
		return p.next.GetTodaysGames(ctx, date)
	})
}
