package contracts

import (
	"context"
	"errors"
	"time"

	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

var (
	// ErrPlayerNotFound is returned when a name has no directory match
	ErrPlayerNotFound = errors.New("player not found")

	// ErrEmptyResultSet is returned when the provider sends an empty or malformed table
	ErrEmptyResultSet = errors.New("empty result set")

	// ErrUnknownTeam is returned for team abbreviations outside the directory
	ErrUnknownTeam = errors.New("unknown team")
)

// StatsProvider is the upstream statistics source the report pipeline consumes.
// Implementations must be safe to call for independent queries.
type StatsProvider interface {
	// Directory lookups
	FindPlayerID(ctx context.Context, name string) (int, error) // case-insensitive exact full name
	ListAllPlayers(ctx context.Context) ([]models.PlayerRef, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	ListActivePlayersByTeam(ctx context.Context, teamID int) ([]models.PlayerRef, error)

	// Player data
	GetPlayerInfo(ctx context.Context, playerID int) (*models.PlayerInfo, error)
	GetCareerStats(ctx context.Context, playerID int) ([]models.SeasonRow, *models.CareerTotals, error)
	GetAwards(ctx context.Context, playerID int) ([]models.AwardRow, error)

	// Display only, unrelated to reports
	GetTodaysGames(ctx context.Context, date time.Time) (*models.Scoreboard, error)
}
