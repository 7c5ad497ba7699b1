// Package providertest provides an in-memory StatsProvider for tests.
package providertest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// Player is everything the provider knows about one player
type Player struct {
	Ref     models.PlayerRef
	Info    *models.PlayerInfo
	Seasons []models.SeasonRow
	Career  *models.CareerTotals
	Awards  []models.AwardRow
}

// Provider serves fixed data and counts calls per operation.
// Err, when set, is returned by every operation.
type Provider struct {
	mu          sync.Mutex
	players     map[int]*Player
	scoreboards map[string]*models.Scoreboard
	calls       map[string]int

	Err error
}

var _ contracts.StatsProvider = (*Provider)(nil)

// New returns a provider knowing players
func New(players ...*Player) *Provider {
	p := &Provider{
		players:     make(map[int]*Player, len(players)),
		scoreboards: make(map[string]*models.Scoreboard),
		calls:       make(map[string]int),
	}
	for _, pl := range players {
		p.players[pl.Ref.ID] = pl
	}
	return p
}

// AddScoreboard registers the scoreboard of one day
func (p *Provider) AddScoreboard(board *models.Scoreboard) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scoreboards[board.Date.Format("2006-01-02")] = board
}

// Calls returns how often op was invoked
func (p *Provider) Calls(op string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[op]
}

func (p *Provider) enter(op string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls[op]++
	return p.Err
}

func (p *Provider) player(id int) (*Player, error) {
	pl, ok := p.players[id]
	if !ok {
		return nil, fmt.Errorf("player %d: %w", id, contracts.ErrEmptyResultSet)
	}
	return pl, nil
}

func (p *Provider) FindPlayerID(ctx context.Context, name string) (int, error) {
	if err := p.enter("FindPlayerID"); err != nil {
		return 0, err
	}
	for id, pl := range p.players {
		if strings.EqualFold(pl.Ref.Name, name) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, contracts.ErrPlayerNotFound)
}

func (p *Provider) ListAllPlayers(ctx context.Context) ([]models.PlayerRef, error) {
	if err := p.enter("ListAllPlayers"); err != nil {
		return nil, err
	}
	refs := make([]models.PlayerRef, 0, len(p.players))
	for _, pl := range p.players {
		refs = append(refs, pl.Ref)
	}
	sortRefs(refs)
	return refs, nil
}

func (p *Provider) ListTeams(ctx context.Context) ([]models.Team, error) {
	if err := p.enter("ListTeams"); err != nil {
		return nil, err
	}
	return basketball_nba.Teams(), nil
}

func (p *Provider) ListActivePlayersByTeam(ctx context.Context, teamID int) ([]models.PlayerRef, error) {
	if err := p.enter("ListActivePlayersByTeam"); err != nil {
		return nil, err
	}
	var refs []models.PlayerRef
	for _, pl := range p.players {
		if pl.Ref.Active && pl.Ref.TeamID == teamID {
			refs = append(refs, pl.Ref)
		}
	}
	sortRefs(refs)
	return refs, nil
}

func (p *Provider) GetPlayerInfo(ctx context.Context, playerID int) (*models.PlayerInfo, error) {
	if err := p.enter("GetPlayerInfo"); err != nil {
		return nil, err
	}
	pl, err := p.player(playerID)
	if err != nil {
		return nil, err
	}
	return pl.Info, nil
}

func (p *Provider) GetCareerStats(ctx context.Context, playerID int) ([]models.SeasonRow, *models.CareerTotals, error) {
	if err := p.enter("GetCareerStats"); err != nil {
		return nil, nil, err
	}
	pl, err := p.player(playerID)
	if err != nil {
		return nil, nil, err
	}
	return pl.Seasons, pl.Career, nil
}

func (p *Provider) GetAwards(ctx context.Context, playerID int) ([]models.AwardRow, error) {
	if err := p.enter("GetAwards"); err != nil {
		return nil, err
	}
	pl, err := p.player(playerID)
	if err != nil {
		return nil, err
	}
	return pl.Awards, nil
}

func (p *Provider) GetTodaysGames(ctx context.Context, date time.Time) (*models.Scoreboard, error) {
	if err := p.enter("GetTodaysGames"); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if board, ok := p.scoreboards[date.Format("2006-01-02")]; ok {
		return board, nil
	}
	return &models.Scoreboard{Date: date}, nil
}

func sortRefs(refs []models.PlayerRef) {
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
}
