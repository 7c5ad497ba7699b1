package cache_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/cache"
	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/providers/providertest"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func lebron() *providertest.Player {
	return &providertest.Player{
		Ref:  models.PlayerRef{ID: 2544, Name: "LeBron James", TeamID: 1610612747, TeamAbbr: "LAL", Active: true},
		Info: &models.PlayerInfo{ID: 2544, DisplayName: "LeBron James", PositionCode: "Forward"},
		Seasons: []models.SeasonRow{
			{Season: "2023-24", TeamAbbr: "LAL", GamesPlayed: 71, Points: 1822},
		},
		Career: &models.CareerTotals{GamesPlayed: 1492, Points: 40474},
		Awards: []models.AwardRow{{Description: "NBA Most Valuable Player", Season: "2012-13"}},
	}
}

func TestKey(t *testing.T) {
	assert.Equal(t, "nbareport:teams", cache.Key("teams"))
	assert.Equal(t, "nbareport:player_info:2544", cache.Key("player_info", 2544))
	assert.Equal(t, "nbareport:scoreboard:2024-01-15", cache.Key("scoreboard", "2024-01-15"))
}

func TestRedisStore_RoundTrip(t *testing.T) {
	mr, client := newRedis(t)
	store := cache.NewRedisStore(client)
	ctx := context.Background()

	var missing []models.PlayerRef
	found, err := store.Get(ctx, "nbareport:none", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	refs := []models.PlayerRef{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	require.NoError(t, store.Set(ctx, "nbareport:refs", refs, time.Hour))

	var got []models.PlayerRef
	found, err = store.Get(ctx, "nbareport:refs", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, refs, got)

	ttl := mr.TTL("nbareport:refs")
	assert.Equal(t, time.Hour, ttl)
}

func TestRedisStore_Expiry(t *testing.T) {
	mr, client := newRedis(t)
	store := cache.NewRedisStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "nbareport:x", 42, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got int
	found, err := store.Get(ctx, "nbareport:x", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_CorruptEntry(t *testing.T) {
	mr, client := newRedis(t)
	store := cache.NewRedisStore(client)
	require.NoError(t, mr.Set("nbareport:bad", "not json"))

	var got int
	found, err := store.Get(context.Background(), "nbareport:bad", &got)
	assert.Error(t, err)
	assert.False(t, found)
}

func TestProvider_MemoizesPlayerData(t *testing.T) {
	_, client := newRedis(t)
	fake := providertest.New(lebron())
	p := cache.NewProvider(fake, cache.NewRedisStore(client), quietLogger())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		id, err := p.FindPlayerID(ctx, "LeBron James")
		require.NoError(t, err)
		assert.Equal(t, 2544, id)

		info, err := p.GetPlayerInfo(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Forward", info.PositionCode)

		seasons, career, err := p.GetCareerStats(ctx, id)
		require.NoError(t, err)
		require.Len(t, seasons, 1)
		assert.Equal(t, 1822.0, seasons[0].Points)
		require.NotNil(t, career)
		assert.Equal(t, 1492, career.GamesPlayed)

		awards, err := p.GetAwards(ctx, id)
		require.NoError(t, err)
		assert.Len(t, awards, 1)
	}

	assert.Equal(t, 1, fake.Calls("FindPlayerID"))
	assert.Equal(t, 1, fake.Calls("GetPlayerInfo"))
	assert.Equal(t, 1, fake.Calls("GetCareerStats"))
	assert.Equal(t, 1, fake.Calls("GetAwards"))
}

func TestProvider_NameKeyIsCaseInsensitive(t *testing.T) {
	_, client := newRedis(t)
	fake := providertest.New(lebron())
	p := cache.NewProvider(fake, cache.NewRedisStore(client), quietLogger())
	ctx := context.Background()

	_, err := p.FindPlayerID(ctx, "LeBron James")
	require.NoError(t, err)
	_, err = p.FindPlayerID(ctx, "lebron james")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.Calls("FindPlayerID"))
}

func TestProvider_ErrorsAreNotCached(t *testing.T) {
	_, client := newRedis(t)
	fake := providertest.New(lebron())
	p := cache.NewProvider(fake, cache.NewRedisStore(client), quietLogger())
	ctx := context.Background()

	_, err := p.FindPlayerID(ctx, "Nobody")
	assert.ErrorIs(t, err, contracts.ErrPlayerNotFound)
	_, err = p.FindPlayerID(ctx, "Nobody")
	assert.ErrorIs(t, err, contracts.ErrPlayerNotFound)

	assert.Equal(t, 2, fake.Calls("FindPlayerID"))
}

func TestProvider_ScoreboardExpires(t *testing.T) {
	mr, client := newRedis(t)
	fake := providertest.New()
	p := cache.NewProvider(fake, cache.NewRedisStore(client), quietLogger())
	ctx := context.Background()
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := p.GetTodaysGames(ctx, day)
	require.NoError(t, err)
	_, err = p.GetTodaysGames(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.Calls("GetTodaysGames"))

	mr.FastForward(cache.ScoreboardTTL + time.Second)

	_, err = p.GetTodaysGames(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.Calls("GetTodaysGames"))
}

func TestProvider_StoreFailureIsBypassed(t *testing.T) {
	mr, client := newRedis(t)
	fake := providertest.New(lebron())
	p := cache.NewProvider(fake, cache.NewRedisStore(client), quietLogger())
	mr.Close()

	teams, err := p.ListTeams(context.Background())
	require.NoError(t, err)
	assert.Len(t, teams, 30)
}

func TestProvider_NopStore(t *testing.T) {
	fake := providertest.New(lebron())
	p := cache.NewProvider(fake, nil, quietLogger())
	ctx := context.Background()

	_, err := p.ListAllPlayers(ctx)
	require.NoError(t, err)
	_, err = p.ListAllPlayers(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, fake.Calls("ListAllPlayers"))
}

func TestProvider_PassesProviderErrors(t *testing.T) {
	fake := providertest.New(lebron())
	fake.Err = errors.New("upstream down")
	p := cache.NewProvider(fake, cache.NopStore{}, quietLogger())

	_, err := p.ListActivePlayersByTeam(context.Background(), 1610612747)
	assert.EqualError(t, err, "upstream down")
}
