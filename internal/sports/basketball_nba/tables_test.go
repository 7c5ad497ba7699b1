package basketball_nba_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

func TestTeams(t *testing.T) {
	teams := basketball_nba.Teams()
	require.Len(t, teams, 30)

	seen := make(map[string]bool)
	for _, team := range teams {
		assert.False(t, seen[team.Abbreviation], "duplicate %s", team.Abbreviation)
		seen[team.Abbreviation] = true

		byID, ok := basketball_nba.TeamByID(team.ID)
		require.True(t, ok)
		assert.Equal(t, team.Abbreviation, byID.Abbreviation)
	}

	// Callers get a copy
	teams[0].FullName = "changed"
	assert.NotEqual(t, "changed", basketball_nba.Teams()[0].FullName)
}

func TestTeamByAbbreviation(t *testing.T) {
	team, ok := basketball_nba.TeamByAbbreviation(" lal ")
	require.True(t, ok)
	assert.Equal(t, 1610612747, team.ID)
	assert.Equal(t, "Los Angeles Lakers", team.FullName)

	_, ok = basketball_nba.TeamByAbbreviation("SEA")
	assert.False(t, ok)
}

func TestTeamNames(t *testing.T) {
	assert.Equal(t, "BOS", basketball_nba.GetTeamAbbreviation("Boston Celtics"))
	assert.Equal(t, "Nowhere", basketball_nba.GetTeamAbbreviation("Nowhere"))

	assert.Equal(t, "Boston Celtics", basketball_nba.GetTeamName("BOS"))
	assert.Equal(t, "Seattle SuperSonics", basketball_nba.GetTeamName("SEA"))
	assert.Equal(t, "XXX", basketball_nba.GetTeamName("XXX"))
}

func TestPositions(t *testing.T) {
	positions := basketball_nba.Positions()
	assert.Equal(t, []string{"PG", "SG"}, positions["Guard"])
	assert.Equal(t, []string{"PF", "C", "SF"}, positions["C-F"])
	assert.Equal(t, positions["Forward-Center"], positions["F-C"])
}

func TestLocales(t *testing.T) {
	en := basketball_nba.English()
	zh := basketball_nba.TraditionalChinese()

	t.Run("english keeps codes", func(t *testing.T) {
		assert.Equal(t, "PG", en.Translate(en.PrecisePositions, "PG"))
		assert.Equal(t, "LAL", en.TeamName("LAL"))
		assert.Equal(t, "Ascending", en.TrendLabel(models.TrendAscending))
		assert.Equal(t, "Role player", en.StyleLabel(models.StyleRolePlayer))
		assert.Equal(t, "A dependable rotation player.", en.Rating(models.StyleRolePlayer))
	})

	t.Run("traditional chinese", func(t *testing.T) {
		assert.Equal(t, "控球後衛", zh.Translate(zh.PrecisePositions, "PG"))
		assert.Equal(t, "西雅圖 超音速", zh.TeamName("SEA"))
		assert.Equal(t, "上升期", zh.TrendLabel(models.TrendAscending))
		assert.Equal(t, "角色球員", zh.StyleLabel(models.StyleRolePlayer))
		assert.Equal(t, "XYZ", zh.TeamName("XYZ"))
	})

	t.Run("every team has a chinese name", func(t *testing.T) {
		for _, team := range basketball_nba.Teams() {
			_, ok := zh.Teams[team.Abbreviation]
			assert.True(t, ok, team.Abbreviation)
		}
	})

	t.Run("every style has a rating", func(t *testing.T) {
		for _, style := range []models.StyleLabel{
			models.StyleEliteAllAround, models.StyleVolumeScorer, models.StylePlaymaker,
			models.StyleReboundingAnchor, models.StyleRolePlayer, models.StyleInsufficientData,
		} {
			assert.NotEmpty(t, en.Rating(style), style)
			assert.NotEmpty(t, zh.Rating(style), style)
		}
	})
}
