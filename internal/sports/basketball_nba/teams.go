package basketball_nba

import (
	"strings"

	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// NBA franchise directory (stats.nba.com team IDs)
var nbaTeams = []models.Team{
	{ID: 1610612737, Abbreviation: "ATL", City: "Atlanta", Nickname: "Hawks", FullName: "Atlanta Hawks"},
	{ID: 1610612738, Abbreviation: "BOS", City: "Boston", Nickname: "Celtics", FullName: "Boston Celtics"},
	{ID: 1610612751, Abbreviation: "BKN", City: "Brooklyn", Nickname: "Nets", FullName: "Brooklyn Nets"},
	{ID: 1610612766, Abbreviation: "CHA", City: "Charlotte", Nickname: "Hornets", FullName: "Charlotte Hornets"},
	{ID: 1610612741, Abbreviation: "CHI", City: "Chicago", Nickname: "Bulls", FullName: "Chicago Bulls"},
	{ID: 1610612739, Abbreviation: "CLE", City: "Cleveland", Nickname: "Cavaliers", FullName: "Cleveland Cavaliers"},
	{ID: 1610612742, Abbreviation: "DAL", City: "Dallas", Nickname: "Mavericks", FullName: "Dallas Mavericks"},
	{ID: 1610612743, Abbreviation: "DEN", City: "Denver", Nickname: "Nuggets", FullName: "Denver Nuggets"},
	{ID: 1610612765, Abbreviation: "DET", City: "Detroit", Nickname: "Pistons", FullName: "Detroit Pistons"},
	{ID: 1610612744, Abbreviation: "GSW", City: "Golden State", Nickname: "Warriors", FullName: "Golden State Warriors"},
	{ID: 1610612745, Abbreviation: "HOU", City: "Houston", Nickname: "Rockets", FullName: "Houston Rockets"},
	{ID: 1610612754, Abbreviation: "IND", City: "Indiana", Nickname: "Pacers", FullName: "Indiana Pacers"},
	{ID: 1610612746, Abbreviation: "LAC", City: "Los Angeles", Nickname: "Clippers", FullName: "Los Angeles Clippers"},
	{ID: 1610612747, Abbreviation: "LAL", City: "Los Angeles", Nickname: "Lakers", FullName: "Los Angeles Lakers"},
	{ID: 1610612763, Abbreviation: "MEM", City: "Memphis", Nickname: "Grizzlies", FullName: "Memphis Grizzlies"},
	{ID: 1610612748, Abbreviation: "MIA", City: "Miami", Nickname: "Heat", FullName: "Miami Heat"},
	{ID: 1610612749, Abbreviation: "MIL", City: "Milwaukee", Nickname: "Bucks", FullName: "Milwaukee Bucks"},
	{ID: 1610612750, Abbreviation: "MIN", City: "Minnesota", Nickname: "Timberwolves", FullName: "Minnesota Timberwolves"},
	{ID: 1610612740, Abbreviation: "NOP", City: "New Orleans", Nickname: "Pelicans", FullName: "New Orleans Pelicans"},
	{ID: 1610612752, Abbreviation: "NYK", City: "New York", Nickname: "Knicks", FullName: "New York Knicks"},
	{ID: 1610612760, Abbreviation: "OKC", City: "Oklahoma City", Nickname: "Thunder", FullName: "Oklahoma City Thunder"},
	{ID: 1610612753, Abbreviation: "ORL", City: "Orlando", Nickname: "Magic", FullName: "Orlando Magic"},
	{ID: 1610612755, Abbreviation: "PHI", City: "Philadelphia", Nickname: "76ers", FullName: "Philadelphia 76ers"},
	{ID: 1610612756, Abbreviation: "PHX", City: "Phoenix", Nickname: "Suns", FullName: "Phoenix Suns"},
	{ID: 1610612757, Abbreviation: "POR", City: "Portland", Nickname: "Trail Blazers", FullName: "Portland Trail Blazers"},
	{ID: 1610612758, Abbreviation: "SAC", City: "Sacramento", Nickname: "Kings", FullName: "Sacramento Kings"},
	{ID: 1610612759, Abbreviation: "SAS", City: "San Antonio", Nickname: "Spurs", FullName: "San Antonio Spurs"},
	{ID: 1610612761, Abbreviation: "TOR", City: "Toronto", Nickname: "Raptors", FullName: "Toronto Raptors"},
	{ID: 1610612762, Abbreviation: "UTA", City: "Utah", Nickname: "Jazz", FullName: "Utah Jazz"},
	{ID: 1610612764, Abbreviation: "WAS", City: "Washington", Nickname: "Wizards", FullName: "Washington Wizards"},
}

// Codes that still show up in older season rows
var historicalTeamNames = map[string]string{
	"NJN": "New Jersey Nets",
	"SEA": "Seattle SuperSonics",
	"NOH": "New Orleans Hornets",
	"NOK": "New Orleans/Oklahoma City Hornets",
	"CHH": "Charlotte Hornets (1988-2002)",
	"VAN": "Vancouver Grizzlies",
	"WSB": "Washington Bullets",
	"SDC": "San Diego Clippers",
	"KCK": "Kansas City Kings",
	"GOS": "Golden State Warriors",
}

// Reverse mappings for lookups
var (
	teamsByAbbreviation = map[string]models.Team{}
	teamsByID           = map[int]models.Team{}
	abbreviationsByName = map[string]string{}
)

func init() {
	for _, t := range nbaTeams {
		teamsByAbbreviation[t.Abbreviation] = t
		teamsByID[t.ID] = t
		abbreviationsByName[t.FullName] = t.Abbreviation
	}
}

// Teams returns a copy of the current franchise directory
func Teams() []models.Team {
	out := make([]models.Team, len(nbaTeams))
	copy(out, nbaTeams)
	return out
}

// TeamByAbbreviation looks up a current franchise, case-insensitively
func TeamByAbbreviation(abbr string) (models.Team, bool) {
	t, ok := teamsByAbbreviation[strings.ToUpper(strings.TrimSpace(abbr))]
	return t, ok
}

// TeamByID looks up a current franchise by stats.nba.com team ID
func TeamByID(id int) (models.Team, bool) {
	t, ok := teamsByID[id]
	return t, ok
}

// GetTeamAbbreviation returns the abbreviation for a full team name
func GetTeamAbbreviation(fullName string) string {
	if abbr, ok := abbreviationsByName[fullName]; ok {
		return abbr
	}
	return fullName // Return original if not found
}

// GetTeamName returns the full name for an abbreviation, including historical codes
func GetTeamName(abbr string) string {
	if t, ok := teamsByAbbreviation[abbr]; ok {
		return t.FullName
	}
	if name, ok := historicalTeamNames[abbr]; ok {
		return name
	}
	return abbr // Return original if not found
}
