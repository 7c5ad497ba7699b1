package report

import (
	"strings"

	"github.com/XavierBriggs/fortuna/services/player-report-service/internal/sports/basketball_nba"
)

// ResolvePositions returns the ordered precise positions a coarse code implies.
// ok is false for codes missing from table, in which case the code itself is returned.
func ResolvePositions(code string, table basketball_nba.PositionMap) (positions []string, ok bool) {
	implied, ok := table[code]
	if !ok {
		return []string{code}, false
	}
	positions = make([]string, len(implied))
	copy(positions, implied)
	return positions, true
}

// DisplayPositions renders the precise positions of code as "PG, SG".
// With a locale, each precise code (or an unrecognized coarse code) goes
// through the locale's display tables.
func DisplayPositions(code string, table basketball_nba.PositionMap, locale *basketball_nba.Locale) string {
	positions, ok := ResolvePositions(code, table)
	if !ok {
		if locale == nil {
			return code
		}
		return locale.Translate(locale.CoarsePositions, code)
	}

	if locale != nil {
		for i, p := range positions {
			positions[i] = locale.Translate(locale.PrecisePositions, p)
		}
	}
	return strings.Join(positions, ", ")
}
