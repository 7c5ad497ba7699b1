package report

import "github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"

// Resolution describes how the row for a season was picked
type Resolution int

const (
	// ResolutionNone: the season has no rows
	ResolutionNone Resolution = iota
	// ResolutionSingle: exactly one row, used directly
	ResolutionSingle
	// ResolutionCombined: the TOT row of a traded player
	ResolutionCombined
	// ResolutionLastRow: several team rows and no TOT row; the last one in
	// provider order is used
	ResolutionLastRow
)

func (r Resolution) String() string {
	switch r {
	case ResolutionSingle:
		return "single"
	case ResolutionCombined:
		return "combined"
	case ResolutionLastRow:
		return "last_row"
	default:
		return "none"
	}
}

// SeasonSelection is the row chosen for one season label
type SeasonSelection struct {
	Row        models.SeasonRow
	Teams      []string // non-TOT team codes, provider order
	Resolution Resolution
}

// Found reports whether the season had any row
func (s SeasonSelection) Found() bool {
	return s.Resolution != ResolutionNone
}

// MultiTeam reports whether the player appeared for more than one team
func (s SeasonSelection) MultiTeam() bool {
	return s.Resolution == ResolutionCombined || s.Resolution == ResolutionLastRow
}

// ResolveSeason picks the row to average for season.
// A TOT row always wins. Without one, a single row is used as is, and
// several rows fall back to the last in encounter order.
func ResolveSeason(rows []models.SeasonRow, season string) SeasonSelection {
	var (
		matched  []models.SeasonRow
		combined *models.SeasonRow
		teams    []string
	)

	for i := range rows {
		if rows[i].Season != season {
			continue
		}
		matched = append(matched, rows[i])
		if rows[i].IsCombined() {
			if combined == nil {
				combined = &rows[i]
			}
			continue
		}
		teams = append(teams, rows[i].TeamAbbr)
	}

	switch {
	case len(matched) == 0:
		return SeasonSelection{Resolution: ResolutionNone}
	case combined != nil:
		return SeasonSelection{Row: *combined, Teams: teams, Resolution: ResolutionCombined}
	case len(matched) == 1:
		return SeasonSelection{Row: matched[0], Teams: teams, Resolution: ResolutionSingle}
	default:
		return SeasonSelection{Row: matched[len(matched)-1], Teams: teams, Resolution: ResolutionLastRow}
	}
}
