package report

import (
	"fmt"

	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// FormatAwards renders awards as "description (year)", keeping provider order.
// With no awards the result is the single placeholder entry.
func FormatAwards(rows []models.AwardRow, placeholder string) []string {
	if len(rows) == 0 {
		return []string{placeholder}
	}

	awards := make([]string, 0, len(rows))
	for _, a := range rows {
		awards = append(awards, fmt.Sprintf("%s (%s)", a.Description, models.SeasonStartYear(a.Season)))
	}
	return awards
}
