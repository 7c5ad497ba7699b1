package report

import (
	"math"
	"strconv"

	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// Trend thresholds, in points per game and field-goal percentage points
const (
	trendScoringJump   = 3.0
	trendEfficientDrop = -1.0
	trendWastefulDrop  = -3.0
	trendFlatScoring   = 1.0
	trendEfficiencyGap = 1.0
	trendScoringDrop   = -3.0
)

// Trend holds the season-minus-career deltas and their classification
type Trend struct {
	Status     models.TrendStatus
	DeltaPts   models.Stat
	DeltaReb   models.Stat
	DeltaAst   models.Stat
	DeltaFGPct models.Stat
}

// NoTrend is the trend of a report without season or career data
var NoTrend = Trend{Status: models.TrendNoData}

// ClassifyTrend applies the trend rules in order; the first match wins.
func ClassifyTrend(deltaPts, deltaFGPct float64) models.TrendStatus {
	switch {
	case deltaPts >= trendScoringJump && deltaFGPct >= trendEfficientDrop:
		return models.TrendAscending
	case deltaPts >= trendScoringJump && deltaFGPct < trendWastefulDrop:
		return models.TrendInefficientVolume
	case math.Abs(deltaPts) < trendFlatScoring && deltaFGPct >= trendEfficiencyGap:
		return models.TrendEfficiencySpike
	case deltaPts < trendScoringDrop:
		return models.TrendDecline
	default:
		return models.TrendFluctuating
	}
}

// AnalyzeTrend compares season averages to career averages. Deltas are
// rounded to one decimal before classification, so 28.3 - 25.3 is exactly 3.0.
func AnalyzeTrend(season Averages, career CareerAverages) Trend {
	dPts, ok1 := delta(season.Points, career.Points)
	dReb, ok2 := delta(season.Rebounds, career.Rebounds)
	dAst, ok3 := delta(season.Assists, career.Assists)
	dFG, ok4 := delta(season.FGPct, career.FGPct)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return NoTrend
	}

	return Trend{
		Status:     ClassifyTrend(dPts, dFG),
		DeltaPts:   models.Value(dPts),
		DeltaReb:   models.Value(dReb),
		DeltaAst:   models.Value(dAst),
		DeltaFGPct: models.Value(dFG),
	}
}

// FormatDelta renders a delta with one decimal, a leading "+" when positive
// and the given suffix ("%" for field-goal percentage).
func FormatDelta(d models.Stat, suffix string) string {
	v, ok := d.Float64()
	if !ok {
		return models.NotAvailable
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}

	s := strconv.FormatFloat(v, 'f', 1, 64)
	if v > 0 {
		s = "+" + s
	}
	return s + suffix
}

func delta(season, career models.Stat) (float64, bool) {
	s, ok := season.Float64()
	if !ok {
		return 0, false
	}
	c, ok := career.Float64()
	if !ok {
		return 0, false
	}
	return Round(s-c, 1), true
}
