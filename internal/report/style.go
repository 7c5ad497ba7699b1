package report

import "github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"

// Style thresholds, per game
const (
	stylePtsStar       = 25.0
	styleAllAroundAst  = 6.0
	styleAllAroundReb  = 6.0
	stylePlaymakerAst  = 8.0
	stylePlaymakerPts  = 15.0
	styleAnchorReb     = 10.0
	styleAnchorPtsCeil = 15.0
)

// ClassifyStyle labels a season from its points, assists and rebounds per game.
// Rules are evaluated in order; any missing input yields StyleInsufficientData.
func ClassifyStyle(points, assists, rebounds models.Stat) models.StyleLabel {
	pts, ok1 := points.Float64()
	ast, ok2 := assists.Float64()
	reb, ok3 := rebounds.Float64()
	if !ok1 || !ok2 || !ok3 {
		return models.StyleInsufficientData
	}

	switch {
	case pts >= stylePtsStar && ast >= styleAllAroundAst && reb >= styleAllAroundReb:
		return models.StyleEliteAllAround
	case pts >= stylePtsStar:
		return models.StyleVolumeScorer
	case ast >= stylePlaymakerAst && pts >= stylePlaymakerPts:
		return models.StylePlaymaker
	case reb >= styleAnchorReb && pts < styleAnchorPtsCeil:
		return models.StyleReboundingAnchor
	default:
		return models.StyleRolePlayer
	}
}
