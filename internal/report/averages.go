package report

import (
	"strconv"

	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// Averages are the per-game figures of one season row
type Averages struct {
	GamesPlayed int
	Points      models.Stat
	Rebounds    models.Stat
	Assists     models.Stat
	Steals      models.Stat
	Blocks      models.Stat
	Turnovers   models.Stat
	Minutes     models.Stat
	FTAPerGame  models.Stat
	FGPct       models.Stat // percent, 51.2
	FTPct       models.Stat
	AstToTov    models.Stat
}

// HasData reports whether the averages come from at least one game
func (a Averages) HasData() bool {
	return a.GamesPlayed > 0
}

// CareerAverages are the career figures the trend compares against
type CareerAverages struct {
	Points   models.Stat
	Rebounds models.Stat
	Assists  models.Stat
	FGPct    models.Stat
}

// Average divides every count of row by its games played (1 decimal) and
// scales the percentage fractions to percent (1 decimal). A row with no games
// yields all sentinels.
func Average(row models.SeasonRow) Averages {
	if row.GamesPlayed <= 0 {
		return Averages{}
	}

	gp := float64(row.GamesPlayed)
	avg := Averages{
		GamesPlayed: row.GamesPlayed,
		Points:      perGame(row.Points, gp),
		Rebounds:    perGame(row.Rebounds, gp),
		Assists:     perGame(row.Assists, gp),
		Steals:      perGame(row.Steals, gp),
		Blocks:      perGame(row.Blocks, gp),
		Turnovers:   perGame(row.Turnovers, gp),
		Minutes:     perGame(row.Minutes, gp),
		FTAPerGame:  perGame(row.FTAttempts, gp),
		FGPct:       percent(row.FGPct),
		FTPct:       percent(row.FTPct),
	}
	avg.AstToTov = Ratio(avg.Assists, avg.Turnovers)

	return avg
}

// Career computes career averages the same way Average does.
// Missing totals or zero career games yield all sentinels.
func Career(totals *models.CareerTotals) CareerAverages {
	if totals == nil || totals.GamesPlayed <= 0 {
		return CareerAverages{}
	}

	gp := float64(totals.GamesPlayed)
	return CareerAverages{
		Points:   perGame(totals.Points, gp),
		Rebounds: perGame(totals.Rebounds, gp),
		Assists:  perGame(totals.Assists, gp),
		FGPct:    percent(totals.FGPct),
	}
}

// Ratio divides assists by turnovers (2 decimals); zero turnovers yield the sentinel
func Ratio(assists, turnovers models.Stat) models.Stat {
	ast, ok := assists.Float64()
	if !ok {
		return models.NoData
	}
	tov, ok := turnovers.Float64()
	if !ok || tov == 0 {
		return models.NoData
	}
	return models.Value(Round(ast/tov, 2))
}

// Round rounds the exact binary value of v to decimals places, ties to even
func Round(v float64, decimals int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}

func perGame(total, gamesPlayed float64) models.Stat {
	return models.Value(Round(total/gamesPlayed, 1))
}

func percent(fraction float64) models.Stat {
	return models.Value(Round(fraction*100, 1))
}
