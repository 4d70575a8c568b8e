package simulate

import (
	"math/rand"

	"github.com/sherbie/spot-risk-assessment/internal/model"
)

// Simulator produces synthetic hourly spot price series.
//
// It owns an explicit seeded generator rather than touching the global rand
// state: the same seed and hour count always reproduce the same series, one
// draw per hour in sequence. Do not reseed or share the generator mid-run.
type Simulator struct {
	rng *rand.Rand
}

func New(seed int64) *Simulator {
	return &Simulator{rng: rand.New(rand.NewSource(seed))}
}

// SpotPrices returns one simulated year (or any other span) of hourly spot
// prices in euro cents per kWh. Each price is an independent uniform draw
// from the season/peak range of its synthetic hour; adjacent hours are not
// correlated.
func (s *Simulator) SpotPrices(numHours int) []float64 {
	if numHours < 0 {
		numHours = 0
	}
	prices := make([]float64, 0, numHours)
	for h := 0; h < numHours; h++ {
		season := model.SeasonForMonth(model.MonthForHour(h))
		r := model.SpotRange(season, model.IsPeakHour(h%24))
		prices = append(prices, r.Low+s.rng.Float64()*(r.High-r.Low))
	}
	return prices
}
