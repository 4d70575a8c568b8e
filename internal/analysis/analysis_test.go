package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherbie/spot-risk-assessment/internal/model"
)

func flatPrices(n int, price float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = price
	}
	return prices
}

func TestComputePriceStatsEmpty(t *testing.T) {
	s := ComputePriceStats(nil)
	assert.Zero(t, s.Count)
	assert.Empty(t, s.Buckets)
}

func TestComputePriceStatsConstantSeries(t *testing.T) {
	s := ComputePriceStats(flatPrices(model.HoursPerYear, 3.5))

	assert.Equal(t, model.HoursPerYear, s.Count)
	assert.Equal(t, 3.5, s.Min)
	assert.Equal(t, 3.5, s.Max)
	assert.Equal(t, 3.5, s.Mean)
	assert.Equal(t, 3.5, s.P05)
	assert.Equal(t, 3.5, s.P95)

	// Four seasons x peak/off-peak, all represented in a full year.
	require.Len(t, s.Buckets, 8)
	total := 0
	for _, b := range s.Buckets {
		assert.Equal(t, 3.5, b.Min, "%s peak=%v", b.Season, b.Peak)
		assert.Equal(t, 3.5, b.Max, "%s peak=%v", b.Season, b.Peak)
		assert.Positive(t, b.Count)
		total += b.Count
	}
	assert.Equal(t, model.HoursPerYear, total)
}

func TestComputePriceStatsOrdering(t *testing.T) {
	// Seven winter hours: 0-5 off-peak, hour 6 peak.
	s := ComputePriceStats([]float64{1, 2, 3, 4, 5, 6, 9})

	assert.Equal(t, 7, s.Count)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	require.Len(t, s.Buckets, 2)
	// Peak buckets sort before off-peak within a season.
	assert.Equal(t, model.SeasonWinter, s.Buckets[0].Season)
	assert.True(t, s.Buckets[0].Peak)
	assert.Equal(t, 1, s.Buckets[0].Count)
	assert.Equal(t, 9.0, s.Buckets[0].Min)
	assert.False(t, s.Buckets[1].Peak)
	assert.Equal(t, 6, s.Buckets[1].Count)
}

func TestRankEntriesByCost(t *testing.T) {
	entries := []model.ConsumptionEntry{
		{
			Name: "idle appliance",
			Periods: []model.ConsumptionPeriod{{
				StartTime: 21600, // 06:00:00, never activates under the hour/second windowing
				StopTime:  32400,
				KwDraw:    10,
				Months:    []int{1},
			}},
		},
		{
			Name: "night heater",
			Periods: []model.ConsumptionPeriod{{
				StartTime: 0,
				StopTime:  28800,
				KwDraw:    1,
				Months:    []int{1},
			}},
		},
	}
	prices := flatPrices(model.HoursPerYear, 1)

	ranked := RankEntriesByCost(entries, prices, 0)
	require.Len(t, ranked, 2)

	assert.Equal(t, "night heater", ranked[0].Name)
	assert.Equal(t, 720, ranked[0].ActiveHours)
	assert.Equal(t, 240, ranked[0].PeakHours)
	assert.Equal(t, 480, ranked[0].OffPeakHours)
	assert.InDelta(t, 7.2, ranked[0].VariableCost, 1e-9)

	assert.Equal(t, "idle appliance", ranked[1].Name)
	assert.Zero(t, ranked[1].ActiveHours)
	assert.Zero(t, ranked[1].VariableCost)
}

func TestRankEntriesByCostTieBreaksOnName(t *testing.T) {
	entries := []model.ConsumptionEntry{
		{Name: "b"},
		{Name: "a"},
	}
	ranked := RankEntriesByCost(entries, flatPrices(24, 1), 0)
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].Name)
	assert.Equal(t, "b", ranked[1].Name)
}
