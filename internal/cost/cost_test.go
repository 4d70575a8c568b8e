package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sherbie/spot-risk-assessment/internal/model"
	"github.com/sherbie/spot-risk-assessment/internal/simulate"
)

func flatPrices(n int, price float64) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = price
	}
	return prices
}

func TestCalculateRequiresFixedBaseline(t *testing.T) {
	summary, err := Calculate(nil, flatPrices(10, 1), Params{TransferPrice: 5})
	assert.ErrorIs(t, err, ErrNoFixedBaseline)
	assert.Nil(t, summary)
}

func TestCalculateRequiresPrices(t *testing.T) {
	summary, err := Calculate(nil, nil, Params{FixedRate: 20, TransferPrice: 5})
	assert.ErrorIs(t, err, ErrNoPrices)
	assert.Nil(t, summary)
}

func TestCalculateEmptyConsumption(t *testing.T) {
	prices := []float64{5, -3, 7}

	t.Run("fixed rate baseline", func(t *testing.T) {
		summary, err := Calculate(nil, prices, Params{FixedRate: 20, TransferPrice: 5})
		require.NoError(t, err)
		assert.Zero(t, summary.TotalCostVariablePrice)
		assert.Zero(t, summary.TotalCostFixedRate)
		assert.Zero(t, summary.SavingsWithSpotPrice)
		assert.Zero(t, summary.AveragePeakPrice)
		assert.Zero(t, summary.AverageOffPeakPrice)
		// Extremes always cover the whole series, consumed or not.
		assert.Equal(t, 7.0, summary.HighestVariablePrice)
		assert.Equal(t, -3.0, summary.LowestVariablePrice)
	})

	t.Run("fixed total baseline", func(t *testing.T) {
		summary, err := Calculate(nil, prices, Params{FixedTotal: 1200, TransferPrice: 5})
		require.NoError(t, err)
		assert.Zero(t, summary.TotalCostVariablePrice)
		assert.Equal(t, 1200.0, summary.TotalCostFixedRate)
		assert.Equal(t, 1200.0, summary.SavingsWithSpotPrice)
	})
}

func TestCalculateMidnightAnchoredWindow(t *testing.T) {
	// A window starting at 00:00:00 is the one case where the reference
	// windowing arithmetic activates hours: every iterated hour below the
	// stop second counts.
	entries := []model.ConsumptionEntry{{
		Name: "heater",
		Periods: []model.ConsumptionPeriod{{
			StartTime: 0,
			StopTime:  28800, // 08:00:00
			KwDraw:    2,
			Months:    []int{1},
		}},
	}}
	prices := flatPrices(model.HoursPerYear, 1)

	summary, err := Calculate(entries, prices, Params{FixedRate: 3, TransferPrice: 1})
	require.NoError(t, err)

	// 30 days x 24 iterated hours, all active.
	assert.InDelta(t, 720*(1+1)*2/100.0, summary.TotalCostVariablePrice, 1e-9)
	assert.InDelta(t, 720*(3+1)*2/100.0, summary.TotalCostFixedRate, 1e-9)
	assert.Equal(t, summary.TotalCostFixedRate-summary.TotalCostVariablePrice, summary.SavingsWithSpotPrice)
	assert.Equal(t, 1.0, summary.AveragePeakPrice)
	assert.Equal(t, 1.0, summary.AverageOffPeakPrice)
}

func TestCalculateFixedTotalPrecedence(t *testing.T) {
	entries := []model.ConsumptionEntry{{
		Periods: []model.ConsumptionPeriod{{
			StartTime: 0,
			StopTime:  28800,
			KwDraw:    2,
			Months:    []int{1},
		}},
	}}
	prices := flatPrices(model.HoursPerYear, 1)

	summary, err := Calculate(entries, prices, Params{FixedRate: 3, FixedTotal: 500, TransferPrice: 1})
	require.NoError(t, err)

	// FixedTotal suppresses per-period accrual entirely.
	assert.Equal(t, 500.0, summary.TotalCostFixedRate)
	assert.Positive(t, summary.TotalCostVariablePrice)
	assert.Equal(t, summary.TotalCostFixedRate-summary.TotalCostVariablePrice, summary.SavingsWithSpotPrice)
}

func TestCalculateNonMidnightWindowNeverActivates(t *testing.T) {
	// With a non-wrapping window the hour counter never reaches the
	// second-resolution start bound, so nothing accrues. Deliberate; see
	// DESIGN.md.
	entries := []model.ConsumptionEntry{{
		Periods: []model.ConsumptionPeriod{{
			StartTime: 21600, // 06:00:00
			StopTime:  32400, // 09:00:00
			KwDraw:    1,
			Months:    []int{1},
		}},
	}}
	prices := flatPrices(model.HoursPerYear, 10)

	summary, err := Calculate(entries, prices, Params{FixedRate: 20, TransferPrice: 5})
	require.NoError(t, err)
	assert.Zero(t, summary.TotalCostVariablePrice)
	assert.Zero(t, summary.TotalCostFixedRate)
	assert.Zero(t, summary.AveragePeakPrice)
	assert.Zero(t, summary.AverageOffPeakPrice)
}

func TestCalculateWrappingWindow(t *testing.T) {
	// stop < start takes the wrap branch; the hour counter always sits below
	// the stop second, so every iterated hour is active.
	entries := []model.ConsumptionEntry{{
		Periods: []model.ConsumptionPeriod{{
			StartTime: 82800, // 23:00:00
			StopTime:  3600,  // 01:00:00
			KwDraw:    1,
			Months:    []int{2},
		}},
	}}
	prices := flatPrices(model.HoursPerYear, 4)

	summary, err := Calculate(entries, prices, Params{FixedRate: 6, TransferPrice: 2})
	require.NoError(t, err)
	assert.InDelta(t, 720*(4+2)*1/100.0, summary.TotalCostVariablePrice, 1e-9)
}

func TestCalculateTruncatesAtSeriesEnd(t *testing.T) {
	entries := []model.ConsumptionEntry{{
		Periods: []model.ConsumptionPeriod{{
			StartTime: 0,
			StopTime:  86399,
			KwDraw:    1,
			Months:    []int{1},
		}},
	}}
	// Only ten hours of prices: iteration stops there instead of erroring.
	prices := flatPrices(10, 2)

	summary, err := Calculate(entries, prices, Params{FixedRate: 1, TransferPrice: 0})
	require.NoError(t, err)
	assert.InDelta(t, 10*2/100.0, summary.TotalCostVariablePrice, 1e-9)
	assert.InDelta(t, 10*1/100.0, summary.TotalCostFixedRate, 1e-9)
	// Hours 0..9 contain the 06-09 peak block.
	assert.Equal(t, 2.0, summary.AveragePeakPrice)
	assert.Equal(t, 2.0, summary.AverageOffPeakPrice)
}

func TestCalculateDeterministicWithSimulatedSeries(t *testing.T) {
	entries := []model.ConsumptionEntry{{
		Name: "morning heating",
		Periods: []model.ConsumptionPeriod{{
			StartTime: 21600, // 06:00:00
			StopTime:  32400, // 09:00:00
			KwDraw:    1,
			Months:    []int{1},
		}},
	}}
	params := Params{FixedRate: 20, TransferPrice: 5}

	prices := simulate.New(42).SpotPrices(model.HoursPerYear)

	first, err := Calculate(entries, prices, params)
	require.NoError(t, err)
	second, err := Calculate(entries, simulate.New(42).SpotPrices(model.HoursPerYear), params)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	highest, lowest := prices[0], prices[0]
	for _, p := range prices {
		if p > highest {
			highest = p
		}
		if p < lowest {
			lowest = p
		}
	}
	assert.Equal(t, highest, first.HighestVariablePrice)
	assert.Equal(t, lowest, first.LowestVariablePrice)
	assert.Equal(t, first.TotalCostFixedRate-first.TotalCostVariablePrice, first.SavingsWithSpotPrice)
}
