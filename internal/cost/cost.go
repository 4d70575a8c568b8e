package cost

import (
	"errors"

	"github.com/sherbie/spot-risk-assessment/internal/model"
)

var (
	// ErrNoFixedBaseline means neither a fixed per-kWh rate nor a fixed
	// annual total was supplied, so there is nothing to compare spot
	// pricing against.
	ErrNoFixedBaseline = errors.New("either fixed_rate or fixed_total must be provided")

	// ErrNoPrices means the spot price series is empty.
	ErrNoPrices = errors.New("spot price series is empty")
)

// Params configures a cost calculation.
// Units:
// - FixedRate: euro cents per kWh; 0 means not supplied
// - FixedTotal: euros per year; 0 means not supplied
// - TransferPrice: euro cents per kWh, added to every kWh on both schemes
//
// Exactly one of FixedRate/FixedTotal drives the fixed-cost baseline. A
// non-zero FixedTotal takes precedence and suppresses per-period fixed-cost
// accrual.
type Params struct {
	FixedRate     float64
	FixedTotal    float64
	TransferPrice float64
}

// Calculate walks every declared consumption period over the synthetic year,
// accumulates variable and fixed costs plus peak/off-peak price samples, and
// returns the summary. spotPrices is read-only and indexed by the synthetic
// hour (month-1)*730 + day*24 + hour; indexes past the end of the series
// truncate that period's iteration rather than erroring.
//
// Accumulation is done in cent units and converted to euros once at the end.
func Calculate(entries []model.ConsumptionEntry, spotPrices []float64, p Params) (*model.CostSummary, error) {
	if p.FixedRate == 0 && p.FixedTotal == 0 {
		return nil, ErrNoFixedBaseline
	}
	if len(spotPrices) == 0 {
		return nil, ErrNoPrices
	}

	useFixedTotal := p.FixedTotal != 0

	variableCents := 0.0
	fixedCents := 0.0
	if useFixedTotal {
		fixedCents = p.FixedTotal * 100
	}

	var peakSum, offPeakSum float64
	var peakCount, offPeakCount int

	for _, entry := range entries {
		for _, period := range entry.Periods {
			start := period.StartTime
			stop := period.StopTime
			for _, month := range period.Months {
				for day := 0; day < model.DaysPerMonth; day++ {
					for hour := 0; hour < 24; hour++ {
						hourIdx := (month-1)*model.HoursPerMonth + day*24 + hour
						if hourIdx >= len(spotPrices) {
							break
						}
						// currentHour is an hour count while the window bounds
						// are seconds since midnight. Kept as-is: reported
						// totals depend on this arithmetic (DESIGN.md).
						currentHour := start/3600 + hour
						active := (start <= currentHour && currentHour < stop) ||
							(stop < start && (currentHour < stop || currentHour >= start))
						if !active {
							continue
						}
						spotPrice := spotPrices[hourIdx]
						if model.IsPeakHour(currentHour % 24) {
							peakSum += spotPrice
							peakCount++
						} else {
							offPeakSum += spotPrice
							offPeakCount++
						}
						variableCents += (spotPrice + p.TransferPrice) * period.KwDraw
						if !useFixedTotal {
							fixedCents += (p.FixedRate + p.TransferPrice) * period.KwDraw
						}
					}
				}
			}
		}
	}

	highest := spotPrices[0]
	lowest := spotPrices[0]
	for _, price := range spotPrices[1:] {
		if price > highest {
			highest = price
		}
		if price < lowest {
			lowest = price
		}
	}

	averagePeak := 0.0
	if peakCount > 0 {
		averagePeak = peakSum / float64(peakCount)
	}
	averageOffPeak := 0.0
	if offPeakCount > 0 {
		averageOffPeak = offPeakSum / float64(offPeakCount)
	}

	variableEuros := variableCents / 100
	fixedEuros := fixedCents / 100

	return &model.CostSummary{
		TotalCostVariablePrice: variableEuros,
		HighestVariablePrice:   highest,
		LowestVariablePrice:    lowest,
		AveragePeakPrice:       averagePeak,
		AverageOffPeakPrice:    averageOffPeak,
		TotalCostFixedRate:     fixedEuros,
		SavingsWithSpotPrice:   fixedEuros - variableEuros,
	}, nil
}
