package analysis

import (
	"sort"

	"github.com/sherbie/spot-risk-assessment/internal/model"
)

// EntryCost is a per-consumer cost summary used for ranking which declared
// consumers drive the annual spot bill.
type EntryCost struct {
	Name string

	ActiveHours  int
	PeakHours    int
	OffPeakHours int

	// VariableCost is the annual spot cost in euros, transfer surcharge
	// included.
	VariableCost float64
}

// RankEntriesByCost computes each entry's annual spot cost with the same
// windowing arithmetic the cost calculator uses and returns entries sorted
// most expensive first. transferPrice is euro cents per kWh.
func RankEntriesByCost(entries []model.ConsumptionEntry, spotPrices []float64, transferPrice float64) []EntryCost {
	out := make([]EntryCost, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entryCost(entry, spotPrices, transferPrice))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].VariableCost != out[j].VariableCost {
			return out[i].VariableCost > out[j].VariableCost
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func entryCost(entry model.ConsumptionEntry, spotPrices []float64, transferPrice float64) EntryCost {
	ec := EntryCost{Name: entry.Name}
	cents := 0.0
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
					currentHour := start/3600 + hour
					active := (start <= currentHour && currentHour < stop) ||
						(stop < start && (currentHour < stop || currentHour >= start))
					if !active {
						continue
					}
					ec.ActiveHours++
					if model.IsPeakHour(currentHour % 24) {
						ec.PeakHours++
					} else {
						ec.OffPeakHours++
					}
					cents += (spotPrices[hourIdx] + transferPrice) * period.KwDraw
				}
			}
		}
	}
	ec.VariableCost = cents / 100
	return ec
}
