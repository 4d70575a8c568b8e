package model

// Season is the coarse season bucket used by the synthetic price model.
// Keep these values stable; they are intended for CSV and API output.
type Season string

const (
	SeasonWinter Season = "WINTER"
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
	SeasonFall   Season = "FALL"
)

// HoursPerYear is the default length of a simulated price series.
const HoursPerYear = 8760

// HoursPerMonth is the synthetic calendar's month length in hours.
// The simulator and the cost calculator must agree on this value, otherwise
// the calculator indexes the wrong part of the series.
const HoursPerMonth = 730

// DaysPerMonth is the synthetic calendar's month length in days.
const DaysPerMonth = 30

// SeasonForMonth maps a calendar month (1..12) to its season bucket.
// Out-of-range months fall into SeasonFall, matching the price model's
// catch-all branch.
func SeasonForMonth(month int) Season {
	switch month {
	case 12, 1, 2:
		return SeasonWinter
	case 3, 4, 5:
		return SeasonSpring
	case 6, 7, 8:
		return SeasonSummer
	default:
		return SeasonFall
	}
}

// MonthForHour derives the synthetic month (1..12) for an hour index of the
// simulated year.
func MonthForHour(hourIdx int) int {
	return (hourIdx/HoursPerMonth)%12 + 1
}

// IsPeakHour reports whether an hour of day (0..23) falls in a peak demand
// window: 06:00-09:59 or 17:00-20:59, boundary-inclusive.
func IsPeakHour(hourOfDay int) bool {
	return (hourOfDay >= 6 && hourOfDay <= 9) || (hourOfDay >= 17 && hourOfDay <= 20)
}

// PriceRange is a closed uniform sampling range in euro cents per kWh.
type PriceRange struct {
	Low  float64
	High float64
}

// Contains reports whether p falls inside the range, boundary-inclusive.
func (r PriceRange) Contains(p float64) bool {
	return p >= r.Low && p <= r.High
}

// SpotRange returns the uniform sampling range for a season and peak flag.
func SpotRange(season Season, peak bool) PriceRange {
	switch season {
	case SeasonWinter:
		if peak {
			return PriceRange{Low: 8, High: 20}
		}
		return PriceRange{Low: 2, High: 10}
	case SeasonSpring:
		if peak {
			return PriceRange{Low: 5, High: 15}
		}
		return PriceRange{Low: -1, High: 5}
	case SeasonSummer:
		if peak {
			return PriceRange{Low: 4, High: 12}
		}
		return PriceRange{Low: -4, High: 4}
	default:
		if peak {
			return PriceRange{Low: 6, High: 16}
		}
		return PriceRange{Low: 2, High: 6}
	}
}
