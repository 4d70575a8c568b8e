package analysis

import (
	"math"
	"sort"

	"github.com/sherbie/spot-risk-assessment/internal/model"
)

// BucketStats summarizes one season x peak slice of a simulated series.
type BucketStats struct {
	Season model.Season
	Peak   bool

	Count int
	Min   float64
	Max   float64
	Mean  float64
	P05   float64
	P95   float64
}

// PriceStats is a whole-series summary plus the per-bucket breakdown.
// Prices are euro cents per kWh throughout.
type PriceStats struct {
	Count int
	Min   float64
	Max   float64
	Mean  float64
	P05   float64
	P95   float64

	Buckets []BucketStats
}

type bucketKey struct {
	season model.Season
	peak   bool
}

// ComputePriceStats classifies every hour of the series with the same
// synthetic calendar the simulator uses and summarizes each bucket.
func ComputePriceStats(prices []float64) PriceStats {
	s := PriceStats{}
	if len(prices) == 0 {
		return s
	}

	byBucket := map[bucketKey][]float64{}
	all := make([]float64, len(prices))
	copy(all, prices)

	for h, price := range prices {
		season := model.SeasonForMonth(model.MonthForHour(h))
		key := bucketKey{season: season, peak: model.IsPeakHour(h % 24)}
		byBucket[key] = append(byBucket[key], price)
	}

	s.Count, s.Min, s.Max, s.Mean, s.P05, s.P95 = summarize(all)

	for _, season := range []model.Season{model.SeasonWinter, model.SeasonSpring, model.SeasonSummer, model.SeasonFall} {
		for _, peak := range []bool{true, false} {
			vals := byBucket[bucketKey{season: season, peak: peak}]
			if len(vals) == 0 {
				continue
			}
			b := BucketStats{Season: season, Peak: peak}
			b.Count, b.Min, b.Max, b.Mean, b.P05, b.P95 = summarize(vals)
			s.Buckets = append(s.Buckets, b)
		}
	}
	return s
}

// summarize sorts vals in place.
func summarize(vals []float64) (count int, minV, maxV, mean, p05, p95 float64) {
	count = len(vals)
	if count == 0 {
		return
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	sort.Float64s(vals)
	minV = vals[0]
	maxV = vals[count-1]
	mean = sum / float64(count)
	p05 = percentileSorted(vals, 0.05)
	p95 = percentileSorted(vals, 0.95)
	return
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
