package simulate

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/sherbie/spot-risk-assessment/internal/model"
)

// WritePricesCSV dumps a simulated series with its synthetic calendar
// classification, one row per hour.
func WritePricesCSV(path string, prices []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"hour",
		"month",
		"hour_of_day",
		"season",
		"peak",
		"price_cents_kwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for h, price := range prices {
		month := model.MonthForHour(h)
		row := []string{
			strconv.Itoa(h),
			strconv.Itoa(month),
			strconv.Itoa(h % 24),
			string(model.SeasonForMonth(month)),
			strconv.FormatBool(model.IsPeakHour(h % 24)),
			strconv.FormatFloat(price, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
