package data

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sherbie/spot-risk-assessment/internal/model"
)

// consumptionEntryJSON matches the on-disk consumption file shape.
//
// Example:
// [
//   {
//     "name": "water heater",
//     "consumption_periods": [
//       {"start_time": "22:00:00", "stop_time": "06:00:00", "kw_draw": 3.0, "months": [1, 2, 12]}
//     ]
//   }
// ]
type consumptionEntryJSON struct {
	Name    string                  `json:"name"`
	Periods []consumptionPeriodJSON `json:"consumption_periods"`
}

type consumptionPeriodJSON struct {
	StartTime string  `json:"start_time"`
	StopTime  string  `json:"stop_time"`
	KwDraw    float64 `json:"kw_draw"`
	Months    []int   `json:"months"`
}

func LoadConsumptionJSON(path string) ([]model.ConsumptionEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConsumption(raw)
}

// ParseConsumption converts the raw JSON consumption document into core
// model entries. All time-string parsing and field validation happens here;
// the calculator assumes well-formed input.
func ParseConsumption(raw []byte) ([]model.ConsumptionEntry, error) {
	var doc []consumptionEntryJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("consumption data: %w", err)
	}

	entries := make([]model.ConsumptionEntry, 0, len(doc))
	for i, e := range doc {
		entry := model.ConsumptionEntry{
			Name:    e.Name,
			Periods: make([]model.ConsumptionPeriod, 0, len(e.Periods)),
		}
		for j, p := range e.Periods {
			period, err := convertPeriod(p)
			if err != nil {
				return nil, fmt.Errorf("entry %d period %d: %w", i, j, err)
			}
			entry.Periods = append(entry.Periods, period)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func convertPeriod(p consumptionPeriodJSON) (model.ConsumptionPeriod, error) {
	return NewPeriod(p.StartTime, p.StopTime, p.KwDraw, p.Months)
}

// NewPeriod builds a validated consumption period from boundary-format
// values: clock strings for the window and calendar month numbers.
func NewPeriod(startTime, stopTime string, kwDraw float64, months []int) (model.ConsumptionPeriod, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return model.ConsumptionPeriod{}, fmt.Errorf("start_time: %w", err)
	}
	stop, err := ParseClock(stopTime)
	if err != nil {
		return model.ConsumptionPeriod{}, fmt.Errorf("stop_time: %w", err)
	}
	if kwDraw < 0 {
		return model.ConsumptionPeriod{}, fmt.Errorf("kw_draw must be >= 0, got %v", kwDraw)
	}
	for _, m := range months {
		if m < 1 || m > 12 {
			return model.ConsumptionPeriod{}, fmt.Errorf("month %d out of range 1..12", m)
		}
	}
	return model.ConsumptionPeriod{
		StartTime: start,
		StopTime:  stop,
		KwDraw:    kwDraw,
		Months:    months,
	}, nil
}

// ParseClock converts an "HH:MM:SS" clock string to seconds since midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM:SS", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	sec, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("invalid second in %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*3600 + m*60 + sec, nil
}
