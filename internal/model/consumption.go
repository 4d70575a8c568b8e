package model

// ConsumptionPeriod is a recurring daily usage window with a constant draw,
// active only in the listed months.
// Units:
// - StartTime/StopTime: seconds since midnight, 0..86399
// - KwDraw: kW
// - Months: calendar months 1..12
//
// If StopTime < StartTime the window wraps past midnight.
type ConsumptionPeriod struct {
	StartTime int     `json:"start_time"`
	StopTime  int     `json:"stop_time"`
	KwDraw    float64 `json:"kw_draw"`
	Months    []int   `json:"months"`
}

// ConsumptionEntry is one declared consumer (an appliance or usage pattern)
// with its consumption periods.
type ConsumptionEntry struct {
	Name    string              `json:"name,omitempty"`
	Periods []ConsumptionPeriod `json:"consumption_periods"`
}
