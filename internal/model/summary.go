package model

// CostSummary is the terminal output of a cost calculation.
// Cost totals are euros; the price fields are euro cents per kWh, matching
// the spot series they were sampled from.
type CostSummary struct {
	TotalCostVariablePrice float64 `json:"total_cost_variable_price"`
	HighestVariablePrice   float64 `json:"highest_variable_price"`
	LowestVariablePrice    float64 `json:"lowest_variable_price"`
	AveragePeakPrice       float64 `json:"average_peak_price"`
	AverageOffPeakPrice    float64 `json:"average_off_peak_price"`
	TotalCostFixedRate     float64 `json:"total_cost_fixed_rate"`
	SavingsWithSpotPrice   float64 `json:"savings_with_spot_price"`
}
