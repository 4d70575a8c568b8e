package models

// EstimateRequest represents the request body for a cost estimate
type EstimateRequest struct {
	Seed          *int64             `json:"seed" binding:"required"` // simulator seed
	Hours         int                `json:"hours,omitempty"`         // default: 8760
	FixedRate     float64            `json:"fixed_rate,omitempty"`    // cents/kWh; 0 = not supplied
	FixedTotal    float64            `json:"fixed_total,omitempty"`   // euros; 0 = not supplied
	TransferPrice float64            `json:"transfer_price"`          // cents/kWh
	Consumption   []ConsumptionEntry `json:"consumption" binding:"required"`
}

// ConsumptionEntry mirrors the consumption file shape, inline in the request
type ConsumptionEntry struct {
	Name    string              `json:"name,omitempty"`
	Periods []ConsumptionPeriod `json:"consumption_periods" binding:"required"`
}

// ConsumptionPeriod carries the window as HH:MM:SS clock strings
type ConsumptionPeriod struct {
	StartTime string  `json:"start_time" binding:"required"`
	StopTime  string  `json:"stop_time" binding:"required"`
	KwDraw    float64 `json:"kw_draw"`
	Months    []int   `json:"months" binding:"required"`
}

// RankRequest represents a request to rank consumers by annual spot cost
type RankRequest struct {
	Seed          *int64             `json:"seed" binding:"required"`
	Hours         int                `json:"hours,omitempty"`
	TransferPrice float64            `json:"transfer_price"`
	Consumption   []ConsumptionEntry `json:"consumption" binding:"required"`
}

// PricesRequest represents a request for a simulated price series
type PricesRequest struct {
	Seed  *int64 `form:"seed" binding:"required"`
	Hours int    `form:"hours"`
	Limit int    `form:"limit"` // 0 = all
}

// StatsRequest represents a request for price series statistics
type StatsRequest struct {
	Seed  *int64 `form:"seed" binding:"required"`
	Hours int    `form:"hours"`
}
