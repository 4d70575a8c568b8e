package models

import "github.com/sherbie/spot-risk-assessment/internal/model"

// ErrorResponse is the error envelope returned by every endpoint
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// EstimateResponse wraps the cost summary with the run parameters that
// produced it
type EstimateResponse struct {
	Seed    int64             `json:"seed"`
	Hours   int               `json:"hours"`
	Summary model.CostSummary `json:"summary"`
}

// PricePoint is one simulated hour with its synthetic calendar classification
type PricePoint struct {
	Hour   int     `json:"hour"`
	Month  int     `json:"month"`
	Season string  `json:"season"`
	Peak   bool    `json:"peak"`
	Price  float64 `json:"price"` // cents/kWh
}

// PricesResponse carries a (possibly truncated) simulated series
type PricesResponse struct {
	Seed   int64        `json:"seed"`
	Hours  int          `json:"hours"` // full series length, pre-truncation
	Prices []PricePoint `json:"prices"`
}

// BucketStats summarizes one season x peak slice of the series
type BucketStats struct {
	Season string  `json:"season"`
	Peak   bool    `json:"peak"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	P05    float64 `json:"p05"`
	P95    float64 `json:"p95"`
}

// StatsResponse summarizes a simulated series
type StatsResponse struct {
	Seed    int64         `json:"seed"`
	Hours   int           `json:"hours"`
	Count   int           `json:"count"`
	Min     float64       `json:"min"`
	Max     float64       `json:"max"`
	Mean    float64       `json:"mean"`
	P05     float64       `json:"p05"`
	P95     float64       `json:"p95"`
	Buckets []BucketStats `json:"buckets"`
}

// Ranking is one consumer in a rank response
type Ranking struct {
	Rank         int     `json:"rank"`
	Name         string  `json:"name"`
	ActiveHours  int     `json:"active_hours"`
	PeakHours    int     `json:"peak_hours"`
	OffPeakHours int     `json:"off_peak_hours"`
	VariableCost float64 `json:"variable_cost"` // euros, transfer included
}

// RankResponse contains consumers ranked most expensive first
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}
