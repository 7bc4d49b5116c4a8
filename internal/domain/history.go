package domain

import "time"

// HistoryRecord is one recorded calculation. IDs are assigned by the
// history service, never by the caller, and increase monotonically within
// a session. Inputs and Results are snapshots of the exact values used;
// CalculatorName is denormalized and never re-derived from the catalog.
type HistoryRecord struct {
	ID             int       `json:"Id"`
	CalculatorID   string    `json:"calculatorId"`
	CalculatorName string    `json:"calculatorName"`
	Inputs         Inputs    `json:"inputs"`
	Results        Results   `json:"results"`
	Timestamp      time.Time `json:"timestamp"`
}

// HistoryPatch carries a partial update for a history record.
// Nil pointer fields (and nil maps) are left untouched.
type HistoryPatch struct {
	CalculatorID   *string
	CalculatorName *string
	Inputs         Inputs
	Results        Results
	Timestamp      *time.Time
}
