package domain

// SchedulePoint is one month of an amortization schedule.
type SchedulePoint struct {
	Month     int     `json:"month"`
	Balance   float64 `json:"balance"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	TotalPaid float64 `json:"totalPaid"`
}

// GrowthPoint is one annual sample of an investment projection.
type GrowthPoint struct {
	Year          int     `json:"year"`
	Balance       float64 `json:"balance"`
	Contributions float64 `json:"contributions"`
	Growth        float64 `json:"growth"`
}

// Projection is a generated data series derived from a calculation,
// suitable for export as a JSON document.
type Projection struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Data  any    `json:"data"`
}
