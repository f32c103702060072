package models

type DashboardStats struct {
	Flights    int     `json:"flights"`
	Bookings   int     `json:"bookings"`
	Revenue    float64 `json:"revenue"`
	Passengers int     `json:"passengers"`
}

type TrendPoint struct {
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
}

type RouteStat struct {
	Route    string `json:"route"`
	Bookings int    `json:"bookings"`
}

type AirlineStat struct {
	Airline  string `json:"airline"`
	Bookings int    `json:"bookings"`
}

// DashboardView joins /dashboard/stats and /dashboard/bookings_trend
type DashboardView struct {
	Stats DashboardStats `json:"stats"`
	Trend []TrendPoint   `json:"trend"`
}

type AnalyticsView struct {
	Trend    []TrendPoint  `json:"trend"`
	Routes   []RouteStat   `json:"routes"`
	Airlines []AirlineStat `json:"airlines"`
}
