package entities

type ServiceRank struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type BarberRank struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type DailyRevenue struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type HourCount struct {
	Hour  string `json:"hour"`
	Count int    `json:"count"`
}

type DashboardStats struct {
	TodayRevenue      float64        `json:"todayRevenue"`
	MonthRevenue      float64        `json:"monthRevenue"`
	TodayAppointments int            `json:"todayAppointments"`
	CompletedToday    int            `json:"completedToday"`
	CancellationRate  float64        `json:"cancellationRate"`
	TopServices       []ServiceRank  `json:"topServices"`
	TopBarbers        []BarberRank   `json:"topBarbers"`
	RevenueByDay      []DailyRevenue `json:"revenueByDay"`
	PeakHours         []HourCount    `json:"peakHours"`
	TotalClients      int64          `json:"totalClients"`
}
