package dto

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
type DashboardStatsDTO struct {
	TotalPicos       int `json:"totalPicos"`
	TotalPaletizados int `json:"totalPaletizados"`
	AltaRotacao      int `json:"altaRotacao"`
	BaixaRotacao     int `json:"baixaRotacao"`

	// Últimos 5 registros de cada tipo, más recientes primero
	RecentEntries []ActivityLogResponse `json:"recentEntries"`
	RecentExits   []ActivityLogResponse `json:"recentExits"`
}
