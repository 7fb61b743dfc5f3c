package entity

// DashboardCounts conteos agregados para el dashboard.
type DashboardCounts struct {
	TotalPicos       int
	TotalPaletizados int
	AltaRotacao      int
	BaixaRotacao     int
}
