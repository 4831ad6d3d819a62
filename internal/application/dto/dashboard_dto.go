package dto

import "github.com/shopspring/decimal"

// MonthlyRevenuePoint ingreso agregado de un mes (serie Ene..Dic).
type MonthlyRevenuePoint struct {
	Month  string          `json:"month"` // "Jan".."Dec"
	Amount decimal.Decimal `json:"amount"`
}

// DashboardStatsDTO resumen financiero del negocio para el panel.
type DashboardStatsDTO struct {
	TotalEarned    decimal.Decimal       `json:"totalEarned"`
	TotalBilled    decimal.Decimal       `json:"totalBilled"`
	PendingAmount  decimal.Decimal       `json:"pendingAmount"`
	PaidCount      int                   `json:"paidCount"`
	PendingCount   int                   `json:"pendingCount"`
	MonthlyRevenue []MonthlyRevenuePoint `json:"monthlyRevenue"`
	Insight        string                `json:"insight"` // texto de la IA, solo display
}
