package dto

import "github.com/shopspring/decimal"

type FacturasPendientes struct {
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// StatsResponse backs the dashboard landing page.
type StatsResponse struct {
	ActiveClients   int64              `json:"activeClients"`
	PendingInvoices FacturasPendientes `json:"pendingInvoices"`
	MonthlyIncome   decimal.Decimal    `json:"monthlyIncome"`
	MonthlyExpenses decimal.Decimal    `json:"monthlyExpenses"`
	RecentActivity  []PagoReciente     `json:"recentActivity"`
}
