package models

import "github.com/shopspring/decimal"

// ComplianceRecord is a transaction together with its derived delinquency
// classification. Never persisted, recomputed on every read.
type ComplianceRecord struct {
	Transaction
	ComplianceStatus ComplianceStatus `json:"compliance_status"`
}

// DelinquencyStats aggregates the currently overdue income transactions.
type DelinquencyStats struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OldestDays  int             `json:"oldest_days"`
}

// Efficiency groups the capacity-related figures of a metrics snapshot.
type Efficiency struct {
	AvgTicket             decimal.Decimal `json:"avg_ticket"`
	OccupancyRate         float64         `json:"occupancy_rate"`
	TotalCapacityHours    float64         `json:"total_capacity_hours"`
	OccupiedSessionCount  int             `json:"occupied_session_count"`
	CompletedSessionCount int             `json:"completed_session_count"`
}

// MetricsSnapshot is the combined financial picture for a period. Derived,
// never persisted.
type MetricsSnapshot struct {
	NetBalance    decimal.Decimal `json:"net_balance"`
	Income        decimal.Decimal `json:"income"`
	Expenses      decimal.Decimal `json:"expenses"`
	Forecast      decimal.Decimal `json:"forecast"`
	DefaultTotal  decimal.Decimal `json:"default_total"`
	IncomeDelta   float64         `json:"income_delta"`
	ExpensesDelta float64         `json:"expenses_delta"`
	Efficiency    Efficiency      `json:"efficiency"`
}
