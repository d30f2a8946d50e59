package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patient holds the subset of the patient record the financial core reads.
type Patient struct {
	ID              string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FullName        string          `json:"full_name" gorm:"not null" validate:"required"`
	Status          PatientStatus   `json:"status" gorm:"not null;default:'em avaliacao';index;type:varchar(20)"`
	NegotiatedValue decimal.Decimal `json:"negotiated_value" gorm:"type:decimal(10,2);default:0"`
	FinancialSource Source          `json:"financial_source" gorm:"type:varchar(20);default:'particular'"`
	CreatedAt       time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}
