package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a billing record. Amount is always positive; the
// direction of the movement is encoded by Flow, never by sign.
type Transaction struct {
	ID          string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"omitempty,uuid"`
	Description string          `json:"description" gorm:"not null" validate:"required"`
	Amount      decimal.Decimal `json:"amount" gorm:"not null;type:decimal(10,2)" validate:"required"`
	Flow        Flow            `json:"flow" gorm:"not null;index;type:varchar(10)" validate:"required,oneof=income expense"`
	Category    string          `json:"category,omitempty" gorm:"type:varchar(50)"`
	Type        string          `json:"type,omitempty" gorm:"type:varchar(50)"`
	Source      Source          `json:"source" gorm:"not null;default:'particular';type:varchar(20)" validate:"omitempty,oneof=particular convenio"`
	Status      string          `json:"status" gorm:"not null;default:'pendente';index;type:varchar(20)"`
	DueDate     time.Time       `json:"due_date" gorm:"not null;index;type:date" validate:"required"`
	PaymentDate *time.Time      `json:"payment_date,omitempty" gorm:"index"`
	PatientID   *string         `json:"patient_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty" gorm:"index"`

	Patient *Patient `json:"patient,omitempty" gorm:"foreignKey:PatientID;references:ID"`
}

// IsPaid reports whether the transaction's raw status denotes a settled payment.
func (t *Transaction) IsPaid() bool {
	return NormalizeStatus(t.Status) == StatusPaid
}
