package models

import "strings"

// PaymentStatus is the normalized payment state of a transaction. Raw status
// strings arrive from the store in mixed casings and languages; every
// comparison in the codebase goes through NormalizeStatus instead of touching
// the raw string.
type PaymentStatus string

const (
	StatusPaid    PaymentStatus = "paid"
	StatusPending PaymentStatus = "pending"
	StatusOverdue PaymentStatus = "overdue"
	StatusUnknown PaymentStatus = "unknown"
)

var statusSynonyms = map[string]PaymentStatus{
	"pago":       StatusPaid,
	"paga":       StatusPaid,
	"paid":       StatusPaid,
	"quitado":    StatusPaid,
	"pendente":   StatusPending,
	"pending":    StatusPending,
	"em aberto":  StatusPending,
	"aguardando": StatusPending,
	"vencido":    StatusOverdue,
	"atrasado":   StatusOverdue,
	"overdue":    StatusOverdue,
}

// NormalizeStatus maps a raw status string to its PaymentStatus, tolerating
// casing and surrounding whitespace. Unrecognized values normalize to
// StatusUnknown and are treated as unpaid.
func NormalizeStatus(raw string) PaymentStatus {
	if s, ok := statusSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return StatusUnknown
}
