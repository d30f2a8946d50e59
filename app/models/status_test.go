package models

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want PaymentStatus
	}{
		{name: "portuguese paid", raw: "pago", want: StatusPaid},
		{name: "uppercase paid", raw: "PAID", want: StatusPaid},
		{name: "mixed case portuguese", raw: "Pago", want: StatusPaid},
		{name: "feminine form", raw: "paga", want: StatusPaid},
		{name: "settled", raw: "quitado", want: StatusPaid},
		{name: "portuguese pending", raw: "pendente", want: StatusPending},
		{name: "uppercase pending", raw: "PENDENTE", want: StatusPending},
		{name: "english pending", raw: "pending", want: StatusPending},
		{name: "open", raw: "em aberto", want: StatusPending},
		{name: "portuguese overdue", raw: "vencido", want: StatusOverdue},
		{name: "late", raw: "atrasado", want: StatusOverdue},
		{name: "surrounding whitespace", raw: "  pago  ", want: StatusPaid},
		{name: "unrecognized", raw: "cancelado", want: StatusUnknown},
		{name: "empty", raw: "", want: StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeStatus(tt.raw); got != tt.want {
				t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

// IsPaid is the single source of the paid decision, including the one the
// update statement stamps payment_date from, so it has to absorb the same
// whitespace and casing variants the normalization does.
func TestTransactionIsPaid(t *testing.T) {
	paid := []string{"pago", " pago ", "PAID", "Quitado", "paga"}
	for _, s := range paid {
		if !(&Transaction{Status: s}).IsPaid() {
			t.Errorf("IsPaid() = false for status %q, want true", s)
		}
	}

	unpaid := []string{"pendente", " pendente ", "vencido", "cancelado", ""}
	for _, s := range unpaid {
		if (&Transaction{Status: s}).IsPaid() {
			t.Errorf("IsPaid() = true for status %q, want false", s)
		}
	}
}
