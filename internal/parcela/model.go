package parcela

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status of a single installment.
type Status string

const (
	StatusPendente Status = "PENDENTE"
	StatusPago     Status = "PAGO"
	StatusAtrasado Status = "ATRASADO"
)

// Valid reports whether s is one of the known installment statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPendente, StatusPago, StatusAtrasado:
		return true
	}
	return false
}

// Parcela is one installment of a sale's total payment. ID is zero until
// the installment has been persisted.
type Parcela struct {
	ID             int             `json:"id,omitempty"`
	NumeroParcela  int             `json:"numeroParcela"`
	ValorParcela   decimal.Decimal `json:"valorParcela"`
	DataVencimento time.Time       `json:"dataVencimento"`
	Status         Status          `json:"status"`
	IdVenda        int             `json:"idVenda"`
}
