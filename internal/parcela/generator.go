// Package parcela generates, edits and persists the installments of a sale.
//
// Generation splits the sale total into monthly installments of equal value,
// rounded half-up to the currency's two decimal places. The last installment
// absorbs the rounding residual, so the generated amounts always sum to the
// sale total exactly. Due dates advance one calendar month per installment
// starting one month after the sale date, with time.Time.AddDate overflow
// semantics for short months.
package parcela

import (
	"time"

	"github.com/shopspring/decimal"
)

// GenerateInput are the sale form values the generator works from.
type GenerateInput struct {
	VendaID     int
	ValorTotal  decimal.Decimal
	QtdParcelas int
	DataVenda   time.Time

	// Parcelado is false for A_VISTA sales, which have no installments.
	Parcelado bool
}

// Generate produces the installment sequence for the given sale values.
// It returns an empty slice unless the sale is parcelled with a positive
// installment count and total.
func Generate(in GenerateInput) []Parcela {
	if !in.Parcelado || in.QtdParcelas <= 0 || !in.ValorTotal.IsPositive() {
		return nil
	}

	count := int64(in.QtdParcelas)
	base := in.ValorTotal.Div(decimal.NewFromInt(count)).Round(2)

	parcelas := make([]Parcela, 0, in.QtdParcelas)
	for i := 1; i <= in.QtdParcelas; i++ {
		valor := base
		if i == in.QtdParcelas {
			// Residual lands on the last installment so the sum stays exact.
			valor = in.ValorTotal.Sub(base.Mul(decimal.NewFromInt(count - 1)))
		}
		parcelas = append(parcelas, Parcela{
			NumeroParcela:  i,
			ValorParcela:   valor,
			DataVencimento: in.DataVenda.AddDate(0, i, 0),
			Status:         StatusPendente,
			IdVenda:        in.VendaID,
		})
	}
	return parcelas
}

// Draft is the in-memory installment list being assembled before a sale is
// saved. Edits mutate single installments by index and never rebalance the
// others; keeping the amounts summing to the sale total after manual edits
// is the user's responsibility until the draft is regenerated.
type Draft struct {
	parcelas []Parcela
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{}
}

// Regenerate replaces the draft with a freshly generated sequence.
func (d *Draft) Regenerate(in GenerateInput) {
	d.parcelas = Generate(in)
}

// Load replaces the draft with previously persisted installments.
func (d *Draft) Load(parcelas []Parcela) {
	d.parcelas = append([]Parcela(nil), parcelas...)
}

// Parcelas returns a copy of the current draft in installment order.
func (d *Draft) Parcelas() []Parcela {
	return append([]Parcela(nil), d.parcelas...)
}

// Len returns the number of installments in the draft.
func (d *Draft) Len() int {
	return len(d.parcelas)
}

// Total sums the draft amounts.
func (d *Draft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, p := range d.parcelas {
		total = total.Add(p.ValorParcela)
	}
	return total
}

// SetValor updates the amount of the installment at index i.
func (d *Draft) SetValor(i int, valor decimal.Decimal) error {
	if i < 0 || i >= len(d.parcelas) {
		return ErrIndexOutOfRange
	}
	d.parcelas[i].ValorParcela = valor
	return nil
}

// SetDataVencimento updates the due date of the installment at index i.
func (d *Draft) SetDataVencimento(i int, data time.Time) error {
	if i < 0 || i >= len(d.parcelas) {
		return ErrIndexOutOfRange
	}
	d.parcelas[i].DataVencimento = data
	return nil
}

// SetStatus updates the status of the installment at index i.
func (d *Draft) SetStatus(i int, status Status) error {
	if i < 0 || i >= len(d.parcelas) {
		return ErrIndexOutOfRange
	}
	if !status.Valid() {
		return ErrInvalidStatus
	}
	d.parcelas[i].Status = status
	return nil
}

// Reset empties the draft.
func (d *Draft) Reset() {
	d.parcelas = nil
}
