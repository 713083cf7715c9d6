package venda

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"imobigest/internal/api"
)

// FormaPagamento is a sale's payment mode.
type FormaPagamento string

const (
	AVista    FormaPagamento = "A_VISTA"
	Parcelado FormaPagamento = "PARCELADO"
)

// Venda is a sale record as the API returns it.
type Venda struct {
	ID               api.ID          `json:"id"`
	DescricaoImovel  string          `json:"descricaoImovel"`
	ValorTotal       decimal.Decimal `json:"valorTotal"`
	DataVenda        time.Time       `json:"dataVenda"`
	FormaPagamento   FormaPagamento  `json:"formaPagamento"`
	QtdParcelas      int             `json:"qtdParcelas"`
	CompradorNome    string          `json:"compradorNome"`
	CompradorContato string          `json:"compradorContato"`
	IdImobiliaria    int             `json:"idImobiliaria"`
	Imobiliaria      *struct {
		Nome string `json:"nome"`
	} `json:"imobiliaria,omitempty"`
}

// VendaData is the sale form payload for create and update requests.
type VendaData struct {
	DescricaoImovel  string          `json:"descricaoImovel" validate:"required"`
	ValorTotal       decimal.Decimal `json:"valorTotal"`
	DataVenda        time.Time       `json:"dataVenda" validate:"required"`
	FormaPagamento   FormaPagamento  `json:"formaPagamento" validate:"required,oneof=A_VISTA PARCELADO"`
	QtdParcelas      int             `json:"qtdParcelas" validate:"gte=0"`
	CompradorNome    string          `json:"compradorNome" validate:"required"`
	CompradorContato string          `json:"compradorContato"`
	IdImobiliaria    int             `json:"idImobiliaria" validate:"required,gt=0"`
}

var validate = validator.New()

// Normalize clears fields that are meaningless for the selected payment
// mode: an A_VISTA sale carries no installment count.
func (d *VendaData) Normalize() {
	if d.FormaPagamento != Parcelado {
		d.QtdParcelas = 0
	}
}

// Validate checks the form payload before it is submitted.
func (d *VendaData) Validate() error {
	if err := validate.Struct(d); err != nil {
		return err
	}
	if !d.ValorTotal.IsPositive() {
		return fmt.Errorf("valorTotal must be positive")
	}
	if d.FormaPagamento == Parcelado && d.QtdParcelas < 1 {
		return fmt.Errorf("qtdParcelas must be at least 1 for a PARCELADO sale")
	}
	return nil
}
