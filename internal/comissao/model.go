package comissao

import (
	"github.com/shopspring/decimal"

	"imobigest/internal/api"
)

// TipoComissao distinguishes role-driven commissions from ones assigned
// explicitly per sale.
type TipoComissao string

const (
	Automatica TipoComissao = "AUTOMATICA"
	Manual     TipoComissao = "MANUAL"
)

// Comissao links a sale, a professional and the roles that earned it.
type Comissao struct {
	ID             api.ID       `json:"id"`
	IdVenda        int          `json:"idVenda"`
	IdProfissional int          `json:"idProfissional"`
	IdsCargos      []int        `json:"idsCargos"`
	TipoComissao   TipoComissao `json:"tipoComissao"`
}

// ProfissionalCargos selects a professional and the roles earning the
// commission.
type ProfissionalCargos struct {
	IdProfissional int   `json:"idProfissional"`
	IdsCargos      []int `json:"idsCargos"`
}

// Payload is the body of POST /comissao/com-cargo.
type Payload struct {
	IdVenda       int                  `json:"idVenda"`
	Profissionais []ProfissionalCargos `json:"profissionais"`
}

// Config is one commission-percentage rule: the share a role earns on
// sales of an agency.
type Config struct {
	ID            int             `json:"id"`
	IdImobiliaria int             `json:"idImobiliaria"`
	IdCargo       int             `json:"idCargo"`
	Percentual    decimal.Decimal `json:"percentual"`
}
