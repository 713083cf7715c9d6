package venda

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Filters are the optional sale search criteria. A zero field imposes no
// constraint.
type Filters struct {
	// Descricao matches the property description as a case-insensitive
	// substring.
	Descricao string

	// ValorMin and ValorMax bound the sale total, inclusive on both ends.
	ValorMin decimal.Decimal
	ValorMax decimal.Decimal

	// DataInicio and DataFim bound the sale date at day precision,
	// inclusive on both ends.
	DataInicio time.Time
	DataFim    time.Time

	FormaPagamento FormaPagamento
	IdImobiliaria  int
	IdProfissional int

	// StatusParcela uses the search API's status vocabulary:
	// PENDENTE, PAGA or ATRASADA.
	StatusParcela string
}

// IsZero reports whether no criterion is set.
func (f Filters) IsZero() bool {
	return f == Filters{}
}

// QueryString encodes the set criteria plus pagination and the default sort
// for the search endpoint. The server paginates from zero, so the requested
// 1-based page is shifted down.
func (f Filters) QueryString(page, pageSize int) string {
	params := url.Values{}

	if desc := strings.TrimSpace(f.Descricao); desc != "" {
		params.Set("descricao", desc)
	}
	if f.ValorMin.IsPositive() {
		params.Set("valorMin", f.ValorMin.String())
	}
	if f.ValorMax.IsPositive() {
		params.Set("valorMax", f.ValorMax.String())
	}
	if !f.DataInicio.IsZero() {
		params.Set("dataInicio", f.DataInicio.Format(dateLayout))
	}
	if !f.DataFim.IsZero() {
		params.Set("dataFim", f.DataFim.Format(dateLayout))
	}
	if f.FormaPagamento != "" {
		params.Set("formaPagamento", string(f.FormaPagamento))
	}
	if f.IdImobiliaria > 0 {
		params.Set("idImobiliaria", strconv.Itoa(f.IdImobiliaria))
	}
	if f.IdProfissional > 0 {
		params.Set("idProfissional", strconv.Itoa(f.IdProfissional))
	}
	if f.StatusParcela != "" {
		params.Set("statusParcela", f.StatusParcela)
	}

	params.Set("page", strconv.Itoa(page-1))
	params.Set("limit", strconv.Itoa(pageSize))
	params.Set("sortBy", "valorTotal")
	params.Set("sortOrder", "DESC")

	return params.Encode()
}

// Matches applies the locally evaluable criteria to a single sale. The
// profissional and statusParcela criteria need joins only the backend can
// do and are not evaluated here; see LocalOnlyIgnored.
func (f Filters) Matches(v Venda) bool {
	if desc := strings.TrimSpace(f.Descricao); desc != "" {
		if !strings.Contains(strings.ToLower(v.DescricaoImovel), strings.ToLower(desc)) {
			return false
		}
	}
	if f.ValorMin.IsPositive() && v.ValorTotal.LessThan(f.ValorMin) {
		return false
	}
	if f.ValorMax.IsPositive() && v.ValorTotal.GreaterThan(f.ValorMax) {
		return false
	}
	if !f.DataInicio.IsZero() {
		if v.DataVenda.Format(dateLayout) < f.DataInicio.Format(dateLayout) {
			return false
		}
	}
	if !f.DataFim.IsZero() {
		if v.DataVenda.Format(dateLayout) > f.DataFim.Format(dateLayout) {
			return false
		}
	}
	if f.FormaPagamento != "" && v.FormaPagamento != f.FormaPagamento {
		return false
	}
	if f.IdImobiliaria > 0 && v.IdImobiliaria != f.IdImobiliaria {
		return false
	}
	return true
}

// Filter returns the sales matching the locally evaluable criteria,
// preserving order.
func (f Filters) Filter(vendas []Venda) []Venda {
	matched := make([]Venda, 0, len(vendas))
	for _, v := range vendas {
		if f.Matches(v) {
			matched = append(matched, v)
		}
	}
	return matched
}

// LocalOnlyIgnored names the set criteria that local filtering cannot
// evaluate and silently skips.
func (f Filters) LocalOnlyIgnored() []string {
	var ignored []string
	if f.IdProfissional > 0 {
		ignored = append(ignored, "idProfissional")
	}
	if f.StatusParcela != "" {
		ignored = append(ignored, "statusParcela")
	}
	return ignored
}
