package venda

import (
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestQueryStringOnlySetCriteria(t *testing.T) {
	f := Filters{
		Descricao: "  casa  ",
		ValorMin:  dec(t, "100000"),
	}

	params, err := url.ParseQuery(f.QueryString(1, 10))
	require.NoError(t, err)

	assert.Equal(t, "casa", params.Get("descricao"))
	assert.Equal(t, "100000", params.Get("valorMin"))
	assert.Equal(t, "0", params.Get("page"))
	assert.Equal(t, "10", params.Get("limit"))
	assert.Equal(t, "valorTotal", params.Get("sortBy"))
	assert.Equal(t, "DESC", params.Get("sortOrder"))

	// Unset criteria leave no trace in the query.
	for _, absent := range []string{"valorMax", "dataInicio", "dataFim", "formaPagamento", "idImobiliaria", "idProfissional", "statusParcela"} {
		assert.False(t, params.Has(absent), absent)
	}
}

func TestQueryStringAllCriteria(t *testing.T) {
	f := Filters{
		Descricao:      "apartamento",
		ValorMin:       dec(t, "50000.50"),
		ValorMax:       dec(t, "900000"),
		DataInicio:     day(t, "2026-01-01"),
		DataFim:        day(t, "2026-06-30"),
		FormaPagamento: Parcelado,
		IdImobiliaria:  3,
		IdProfissional: 7,
		StatusParcela:  "PAGA",
	}

	params, err := url.ParseQuery(f.QueryString(4, 25))
	require.NoError(t, err)

	assert.Equal(t, "2026-01-01", params.Get("dataInicio"))
	assert.Equal(t, "2026-06-30", params.Get("dataFim"))
	assert.Equal(t, "PARCELADO", params.Get("formaPagamento"))
	assert.Equal(t, "3", params.Get("idImobiliaria"))
	assert.Equal(t, "7", params.Get("idProfissional"))
	assert.Equal(t, "PAGA", params.Get("statusParcela"))
	// Requested page 4 maps to the server's zero-based page 3.
	assert.Equal(t, "3", params.Get("page"))
	assert.Equal(t, "25", params.Get("limit"))
}

func TestIsZero(t *testing.T) {
	assert.True(t, Filters{}.IsZero())
	assert.False(t, Filters{Descricao: "casa"}.IsZero())
	assert.False(t, Filters{IdImobiliaria: 1}.IsZero())
}

func TestMatchesDescricaoCaseInsensitive(t *testing.T) {
	v := Venda{DescricaoImovel: "Casa dos Ipês", ValorTotal: dec(t, "300000")}

	assert.True(t, Filters{Descricao: "casa"}.Matches(v))
	assert.True(t, Filters{Descricao: "IPÊS"}.Matches(v))
	assert.True(t, Filters{Descricao: " casa "}.Matches(v))
	assert.False(t, Filters{Descricao: "sobrado"}.Matches(v))
}

func TestMatchesValorBoundsInclusive(t *testing.T) {
	v := Venda{ValorTotal: dec(t, "250000.00")}

	assert.True(t, Filters{ValorMin: dec(t, "250000")}.Matches(v))
	assert.True(t, Filters{ValorMax: dec(t, "250000")}.Matches(v))
	assert.False(t, Filters{ValorMin: dec(t, "250000.01")}.Matches(v))
	assert.False(t, Filters{ValorMax: dec(t, "249999.99")}.Matches(v))
}

func TestMatchesDateRangeInclusive(t *testing.T) {
	v := Venda{DataVenda: day(t, "2026-03-15")}

	assert.True(t, Filters{DataInicio: day(t, "2026-03-15")}.Matches(v))
	assert.True(t, Filters{DataFim: day(t, "2026-03-15")}.Matches(v))
	assert.False(t, Filters{DataInicio: day(t, "2026-03-16")}.Matches(v))
	assert.False(t, Filters{DataFim: day(t, "2026-03-14")}.Matches(v))
}

func TestMatchesFormaPagamentoAndImobiliaria(t *testing.T) {
	v := Venda{FormaPagamento: AVista, IdImobiliaria: 2}

	assert.True(t, Filters{FormaPagamento: AVista}.Matches(v))
	assert.False(t, Filters{FormaPagamento: Parcelado}.Matches(v))
	assert.True(t, Filters{IdImobiliaria: 2}.Matches(v))
	assert.False(t, Filters{IdImobiliaria: 5}.Matches(v))
}

func TestFilterPreservesOrder(t *testing.T) {
	vendas := []Venda{
		{DescricaoImovel: "Casa A", ValorTotal: dec(t, "100000")},
		{DescricaoImovel: "Apartamento B", ValorTotal: dec(t, "200000")},
		{DescricaoImovel: "Casa C", ValorTotal: dec(t, "300000")},
	}

	got := Filters{Descricao: "casa"}.Filter(vendas)
	require.Len(t, got, 2)
	assert.Equal(t, "Casa A", got[0].DescricaoImovel)
	assert.Equal(t, "Casa C", got[1].DescricaoImovel)
}

func TestLocalOnlyIgnored(t *testing.T) {
	assert.Nil(t, Filters{Descricao: "casa"}.LocalOnlyIgnored())
	assert.Equal(t, []string{"idProfissional"}, Filters{IdProfissional: 4}.LocalOnlyIgnored())
	assert.Equal(t,
		[]string{"idProfissional", "statusParcela"},
		Filters{IdProfissional: 4, StatusParcela: "PENDENTE"}.LocalOnlyIgnored())
}
