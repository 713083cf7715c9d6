package venda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVendaData(t *testing.T) VendaData {
	t.Helper()
	return VendaData{
		DescricaoImovel: "Casa dos Ipês",
		ValorTotal:      dec(t, "350000"),
		DataVenda:       day(t, "2026-03-15"),
		FormaPagamento:  Parcelado,
		QtdParcelas:     12,
		CompradorNome:   "Maria Souza",
		IdImobiliaria:   1,
	}
}

func TestNormalizeClearsQtdParcelasForAVista(t *testing.T) {
	d := validVendaData(t)
	d.FormaPagamento = AVista
	d.Normalize()
	assert.Zero(t, d.QtdParcelas)

	d = validVendaData(t)
	d.Normalize()
	assert.Equal(t, 12, d.QtdParcelas)
}

func TestValidate(t *testing.T) {
	d := validVendaData(t)
	require.NoError(t, d.Validate())

	d = validVendaData(t)
	d.DescricaoImovel = ""
	assert.Error(t, d.Validate())

	d = validVendaData(t)
	d.ValorTotal = dec(t, "0")
	assert.ErrorContains(t, d.Validate(), "valorTotal")

	d = validVendaData(t)
	d.ValorTotal = dec(t, "-10")
	assert.Error(t, d.Validate())

	d = validVendaData(t)
	d.FormaPagamento = "CHEQUE"
	assert.Error(t, d.Validate())

	d = validVendaData(t)
	d.QtdParcelas = 0
	assert.ErrorContains(t, d.Validate(), "qtdParcelas")

	d = validVendaData(t)
	d.IdImobiliaria = 0
	assert.Error(t, d.Validate())
}
