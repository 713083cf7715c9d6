package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imobigest/internal/api"
)

type staticToken string

func (s staticToken) Token() (string, error) { return string(s), nil }

func testClient(srv *httptest.Server) *api.Client {
	return api.NewClient(srv.URL, staticToken("test-token"), 5*time.Second)
}

const samplePayload = `{
	"metaImobiliaria": 500000,
	"valorParaMeta": 120000.50,
	"comissaoGeralTotal": 38000,
	"mediaMensalAnoComissao": 3166.67,
	"mediaPeriodoComissao": null,
	"comissoesPorCargo": [{"nomeCargo": "Corretor", "valorComissao": 25000}],
	"comissoesAutomaticasPorCargo": [{"nomeCargo": "Corretor", "valorComissao": 20000}],
	"comissoesManuaisPorCargo": []
}`

func TestGetMapsPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/dashboard/3", r.URL.Path)
		require.Equal(t, "2026-02", r.URL.Query().Get("periodo"))
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	s := NewService(testClient(srv))
	report, err := s.Get(context.Background(), api.ID("3"), "2026-02")
	require.NoError(t, err)

	assert.Equal(t, "500000", report.Resumo.MetaImobiliaria.String())
	assert.Equal(t, "120000.5", report.Resumo.FaltaParaMeta.String())
	assert.Equal(t, "38000", report.Resumo.ComissaoGeralTotal.String())
	assert.Equal(t, "3166.67", report.Medias.MensalAnoComissao.String())

	// A null average reads as zero.
	assert.True(t, report.Medias.PeriodoComissao.IsZero())

	require.Len(t, report.ComissoesPorCargo, 1)
	assert.Equal(t, "Corretor", report.ComissoesPorCargo[0].NomeCargo)
	assert.Empty(t, report.ComissoesManuaisPorCargo)

	assert.Equal(t, 2026, report.Periodo.Ano)
	assert.Equal(t, 2, report.Periodo.Mes)
	assert.Equal(t, "2026-02-01", report.Periodo.DataInicio)
	assert.Equal(t, "2026-02-28", report.Periodo.DataFim)
}

func TestGetDefaultPeriodo(t *testing.T) {
	var query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	s := NewService(testClient(srv))
	report, err := s.Get(context.Background(), api.ID("3"), "")
	require.NoError(t, err)

	assert.Empty(t, query)
	now := time.Now()
	assert.Equal(t, now.Year(), report.Periodo.Ano)
	assert.Equal(t, int(now.Month()), report.Periodo.Mes)
}

func TestGetRejectsMalformedPeriodo(t *testing.T) {
	s := NewService(nil)

	for _, periodo := range []string{"2026", "02-2026", "2026-13", "fevereiro"} {
		_, err := s.Get(context.Background(), api.ID("3"), periodo)
		assert.ErrorContains(t, err, "YYYY-MM", periodo)
	}
}

func TestMonthBounds(t *testing.T) {
	p := monthBounds(2026, 12)
	assert.Equal(t, "2026-12-01", p.DataInicio)
	assert.Equal(t, "2026-12-31", p.DataFim)

	// Leap February.
	p = monthBounds(2028, 2)
	assert.Equal(t, "2028-02-29", p.DataFim)
}
