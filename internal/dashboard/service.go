// Package dashboard fetches the aggregated commission metrics of an agency
// over a period and reshapes the API's flat payload into the report the UI
// layer renders.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"imobigest/internal/api"
	"imobigest/internal/logger"
)

// ComissaoPorCargo is the commission total one role earned in the period.
type ComissaoPorCargo struct {
	NomeCargo     string          `json:"nomeCargo"`
	ValorComissao decimal.Decimal `json:"valorComissao"`
}

// Report is the dashboard of one agency for one period.
type Report struct {
	Resumo struct {
		MetaImobiliaria    decimal.Decimal
		FaltaParaMeta      decimal.Decimal
		ComissaoGeralTotal decimal.Decimal
	}
	Medias struct {
		MensalAnoComissao decimal.Decimal
		PeriodoComissao   decimal.Decimal
	}
	ComissoesPorCargo            []ComissaoPorCargo
	ComissoesAutomaticasPorCargo []ComissaoPorCargo
	ComissoesManuaisPorCargo     []ComissaoPorCargo
	Periodo                      Periodo
}

// Periodo is the month the report covers, with its day bounds.
type Periodo struct {
	Ano        int
	Mes        int
	DataInicio string
	DataFim    string
}

// apiResponse is the wire shape of GET /dashboard/{id}. The averages are
// null when the period has no data.
type apiResponse struct {
	MetaImobiliaria              decimal.Decimal    `json:"metaImobiliaria"`
	ValorParaMeta                decimal.Decimal    `json:"valorParaMeta"`
	ComissaoGeralTotal           decimal.Decimal    `json:"comissaoGeralTotal"`
	MediaMensalAnoComissao       *decimal.Decimal   `json:"mediaMensalAnoComissao"`
	MediaPeriodoComissao         *decimal.Decimal   `json:"mediaPeriodoComissao"`
	ComissoesPorCargo            []ComissaoPorCargo `json:"comissoesPorCargo"`
	ComissoesAutomaticasPorCargo []ComissaoPorCargo `json:"comissoesAutomaticasPorCargo"`
	ComissoesManuaisPorCargo     []ComissaoPorCargo `json:"comissoesManuaisPorCargo"`
}

// Service fetches dashboard metrics through the REST API.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

// NewService creates a Service on the shared API client.
func NewService(client *api.Client) *Service {
	return &Service{
		client: client,
		log:    logger.WithComponent("dashboard"),
	}
}

// Get returns the report of an agency. The period is "YYYY-MM"; when empty,
// the API's default period (the current month) is used and the current
// month is echoed in the report.
func (s *Service) Get(ctx context.Context, imobiliariaID api.ID, periodo string) (*Report, error) {
	ano, mes, err := parsePeriodo(periodo)
	if err != nil {
		return nil, err
	}

	path := "/dashboard/" + imobiliariaID.String()
	if periodo != "" {
		path += "?periodo=" + periodo
	}

	var payload apiResponse
	if err := s.client.Get(ctx, path, &payload); err != nil {
		return nil, err
	}

	report := &Report{
		ComissoesPorCargo:            payload.ComissoesPorCargo,
		ComissoesAutomaticasPorCargo: payload.ComissoesAutomaticasPorCargo,
		ComissoesManuaisPorCargo:     payload.ComissoesManuaisPorCargo,
		Periodo:                      monthBounds(ano, mes),
	}
	report.Resumo.MetaImobiliaria = payload.MetaImobiliaria
	report.Resumo.FaltaParaMeta = payload.ValorParaMeta
	report.Resumo.ComissaoGeralTotal = payload.ComissaoGeralTotal
	if payload.MediaMensalAnoComissao != nil {
		report.Medias.MensalAnoComissao = *payload.MediaMensalAnoComissao
	}
	if payload.MediaPeriodoComissao != nil {
		report.Medias.PeriodoComissao = *payload.MediaPeriodoComissao
	}

	s.log.Debug().
		Str("imobiliaria_id", imobiliariaID.String()).
		Str("periodo", fmt.Sprintf("%04d-%02d", ano, mes)).
		Msg("Dashboard loaded")
	return report, nil
}

// parsePeriodo validates the YYYY-MM form, defaulting to the current month.
func parsePeriodo(periodo string) (int, int, error) {
	if periodo == "" {
		now := time.Now()
		return now.Year(), int(now.Month()), nil
	}
	t, err := time.Parse("2006-01", periodo)
	if err != nil {
		return 0, 0, fmt.Errorf("periodo must be YYYY-MM: %w", err)
	}
	return t.Year(), int(t.Month()), nil
}

// monthBounds expands a year/month into the period with its first and last
// day.
func monthBounds(ano, mes int) Periodo {
	first := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return Periodo{
		Ano:        ano,
		Mes:        mes,
		DataInicio: first.Format("2006-01-02"),
		DataFim:    last.Format("2006-01-02"),
	}
}
