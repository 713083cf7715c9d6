package venda

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"imobigest/internal/api"
	"imobigest/internal/comissao"
	"imobigest/internal/logger"
	"imobigest/internal/parcela"
)

// Saver runs the multi-step save flow of a sale: the sale record first,
// then its commissions, then its installments when the sale is parcelled.
//
// The steps are sequential and best-effort. There is no compensating
// rollback: a failure in a later step leaves the earlier steps persisted
// and surfaces as a single error, matching the API's lack of cross-entity
// transactions.
type Saver struct {
	vendas    *Service
	comissoes *comissao.Service
	parcelas  *parcela.Service
	log       zerolog.Logger
}

// NewSaver wires the three services of the save flow.
func NewSaver(vendas *Service, comissoes *comissao.Service, parcelas *parcela.Service) *Saver {
	return &Saver{
		vendas:    vendas,
		comissoes: comissoes,
		parcelas:  parcelas,
		log:       logger.WithComponent("venda-save"),
	}
}

// Create persists a new sale with its commissions and, for a PARCELADO
// sale, the given installment draft.
func (s *Saver) Create(ctx context.Context, data VendaData, profissionais []comissao.ProfissionalCargos, draft *parcela.Draft) (*Venda, error) {
	data.Normalize()
	if err := data.Validate(); err != nil {
		return nil, err
	}
	if len(profissionais) == 0 {
		return nil, comissao.ErrNoProfissionais
	}

	created, err := s.vendas.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	vendaID, err := created.ID.Int()
	if err != nil {
		return created, fmt.Errorf("venda created but its id is unusable: %w", err)
	}

	if err := s.comissoes.Create(ctx, comissao.Payload{IdVenda: vendaID, Profissionais: profissionais}); err != nil {
		return created, fmt.Errorf("venda %d created but comissao failed: %w", vendaID, err)
	}

	if data.FormaPagamento == Parcelado && draft != nil && draft.Len() > 0 {
		if err := s.parcelas.CreateAll(ctx, vendaID, draft.Parcelas()); err != nil {
			return created, fmt.Errorf("venda %d created but parcelas failed: %w", vendaID, err)
		}
	}

	s.log.Info().
		Int("venda_id", vendaID).
		Int("profissionais", len(profissionais)).
		Msg("Venda save flow completed")
	return created, nil
}

// Update rewrites an existing sale, replacing its commissions when a
// professional selection is given and, for a PARCELADO sale, replacing its
// full installment set with the draft.
func (s *Saver) Update(ctx context.Context, id api.ID, data VendaData, profissionais []comissao.ProfissionalCargos, draft *parcela.Draft) (*Venda, error) {
	updated, err := s.vendas.Update(ctx, id, data)
	if err != nil {
		return nil, err
	}
	vendaID, err := id.Int()
	if err != nil {
		return updated, fmt.Errorf("venda updated but its id is unusable: %w", err)
	}

	if len(profissionais) > 0 {
		if err := s.comissoes.Replace(ctx, vendaID, profissionais); err != nil {
			return updated, fmt.Errorf("venda %d updated but comissao replace failed: %w", vendaID, err)
		}
	}

	if data.FormaPagamento == Parcelado && draft != nil && draft.Len() > 0 {
		if err := s.parcelas.ReplaceAll(ctx, vendaID, draft.Parcelas()); err != nil {
			return updated, fmt.Errorf("venda %d updated but parcela replace failed: %w", vendaID, err)
		}
	}

	return updated, nil
}
