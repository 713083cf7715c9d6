package parcela

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"imobigest/internal/api"
	"imobigest/internal/logger"
)

// Service persists installments through the REST API.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

// NewService creates a Service on the shared API client.
func NewService(client *api.Client) *Service {
	return &Service{
		client: client,
		log:    logger.WithComponent("parcela"),
	}
}

// ListByVenda returns the persisted installments of a sale.
func (s *Service) ListByVenda(ctx context.Context, vendaID int) ([]Parcela, error) {
	var parcelas []Parcela
	if err := s.client.Get(ctx, fmt.Sprintf("/parcela/venda/%d", vendaID), &parcelas); err != nil {
		return nil, err
	}
	return parcelas, nil
}

// LoadOrGenerate fetches the persisted installments of a sale, falling back
// to local generation from the current form values when the sale has none or
// the request fails. Used when a sale is opened for editing.
func (s *Service) LoadOrGenerate(ctx context.Context, in GenerateInput) ([]Parcela, error) {
	parcelas, err := s.ListByVenda(ctx, in.VendaID)
	if err != nil {
		s.log.Warn().
			Err(err).
			Int("venda_id", in.VendaID).
			Msg("Could not load persisted parcelas, generating from form values")
		return Generate(in), nil
	}
	if len(parcelas) == 0 {
		return Generate(in), nil
	}
	return parcelas, nil
}

// Create persists a single installment.
func (s *Service) Create(ctx context.Context, p Parcela) (*Parcela, error) {
	var created Parcela
	if err := s.client.Post(ctx, "/parcela", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update rewrites a persisted installment.
func (s *Service) Update(ctx context.Context, p Parcela) (*Parcela, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("parcela has no id")
	}
	var updated Parcela
	if err := s.client.Put(ctx, fmt.Sprintf("/parcela/%d", p.ID), p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a persisted installment.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/parcela/%d", id))
}

// CreateAll persists the installments of a newly created sale, one request
// per installment in ascending installment order. There is no transactional
// rollback: a failure partway leaves the prior installments persisted and is
// reported as a single error.
func (s *Service) CreateAll(ctx context.Context, vendaID int, parcelas []Parcela) error {
	ordered := append([]Parcela(nil), parcelas...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].NumeroParcela < ordered[j].NumeroParcela
	})

	for _, p := range ordered {
		p.ID = 0
		p.IdVenda = vendaID
		if _, err := s.Create(ctx, p); err != nil {
			return fmt.Errorf("creating parcela %d: %w", p.NumeroParcela, err)
		}
	}

	s.log.Info().
		Int("venda_id", vendaID).
		Int("parcelas", len(ordered)).
		Msg("Parcelas created")
	return nil
}

// ReplaceAll rewrites the full installment set of a sale: every persisted
// installment is deleted first, then the given list is recreated. Used when
// a sale is edited; the update is full-replace, not a diff.
func (s *Service) ReplaceAll(ctx context.Context, vendaID int, parcelas []Parcela) error {
	existing, err := s.ListByVenda(ctx, vendaID)
	if err != nil {
		s.log.Warn().
			Err(err).
			Int("venda_id", vendaID).
			Msg("Could not list existing parcelas before replace")
	}
	for _, p := range existing {
		if p.ID == 0 {
			continue
		}
		if err := s.Delete(ctx, p.ID); err != nil {
			return fmt.Errorf("deleting parcela %d: %w", p.ID, err)
		}
	}

	return s.CreateAll(ctx, vendaID, parcelas)
}

// SetStatus updates the status of one installment of a sale, addressed by
// installment number.
func (s *Service) SetStatus(ctx context.Context, vendaID, numeroParcela int, status Status) (*Parcela, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	parcelas, err := s.ListByVenda(ctx, vendaID)
	if err != nil {
		return nil, err
	}
	for _, p := range parcelas {
		if p.NumeroParcela == numeroParcela {
			p.Status = status
			return s.Update(ctx, p)
		}
	}
	return nil, ErrNotFound
}
