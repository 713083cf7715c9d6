// Package comissao manages the commission records of sales and the
// per-role commission configuration of agencies.
package comissao

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"imobigest/internal/api"
	"imobigest/internal/logger"
)

// ErrNoProfissionais is returned when a commission is created without at
// least one professional carrying a role.
var ErrNoProfissionais = errors.New("a comissao needs at least one profissional with cargos")

// Service persists commission records through the REST API.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

// NewService creates a Service on the shared API client.
func NewService(client *api.Client) *Service {
	return &Service{
		client: client,
		log:    logger.WithComponent("comissao"),
	}
}

// Create records the commissions of a sale with their earning roles.
func (s *Service) Create(ctx context.Context, p Payload) error {
	if len(p.Profissionais) == 0 {
		return ErrNoProfissionais
	}
	for _, prof := range p.Profissionais {
		if len(prof.IdsCargos) == 0 {
			return ErrNoProfissionais
		}
	}
	if err := s.client.Post(ctx, "/comissao/com-cargo", p, nil); err != nil {
		return err
	}
	s.log.Info().
		Int("venda_id", p.IdVenda).
		Int("profissionais", len(p.Profissionais)).
		Msg("Comissao created")
	return nil
}

// ListByVenda returns the commissions of a sale. When the per-sale endpoint
// is unavailable the full commission listing is fetched and filtered
// client-side instead.
func (s *Service) ListByVenda(ctx context.Context, vendaID int) ([]Comissao, error) {
	var comissoes []Comissao
	err := s.client.Get(ctx, fmt.Sprintf("/comissao/venda/%d", vendaID), &comissoes)
	if err == nil {
		return comissoes, nil
	}
	if !api.IsFallbackTrigger(err) {
		return nil, err
	}

	s.log.Debug().
		Err(err).
		Int("venda_id", vendaID).
		Msg("Per-sale comissao endpoint unavailable, filtering the full listing")

	var all []Comissao
	if err := s.client.Get(ctx, "/comissao", &all); err != nil {
		return nil, err
	}
	matched := make([]Comissao, 0, len(all))
	for _, c := range all {
		if c.IdVenda == vendaID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

// DeleteByVenda removes every commission of a sale.
func (s *Service) DeleteByVenda(ctx context.Context, vendaID int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/comissao/venda/%d", vendaID))
}

// Replace rewrites the commissions of a sale: the existing records are
// deleted, then the given selection is recreated.
func (s *Service) Replace(ctx context.Context, vendaID int, profissionais []ProfissionalCargos) error {
	if err := s.DeleteByVenda(ctx, vendaID); err != nil {
		s.log.Warn().
			Err(err).
			Int("venda_id", vendaID).
			Msg("Could not delete existing comissoes before replace")
	}
	return s.Create(ctx, Payload{IdVenda: vendaID, Profissionais: profissionais})
}

// ListConfig returns the commission-percentage rules of an agency.
func (s *Service) ListConfig(ctx context.Context, imobiliariaID int) ([]Config, error) {
	var configs []Config
	if err := s.client.Get(ctx, fmt.Sprintf("/config-comissao/imobiliaria/%d", imobiliariaID), &configs); err != nil {
		return nil, err
	}
	return configs, nil
}

// CreateConfig adds a commission-percentage rule.
func (s *Service) CreateConfig(ctx context.Context, c Config) (*Config, error) {
	var created Config
	if err := s.client.Post(ctx, "/config-comissao", c, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateConfig rewrites a commission-percentage rule.
func (s *Service) UpdateConfig(ctx context.Context, c Config) (*Config, error) {
	if c.ID == 0 {
		return nil, fmt.Errorf("config has no id")
	}
	var updated Config
	if err := s.client.Put(ctx, fmt.Sprintf("/config-comissao/%d", c.ID), c, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteConfig removes a commission-percentage rule.
func (s *Service) DeleteConfig(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/config-comissao/%d", id))
}
