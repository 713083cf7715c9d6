// Package imobiliaria manages the real-estate agencies, the top-level
// organizational unit of the system.
package imobiliaria

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"imobigest/internal/api"
	"imobigest/internal/logger"
)

// Imobiliaria is an agency with its monthly sales goal.
type Imobiliaria struct {
	ID   api.ID          `json:"id"`
	Nome string          `json:"nome"`
	Meta decimal.Decimal `json:"meta"`
}

// ImobiliariaData is the agency form payload.
type ImobiliariaData struct {
	Nome string          `json:"nome"`
	Meta decimal.Decimal `json:"meta"`
}

// Service persists agencies through the REST API.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

// NewService creates a Service on the shared API client.
func NewService(client *api.Client) *Service {
	return &Service{
		client: client,
		log:    logger.WithComponent("imobiliaria"),
	}
}

// List returns all agencies.
func (s *Service) List(ctx context.Context) ([]Imobiliaria, error) {
	var imobiliarias []Imobiliaria
	if err := s.client.Get(ctx, "/imobiliaria", &imobiliarias); err != nil {
		return nil, err
	}
	return imobiliarias, nil
}

// Create adds an agency.
func (s *Service) Create(ctx context.Context, data ImobiliariaData) (*Imobiliaria, error) {
	if data.Nome == "" {
		return nil, fmt.Errorf("imobiliaria nome is required")
	}
	var created Imobiliaria
	if err := s.client.Post(ctx, "/imobiliaria", data, &created); err != nil {
		return nil, err
	}
	s.log.Info().Str("nome", data.Nome).Msg("Imobiliaria created")
	return &created, nil
}

// Update rewrites an agency.
func (s *Service) Update(ctx context.Context, id api.ID, data ImobiliariaData) (*Imobiliaria, error) {
	var updated Imobiliaria
	if err := s.client.Put(ctx, "/imobiliaria/"+id.String(), data, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an agency.
func (s *Service) Delete(ctx context.Context, id api.ID) error {
	return s.client.Delete(ctx, "/imobiliaria/"+id.String())
}
