// Package cargo manages the roles professionals can hold.
package cargo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"imobigest/internal/api"
	"imobigest/internal/logger"
)

// Cargo is a role, optionally eligible for automatic commissions.
type Cargo struct {
	ID                 int    `json:"id"`
	Nome               string `json:"nome"`
	ComissaoAutomatica bool   `json:"comissaoAutomatica"`
}

// CargoData is the role form payload.
type CargoData struct {
	Nome               string `json:"nome"`
	ComissaoAutomatica bool   `json:"comissaoAutomatica"`
}

// Service persists roles through the REST API.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

// NewService creates a Service on the shared API client.
func NewService(client *api.Client) *Service {
	return &Service{
		client: client,
		log:    logger.WithComponent("cargo"),
	}
}

// List returns all roles.
func (s *Service) List(ctx context.Context) ([]Cargo, error) {
	var cargos []Cargo
	if err := s.client.Get(ctx, "/cargo", &cargos); err != nil {
		return nil, err
	}
	return cargos, nil
}

// Create adds a role.
func (s *Service) Create(ctx context.Context, data CargoData) (*Cargo, error) {
	if data.Nome == "" {
		return nil, fmt.Errorf("cargo nome is required")
	}
	var created Cargo
	if err := s.client.Post(ctx, "/cargo", data, &created); err != nil {
		return nil, err
	}
	s.log.Info().Str("nome", data.Nome).Msg("Cargo created")
	return &created, nil
}

// Update rewrites a role.
func (s *Service) Update(ctx context.Context, id int, data CargoData) (*Cargo, error) {
	var updated Cargo
	if err := s.client.Put(ctx, fmt.Sprintf("/cargo/%d", id), data, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a role.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/cargo/%d", id))
}
