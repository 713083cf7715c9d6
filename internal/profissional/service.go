// Package profissional manages staff members and their role assignments.
package profissional

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"imobigest/internal/api"
	"imobigest/internal/cargo"
	"imobigest/internal/logger"
)

// Profissional is a staff member of an agency. Cargos is only populated by
// the /profissional/completo listing.
type Profissional struct {
	ID            int           `json:"id"`
	Nome          string        `json:"nome"`
	IdImobiliaria int           `json:"idImobiliaria,omitempty"`
	Cargos        []cargo.Cargo `json:"cargos,omitempty"`
	Imobiliaria   *struct {
		ID   int    `json:"id"`
		Nome string `json:"nome"`
	} `json:"imobiliaria,omitempty"`
}

// ProfissionalData is the staff form payload.
type ProfissionalData struct {
	Nome          string `json:"nome"`
	IdImobiliaria int    `json:"idImobiliaria"`
}

// CargoVinculo is one professional-to-role assignment record.
type CargoVinculo struct {
	ID             int `json:"id"`
	IdProfissional int `json:"idProfissional"`
	IdCargo        int `json:"idCargo"`
}

// Service persists professionals through the REST API.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

// NewService creates a Service on the shared API client.
func NewService(client *api.Client) *Service {
	return &Service{
		client: client,
		log:    logger.WithComponent("profissional"),
	}
}

// List returns all professionals.
func (s *Service) List(ctx context.Context) ([]Profissional, error) {
	var profissionais []Profissional
	if err := s.client.Get(ctx, "/profissional", &profissionais); err != nil {
		return nil, err
	}
	return profissionais, nil
}

// ListCompleto returns all professionals with their roles embedded.
func (s *Service) ListCompleto(ctx context.Context) ([]Profissional, error) {
	var profissionais []Profissional
	if err := s.client.Get(ctx, "/profissional/completo", &profissionais); err != nil {
		return nil, err
	}
	return profissionais, nil
}

// Create adds a professional.
func (s *Service) Create(ctx context.Context, data ProfissionalData) (*Profissional, error) {
	if data.Nome == "" {
		return nil, fmt.Errorf("profissional nome is required")
	}
	if data.IdImobiliaria <= 0 {
		return nil, fmt.Errorf("profissional needs an imobiliaria")
	}
	var created Profissional
	if err := s.client.Post(ctx, "/profissional", data, &created); err != nil {
		return nil, err
	}
	s.log.Info().Str("nome", data.Nome).Msg("Profissional created")
	return &created, nil
}

// Update rewrites a professional.
func (s *Service) Update(ctx context.Context, id int, data ProfissionalData) (*Profissional, error) {
	var updated Profissional
	if err := s.client.Put(ctx, fmt.Sprintf("/profissional/%d", id), data, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a professional.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/profissional/%d", id))
}

// ListCargos returns the role assignments of a professional.
func (s *Service) ListCargos(ctx context.Context, profissionalID int) ([]CargoVinculo, error) {
	var vinculos []CargoVinculo
	path := fmt.Sprintf("/profissional-cargo/profissional/%d", profissionalID)
	if err := s.client.Get(ctx, path, &vinculos); err != nil {
		return nil, err
	}
	return vinculos, nil
}

// AssignCargo links a role to a professional.
func (s *Service) AssignCargo(ctx context.Context, profissionalID, cargoID int) error {
	body := CargoVinculo{IdProfissional: profissionalID, IdCargo: cargoID}
	if err := s.client.Post(ctx, "/profissional-cargo", body, nil); err != nil {
		return err
	}
	s.log.Info().
		Int("profissional_id", profissionalID).
		Int("cargo_id", cargoID).
		Msg("Cargo assigned")
	return nil
}

// RemoveCargo removes a role assignment by its own id.
func (s *Service) RemoveCargo(ctx context.Context, vinculoID int) error {
	return s.client.Delete(ctx, fmt.Sprintf("/profissional-cargo/%d", vinculoID))
}
