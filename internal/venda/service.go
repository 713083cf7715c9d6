package venda

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"imobigest/internal/api"
	"imobigest/internal/logger"
)

// Service persists sales through the REST API.
type Service struct {
	client *api.Client
	log    zerolog.Logger
}

// NewService creates a Service on the shared API client.
func NewService(client *api.Client) *Service {
	return &Service{
		client: client,
		log:    logger.WithComponent("venda"),
	}
}

// List returns the unpaginated sale collection.
func (s *Service) List(ctx context.Context) ([]Venda, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, "/venda", &raw); err != nil {
		return nil, err
	}
	return decodeVendaList(raw), nil
}

// Get returns a single sale.
func (s *Service) Get(ctx context.Context, id api.ID) (*Venda, error) {
	var v Venda
	if err := s.client.Get(ctx, "/venda/"+id.String(), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Create submits a new sale and returns the persisted record.
func (s *Service) Create(ctx context.Context, data VendaData) (*Venda, error) {
	data.Normalize()
	if err := data.Validate(); err != nil {
		return nil, err
	}
	var created Venda
	if err := s.client.Post(ctx, "/venda", data, &created); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("venda_id", created.ID.String()).
		Str("forma_pagamento", string(data.FormaPagamento)).
		Msg("Venda created")
	return &created, nil
}

// Update rewrites an existing sale.
func (s *Service) Update(ctx context.Context, id api.ID, data VendaData) (*Venda, error) {
	data.Normalize()
	if err := data.Validate(); err != nil {
		return nil, err
	}
	var updated Venda
	if err := s.client.Put(ctx, "/venda/"+id.String(), data, &updated); err != nil {
		return nil, err
	}
	s.log.Info().Str("venda_id", id.String()).Msg("Venda updated")
	return &updated, nil
}

// Delete removes a sale.
func (s *Service) Delete(ctx context.Context, id api.ID) error {
	if err := s.client.Delete(ctx, "/venda/"+id.String()); err != nil {
		return err
	}
	s.log.Info().Str("venda_id", id.String()).Msg("Venda deleted")
	return nil
}
