package comissao

import (
	"context"
	"encoding/json"
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

func TestCreateValidation(t *testing.T) {
	s := NewService(nil)

	err := s.Create(context.Background(), Payload{IdVenda: 1})
	assert.ErrorIs(t, err, ErrNoProfissionais)

	err = s.Create(context.Background(), Payload{
		IdVenda:       1,
		Profissionais: []ProfissionalCargos{{IdProfissional: 2}},
	})
	assert.ErrorIs(t, err, ErrNoProfissionais)
}

func TestCreatePostsPayload(t *testing.T) {
	var got Payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/comissao/com-cargo", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewService(testClient(srv))
	err := s.Create(context.Background(), Payload{
		IdVenda: 7,
		Profissionais: []ProfissionalCargos{
			{IdProfissional: 2, IdsCargos: []int{1, 3}},
			{IdProfissional: 5, IdsCargos: []int{1}},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 7, got.IdVenda)
	require.Len(t, got.Profissionais, 2)
	assert.Equal(t, []int{1, 3}, got.Profissionais[0].IdsCargos)
}

func TestListByVendaPerSaleEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/comissao/venda/7", r.URL.Path)
		json.NewEncoder(w).Encode([]Comissao{{ID: "1", IdVenda: 7, IdProfissional: 2}})
	}))
	defer srv.Close()

	s := NewService(testClient(srv))
	got, err := s.ListByVenda(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].IdVenda)
}

func TestListByVendaFallbackFiltersFullListing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/comissao/venda/7":
			http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
		case "/comissao":
			json.NewEncoder(w).Encode([]Comissao{
				{ID: "1", IdVenda: 7, IdProfissional: 2},
				{ID: "2", IdVenda: 9, IdProfissional: 2},
				{ID: "3", IdVenda: 7, IdProfissional: 5},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	s := NewService(testClient(srv))
	got, err := s.ListByVenda(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, api.ID("1"), got[0].ID)
	assert.Equal(t, api.ID("3"), got[1].ID)
}

func TestListByVendaRealErrorIsNotSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewService(testClient(srv))
	_, err := s.ListByVenda(context.Background(), 7)
	assert.Error(t, err)
}

func TestReplaceDeletesThenRecreates(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
		}
	}))
	defer srv.Close()

	s := NewService(testClient(srv))
	err := s.Replace(context.Background(), 7, []ProfissionalCargos{{IdProfissional: 2, IdsCargos: []int{1}}})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"DELETE /comissao/venda/7",
		"POST /comissao/com-cargo",
	}, seen)
}

func TestReplaceSurvivesFailedDelete(t *testing.T) {
	var posted bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
			return
		}
		posted = true
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	s := NewService(testClient(srv))
	err := s.Replace(context.Background(), 7, []ProfissionalCargos{{IdProfissional: 2, IdsCargos: []int{1}}})
	require.NoError(t, err)
	assert.True(t, posted)
}

func TestConfigRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /config-comissao/imobiliaria/3":
			w.Write([]byte(`[{"id":1,"idImobiliaria":3,"idCargo":2,"percentual":2.5}]`))
		case "POST /config-comissao":
			var c Config
			require.NoError(t, json.NewDecoder(r.Body).Decode(&c))
			c.ID = 9
			json.NewEncoder(w).Encode(c)
		case "PUT /config-comissao/9":
			var c Config
			require.NoError(t, json.NewDecoder(r.Body).Decode(&c))
			json.NewEncoder(w).Encode(c)
		case "DELETE /config-comissao/9":
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	s := NewService(testClient(srv))
	ctx := context.Background()

	configs, err := s.ListConfig(ctx, 3)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "2.5", configs[0].Percentual.String())

	created, err := s.CreateConfig(ctx, Config{IdImobiliaria: 3, IdCargo: 2, Percentual: configs[0].Percentual})
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)

	_, err = s.UpdateConfig(ctx, *created)
	require.NoError(t, err)

	_, err = s.UpdateConfig(ctx, Config{})
	assert.Error(t, err)

	assert.NoError(t, s.DeleteConfig(ctx, 9))
}
