package parcela

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
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

// requestLog records method+path of every request, concurrency-safe.
type requestLog struct {
	mu   sync.Mutex
	seen []string
}

func (l *requestLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seen = append(l.seen, r.Method+" "+r.URL.Path)
}

func (l *requestLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.seen...)
}

func TestCreateAllSequentialAscending(t *testing.T) {
	var log requestLog
	var bodies []Parcela
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/parcela", r.URL.Path)

		var p Parcela
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		bodies = append(bodies, p)
		p.ID = 100 + p.NumeroParcela
		json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	// Deliberately out of order; CreateAll must persist ascending.
	parcelas := []Parcela{
		{NumeroParcela: 3, ValorParcela: dec("33.34")},
		{NumeroParcela: 1, ValorParcela: dec("33.33")},
		{NumeroParcela: 2, ValorParcela: dec("33.33")},
	}

	svc := NewService(testClient(srv))
	require.NoError(t, svc.CreateAll(context.Background(), 42, parcelas))

	require.Len(t, bodies, 3)
	for i, p := range bodies {
		assert.Equal(t, i+1, p.NumeroParcela)
		assert.Equal(t, 42, p.IdVenda)
		assert.Zero(t, p.ID, "draft ids must not be sent")
	}
}

func TestCreateAllStopsOnFailure(t *testing.T) {
	var posts int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts++
		if posts == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
			return
		}
		var p Parcela
		json.NewDecoder(r.Body).Decode(&p)
		json.NewEncoder(w).Encode(p)
	}))
	defer srv.Close()

	parcelas := Generate(GenerateInput{
		ValorTotal:  dec("300.00"),
		QtdParcelas: 3,
		DataVenda:   time.Now(),
		Parcelado:   true,
	})

	svc := NewService(testClient(srv))
	err := svc.CreateAll(context.Background(), 42, parcelas)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parcela 2")
	// The first installment stays persisted; there is no rollback.
	assert.Equal(t, 2, posts)
}

func TestReplaceAllDeletesThenRecreates(t *testing.T) {
	var log requestLog
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.add(r)
		switch {
		case r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]Parcela{
				{ID: 5, NumeroParcela: 1, IdVenda: 42},
				{ID: 6, NumeroParcela: 2, IdVenda: 42},
			})
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPost:
			var p Parcela
			json.NewDecoder(r.Body).Decode(&p)
			json.NewEncoder(w).Encode(p)
		}
	}))
	defer srv.Close()

	draft := Generate(GenerateInput{
		ValorTotal:  dec("900.00"),
		QtdParcelas: 3,
		DataVenda:   time.Now(),
		Parcelado:   true,
	})

	svc := NewService(testClient(srv))
	require.NoError(t, svc.ReplaceAll(context.Background(), 42, draft))

	assert.Equal(t, []string{
		"GET /parcela/venda/42",
		"DELETE /parcela/5",
		"DELETE /parcela/6",
		"POST /parcela",
		"POST /parcela",
		"POST /parcela",
	}, log.all())
}

func TestLoadOrGenerate(t *testing.T) {
	t.Run("prefers persisted parcelas", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]Parcela{{ID: 7, NumeroParcela: 1, IdVenda: 42}})
		}))
		defer srv.Close()

		svc := NewService(testClient(srv))
		parcelas, err := svc.LoadOrGenerate(context.Background(), GenerateInput{
			VendaID: 42, ValorTotal: dec("100"), QtdParcelas: 2, DataVenda: time.Now(), Parcelado: true,
		})
		require.NoError(t, err)
		require.Len(t, parcelas, 1)
		assert.Equal(t, 7, parcelas[0].ID)
	})

	t.Run("generates when the sale has none", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode([]Parcela{})
		}))
		defer srv.Close()

		svc := NewService(testClient(srv))
		parcelas, err := svc.LoadOrGenerate(context.Background(), GenerateInput{
			VendaID: 42, ValorTotal: dec("100"), QtdParcelas: 2, DataVenda: time.Now(), Parcelado: true,
		})
		require.NoError(t, err)
		assert.Len(t, parcelas, 2)
	})

	t.Run("generates when loading fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		svc := NewService(testClient(srv))
		parcelas, err := svc.LoadOrGenerate(context.Background(), GenerateInput{
			VendaID: 42, ValorTotal: dec("100"), QtdParcelas: 2, DataVenda: time.Now(), Parcelado: true,
		})
		require.NoError(t, err)
		assert.Len(t, parcelas, 2)
	})
}

func TestSetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]Parcela{
				{ID: 5, NumeroParcela: 1, Status: StatusPendente, IdVenda: 42},
				{ID: 6, NumeroParcela: 2, Status: StatusPendente, IdVenda: 42},
			})
		case http.MethodPut:
			require.Equal(t, "/parcela/6", r.URL.Path)
			var p Parcela
			json.NewDecoder(r.Body).Decode(&p)
			json.NewEncoder(w).Encode(p)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer srv.Close()

	svc := NewService(testClient(srv))

	updated, err := svc.SetStatus(context.Background(), 42, 2, StatusPago)
	require.NoError(t, err)
	assert.Equal(t, StatusPago, updated.Status)

	_, err = svc.SetStatus(context.Background(), 42, 9, StatusPago)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.SetStatus(context.Background(), 42, 1, Status("QUITADA"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
