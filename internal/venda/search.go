// Package venda implements the sale search and persistence client.
//
// Searching prefers the API's paginated /venda/search endpoint. Deployments
// that predate it answer 404 (or deny it with 403); in that case the search
// falls back to the plain /venda listing, applies the filter criteria
// locally and paginates the result in memory, so callers get the same page
// shape either way.
package venda

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"imobigest/internal/api"
	"imobigest/internal/logger"
)

// Page is one page of search results.
type Page struct {
	Vendas []Venda

	// TotalItems is the server's total when the search endpoint answered,
	// or the length of the locally filtered collection in fallback mode.
	TotalItems int

	// CurrentPage is 1-based.
	CurrentPage int
	PageSize    int
}

// TotalPages derives the page count from the total and the page size.
func (p *Page) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.TotalItems + p.PageSize - 1) / p.PageSize
}

// searchResponse is the Spring-style payload of /venda/search.
type searchResponse struct {
	Content  []Venda `json:"content"`
	Pageable struct {
		PageNumber int `json:"pageNumber"`
	} `json:"pageable"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

// Searcher owns the applied filter criteria and the current page of a sale
// listing. Applying filters resets to page 1; requesting a page keeps the
// filters; Refresh re-runs the last query unchanged.
//
// Every search gets a new generation number and only the newest
// generation's response is committed to the controller state, so a slow
// response can never overwrite the result of a later request. All methods
// are safe for concurrent use.
type Searcher struct {
	client   *api.Client
	pageSize int
	log      zerolog.Logger

	mu      sync.Mutex
	gen     uint64
	filters Filters
	page    int
	last    *Page
}

// NewSearcher creates a Searcher with the given page size.
func NewSearcher(client *api.Client, pageSize int) *Searcher {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Searcher{
		client:   client,
		pageSize: pageSize,
		page:     1,
		log:      logger.WithComponent("venda-search"),
	}
}

// ApplyFilters replaces the criteria, resets to page 1 and searches.
func (s *Searcher) ApplyFilters(ctx context.Context, f Filters) (*Page, error) {
	s.mu.Lock()
	s.filters = f
	s.page = 1
	gen := s.nextGen()
	s.mu.Unlock()

	return s.search(ctx, f, 1, gen)
}

// ClearFilters empties the criteria, resets to page 1 and searches.
func (s *Searcher) ClearFilters(ctx context.Context) (*Page, error) {
	return s.ApplyFilters(ctx, Filters{})
}

// SetPage requests another page of the current query. Page numbers are
// 1-based; values below 1 are clamped.
func (s *Searcher) SetPage(ctx context.Context, page int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.page = page
	f := s.filters
	gen := s.nextGen()
	s.mu.Unlock()

	return s.search(ctx, f, page, gen)
}

// Refresh re-issues the last query with unchanged filters and page. Call it
// after a mutation so the listing reflects persisted changes.
func (s *Searcher) Refresh(ctx context.Context) (*Page, error) {
	s.mu.Lock()
	f := s.filters
	page := s.page
	gen := s.nextGen()
	s.mu.Unlock()

	return s.search(ctx, f, page, gen)
}

// Filters returns the applied criteria.
func (s *Searcher) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// CurrentPage returns the requested page number.
func (s *Searcher) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Last returns the page from the newest settled search, or nil before the
// first one. Superseded responses are never visible here.
func (s *Searcher) Last() *Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// nextGen must be called with the mutex held.
func (s *Searcher) nextGen() uint64 {
	s.gen++
	return s.gen
}

func (s *Searcher) search(ctx context.Context, f Filters, page int, gen uint64) (*Page, error) {
	result, err := s.fetch(ctx, f, page)
	if err != nil {
		// Failed searches clear the listing.
		s.commit(gen, &Page{CurrentPage: page, PageSize: s.pageSize})
		return nil, err
	}
	s.commit(gen, result)
	return result, nil
}

func (s *Searcher) fetch(ctx context.Context, f Filters, page int) (*Page, error) {
	query := f.QueryString(page, s.pageSize)

	var remote searchResponse
	err := s.client.Get(ctx, "/venda/search?"+query, &remote)
	if err == nil {
		return &Page{
			Vendas:      remote.Content,
			TotalItems:  remote.TotalElements,
			CurrentPage: remote.Pageable.PageNumber + 1,
			PageSize:    s.pageSize,
		}, nil
	}

	// Only an absent (404) or denied (403) search endpoint triggers the
	// local fallback; everything else is a real failure.
	if !api.IsFallbackTrigger(err) {
		return nil, err
	}

	s.log.Debug().
		Err(err).
		Msg("Search endpoint unavailable, falling back to local filtering")
	if ignored := f.LocalOnlyIgnored(); len(ignored) > 0 {
		s.log.Debug().
			Strs("ignored_filters", ignored).
			Msg("Criteria not evaluable locally were skipped")
	}

	return s.fetchLocal(ctx, f, page)
}

// fetchLocal loads the full unfiltered collection and filters and paginates
// it in memory.
func (s *Searcher) fetchLocal(ctx context.Context, f Filters, page int) (*Page, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, "/venda", &raw); err != nil {
		return nil, err
	}

	filtered := f.Filter(decodeVendaList(raw))

	start := (page - 1) * s.pageSize
	end := start + s.pageSize
	var items []Venda
	if start < len(filtered) {
		if end > len(filtered) {
			end = len(filtered)
		}
		items = filtered[start:end]
	}

	return &Page{
		Vendas:      items,
		TotalItems:  len(filtered),
		CurrentPage: page,
		PageSize:    s.pageSize,
	}, nil
}

// commit applies the result to the controller state unless a newer search
// has started since this one was issued.
func (s *Searcher) commit(gen uint64, page *Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		s.log.Debug().
			Uint64("generation", gen).
			Uint64("current", s.gen).
			Msg("Discarding superseded search response")
		return
	}
	s.last = page
}

// decodeVendaList tolerates the listing endpoint's payload variants:
// {"vendas": […]}, {"data": […]} or a bare array.
func decodeVendaList(raw json.RawMessage) []Venda {
	var wrapped struct {
		Vendas []Venda `json:"vendas"`
		Data   []Venda `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil {
		if wrapped.Vendas != nil {
			return wrapped.Vendas
		}
		if wrapped.Data != nil {
			return wrapped.Data
		}
	}
	var bare []Venda
	if err := json.Unmarshal(raw, &bare); err == nil {
		return bare
	}
	return nil
}
