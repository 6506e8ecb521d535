package products

import (
	"sync"

	"github.com/samber/lo"

	"github.com/odyssey-erp/odyssey-admin/internal/query"
	"github.com/odyssey-erp/odyssey-admin/internal/store"
)

// PageSize is the number of cards per catalogue page.
const PageSize = 6

const (
	filterCategory = "category"
	filterStock    = "stock"
)

var listSpec = query.Spec[Product]{
	PageSize: PageSize,
	SearchFields: []func(Product) string{
		func(p Product) string { return p.Name },
		func(p Product) string { return p.SKU },
	},
	Filters: map[string]query.Predicate[Product]{
		filterCategory: query.Equals(func(p Product) string { return p.Category }),
		filterStock: func(p Product, value string) bool {
			switch value {
			case StockIn:
				return p.InStock
			case StockOut:
				return !p.InStock
			default:
				return true
			}
		},
	},
	Sorts: map[string]query.Compare[Product]{
		"name":   query.Lexical(func(p Product) string { return p.Name }),
		"price":  query.Ordered(func(p Product) float64 { return p.Price }),
		"rating": query.Ordered(func(p Product) float64 { return p.Rating }),
	},
}

// Store owns a workspace's catalogue and its listing state.
type Store struct {
	items *store.Collection[Product]
	query *store.QueryState

	mu   sync.Mutex
	view string
}

// NewStore seeds a store listing the catalogue in collection order until a
// sort column is chosen.
func NewStore(seed []Product) *Store {
	return &Store{
		items: store.New("products", seed),
		query: store.NewQueryState(query.State{}),
		view:  ViewGrid,
	}
}

// Subscribe registers a listener for every change.
func (s *Store) Subscribe(fn store.Listener) func() {
	return s.items.Subscribe(fn)
}

// All returns the catalogue in collection order.
func (s *Store) All() []Product {
	return s.items.Snapshot()
}

// Query returns the current listing state.
func (s *Store) Query() query.State {
	return s.query.Get()
}

// Categories returns "All" followed by each category in first-seen order.
func (s *Store) Categories() []string {
	cats := lo.Uniq(lo.Map(s.items.Snapshot(), func(p Product, _ int) string { return p.Category }))
	return append([]string{query.All}, cats...)
}

// SetSearch sets the free-text search over name and SKU.
func (s *Store) SetSearch(text string) {
	s.setQuery(func(st query.State) query.State { st.Search = text; return st })
}

// SetCategoryFilter restricts the listing to one category.
func (s *Store) SetCategoryFilter(value string) {
	s.setQuery(func(st query.State) query.State { return st.WithFilter(filterCategory, value) })
}

// SetStockFilter takes All, In or Out.
func (s *Store) SetStockFilter(value string) {
	s.setQuery(func(st query.State) query.State { return st.WithFilter(filterStock, value) })
}

// SetSort selects the sort column, toggling direction on repeat. Fields
// the listing cannot sort by are ignored.
func (s *Store) SetSort(field string) {
	if !listSpec.Sortable(field) {
		return
	}
	s.setQuery(func(st query.State) query.State { return st.ToggleSort(field) })
}

// SetPage selects the page.
func (s *Store) SetPage(page int) {
	s.setQuery(func(st query.State) query.State { st.Page = page; return st })
}

// SetView switches between grid and table; other values are ignored.
func (s *Store) SetView(mode string) {
	if mode != ViewGrid && mode != ViewTable {
		return
	}
	s.mu.Lock()
	s.view = mode
	s.mu.Unlock()
	s.items.Notify(store.Event{Op: store.OpQuery})
}

// ViewMode returns grid or table.
func (s *Store) ViewMode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Store) setQuery(fn func(query.State) query.State) {
	s.query.Update(fn)
	s.items.Notify(store.Event{Op: store.OpQuery})
}

// View runs the listing pipeline for the current state.
func (s *Store) View() query.Result[Product] {
	return query.Run(s.items.Snapshot(), listSpec, s.query.Get())
}

// Stats computes the KPI cards over the whole catalogue.
func (s *Store) Stats() Stats {
	all := s.items.Snapshot()
	stats := Stats{
		Total:   len(all),
		InStock: lo.CountBy(all, func(p Product) bool { return p.InStock }),
	}
	if len(all) > 0 {
		stats.AvgPrice = lo.SumBy(all, func(p Product) float64 { return p.Price }) / float64(len(all))
	}
	return stats
}
