package services

import (
	"sync"
	"time"

	"toko-pos/models"
	"toko-pos/utils"
)

// GridView is the paged, filtered projection of the catalog backing the POS
// product selector. Changing the keyword snaps back to page 1; a page past
// the end clamps to the last page.
type GridView struct {
	catalog  *Catalog
	pageSize int

	mu      sync.Mutex
	keyword string
	page    int
}

func NewGridView(catalog *Catalog, pageSize int) *GridView {
	return &GridView{catalog: catalog, pageSize: pageSize, page: 1}
}

func (v *GridView) SetKeyword(keyword string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if keyword != v.keyword {
		v.keyword = keyword
		v.page = 1
	}
}

func (v *GridView) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if page < 1 {
		page = 1
	}
	v.page = page
}

// Current recomputes the view against the latest catalog snapshot.
func (v *GridView) Current() (items []models.Product, page, totalPages, totalItems int) {
	v.mu.Lock()
	keyword, requested := v.keyword, v.page
	v.mu.Unlock()

	filtered := v.catalog.Available(keyword)

	page, totalPages, start, end := utils.Paginate(len(filtered), requested, v.pageSize)

	v.mu.Lock()
	v.page = page
	v.mu.Unlock()

	return filtered[start:end], page, totalPages, len(filtered)
}

// Session is the per-operator POS state: one cart and one grid view with an
// explicit lifecycle, instead of the free-standing globals the flow would
// otherwise accrete.
type Session struct {
	Operator  string
	Cart      *Cart
	Grid      *GridView
	CreatedAt time.Time
}

type SessionManager struct {
	catalog  *Catalog
	pageSize int

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager(catalog *Catalog, pageSize int) *SessionManager {
	return &SessionManager{
		catalog:  catalog,
		pageSize: pageSize,
		sessions: make(map[string]*Session),
	}
}

// Get returns the operator's session, creating it on first use.
func (m *SessionManager) Get(operator string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[operator]; ok {
		return s
	}

	s := &Session{
		Operator:  operator,
		Cart:      NewCart(m.catalog),
		Grid:      NewGridView(m.catalog, m.pageSize),
		CreatedAt: time.Now(),
	}
	m.sessions[operator] = s
	return s
}

// End disposes the operator's session and its cart.
func (m *SessionManager) End(operator string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, operator)
}
