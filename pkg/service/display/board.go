package display

import (
	"html/template"
	"sync"

	"github.com/secmon-lab/ajaxdemo/pkg/domain/interfaces"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
)

// Board is an in-memory display made of named regions. Writes from
// concurrent actions are memory safe but not ordered: the last writer wins.
type Board struct {
	mu      sync.RWMutex
	regions map[types.RegionID]*Region
}

// Region is a snapshot of a display region
type Region struct {
	ID      types.RegionID `json:"id"`
	Content template.HTML  `json:"content"`
	Visible bool           `json:"visible"`
}

var _ interfaces.Display = (*Board)(nil)

// NewBoard creates a new empty Board
func NewBoard() *Board {
	return &Board{
		regions: make(map[types.RegionID]*Region),
	}
}

// region returns the region for id, creating it if needed. Caller must hold the write lock.
func (b *Board) region(id types.RegionID) *Region {
	r, ok := b.regions[id]
	if !ok {
		r = &Region{ID: id}
		b.regions[id] = r
	}
	return r
}

// SetContent replaces the whole content of a region
func (b *Board) SetContent(id types.RegionID, markup template.HTML) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.region(id).Content = markup
}

// Show makes a region visible
func (b *Board) Show(id types.RegionID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.region(id).Visible = true
}

// Hide makes a region invisible
func (b *Board) Hide(id types.RegionID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.region(id).Visible = false
}

// Get returns a snapshot of a region. Unknown regions are empty and hidden.
func (b *Board) Get(id types.RegionID) Region {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if r, ok := b.regions[id]; ok {
		return *r
	}
	return Region{ID: id}
}
