// Package overlay owns the secondary text elements attached to money-display
// surfaces.
package overlay

import (
	"crypto/rand"
	"time"

	"github.com/go-kit/log"
	"github.com/oklog/ulid/v2"
	cache "github.com/patrickmn/go-cache"
)

// Anchor position of an overlay relative to its owning surface
type Anchor int

const (
	AnchorBelow Anchor = iota
	AnchorAbove
)

// DefaultColor the fixed default style applied to new overlays
const DefaultColor = "|cFFFFD700"

// Entry one live overlay text object. At most one exists per surface key and
// entries are never destroyed; disabling only blanks the displayed text.
type Entry struct {
	ID      ulid.ULID
	Surface string
	Anchor  Anchor
	Color   string
	Text    string
}

// Registry maps surface keys to their overlay entries
type Registry struct {
	// entries keyed by surface identity; entries never expire
	entries *cache.Cache

	logger log.Logger
}

// NewRegistry constructs an empty Registry
func NewRegistry(logger log.Logger) *Registry {
	return &Registry{
		entries: cache.New(cache.NoExpiration, 0),
		logger:  logger,
	}
}

// GetOrCreate returns the entry for surface, constructing it on first use with
// the default anchor and style.
func (r *Registry) GetOrCreate(surface string) *Entry {
	if v, ok := r.entries.Get(surface); ok {
		return v.(*Entry)
	}

	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		id = ulid.ULID{}
	}
	entry := &Entry{
		ID:      id,
		Surface: surface,
		Anchor:  AnchorBelow,
		Color:   DefaultColor,
	}
	r.entries.Set(surface, entry, cache.NoExpiration)
	r.logger.Log("msg", "overlay created", "surface", surface, "id", id)
	return entry
}

// SetText overwrites the displayed text for surface, creating the entry if it
// does not exist yet. Repeated calls with the same text are idempotent.
func (r *Registry) SetText(surface, text string) {
	r.GetOrCreate(surface).Text = text
}

// Clear blanks the displayed text for surface. A surface that has never been
// updated has no entry and clearing it is a no-op.
func (r *Registry) Clear(surface string) {
	if v, ok := r.entries.Get(surface); ok {
		v.(*Entry).Text = ""
	}
}

// Get returns the entry for surface if one has been created
func (r *Registry) Get(surface string) (*Entry, bool) {
	v, ok := r.entries.Get(surface)
	if !ok {
		return nil, false
	}
	return v.(*Entry), true
}

// Len the number of live entries
func (r *Registry) Len() int {
	return r.entries.ItemCount()
}
