// Package taxonomy caches the administrator-managed type and location sets
// in front of the store, bounded by a TTL.
package taxonomy

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/store"
)

// Cache serves taxonomy lookups from an in-memory snapshot that is rebuilt
// lazily once it is older than the TTL. Writers do not invalidate it; a
// reader may observe data up to one TTL stale. Refresh takes no lock:
// concurrent refreshes are idempotent full reads and the last snapshot swap
// wins.
type Cache struct {
	types     store.Types
	locations store.Locations
	ttl       time.Duration
	now       func() time.Time

	typeSnap atomic.Pointer[typeSnapshot]
	locSnap  atomic.Pointer[locationSnapshot]
}

type typeSnapshot struct {
	refreshed time.Time
	byName    map[string]model.TypeEntry
	byID      map[string]model.TypeEntry
	visible   []string
}

type locationSnapshot struct {
	refreshed time.Time
	names     []string
	set       map[string]bool
}

func NewCache(types store.Types, locations store.Locations, ttl time.Duration) *Cache {
	return &Cache{types: types, locations: locations, ttl: ttl, now: time.Now}
}

// ResolveTypeID maps a type name to its internal id. Hidden types resolve
// too. An unknown name is a client error, not a cache fault.
func (c *Cache) ResolveTypeID(ctx context.Context, name string) (string, error) {
	snap, err := c.freshTypes(ctx)
	if err != nil {
		return "", err
	}
	entry, ok := snap.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: laf type %q", model.ErrNotFound, name)
	}
	return entry.ID, nil
}

// ResolveType maps an internal type id back to its entry.
func (c *Cache) ResolveType(ctx context.Context, id string) (model.TypeEntry, error) {
	snap, err := c.freshTypes(ctx)
	if err != nil {
		return model.TypeEntry{}, err
	}
	entry, ok := snap.byID[id]
	if !ok {
		return model.TypeEntry{}, fmt.Errorf("%w: laf type id %s", model.ErrNotFound, id)
	}
	return entry, nil
}

// VisibleTypes lists the type names offered on public forms. Hidden types
// are excluded here but remain valid on existing items.
func (c *Cache) VisibleTypes(ctx context.Context) ([]string, error) {
	snap, err := c.freshTypes(ctx)
	if err != nil {
		return nil, err
	}
	return snap.visible, nil
}

// Locations lists the known location names.
func (c *Cache) Locations(ctx context.Context) ([]string, error) {
	snap, err := c.freshLocations(ctx)
	if err != nil {
		return nil, err
	}
	return snap.names, nil
}

// HasLocation reports whether name is a known location.
func (c *Cache) HasLocation(ctx context.Context, name string) (bool, error) {
	snap, err := c.freshLocations(ctx)
	if err != nil {
		return false, err
	}
	return snap.set[name], nil
}

func (c *Cache) freshTypes(ctx context.Context) (*typeSnapshot, error) {
	if snap := c.typeSnap.Load(); snap != nil && c.now().Sub(snap.refreshed) < c.ttl {
		return snap, nil
	}
	docs, err := c.types.All(ctx)
	if err != nil {
		return nil, err
	}
	snap := &typeSnapshot{
		refreshed: c.now(),
		byName:    make(map[string]model.TypeEntry, len(docs)),
		byID:      make(map[string]model.TypeEntry, len(docs)),
	}
	for _, doc := range docs {
		entry := model.TypeEntry{
			ID:      doc.ID.Hex(),
			Name:    doc.Name,
			Letter:  doc.Letter,
			Visible: doc.Visible,
		}
		snap.byName[entry.Name] = entry
		snap.byID[entry.ID] = entry
		if entry.Visible {
			snap.visible = append(snap.visible, entry.Name)
		}
	}
	c.typeSnap.Store(snap)
	return snap, nil
}

func (c *Cache) freshLocations(ctx context.Context) (*locationSnapshot, error) {
	if snap := c.locSnap.Load(); snap != nil && c.now().Sub(snap.refreshed) < c.ttl {
		return snap, nil
	}
	names, err := c.locations.All(ctx)
	if err != nil {
		return nil, err
	}
	snap := &locationSnapshot{
		refreshed: c.now(),
		names:     names,
		set:       make(map[string]bool, len(names)),
	}
	for _, n := range names {
		snap.set[n] = true
	}
	c.locSnap.Store(snap)
	return snap, nil
}
