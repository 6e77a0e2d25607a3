package taxonomy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/store"
)

type fakeTypes struct {
	docs  []*store.TypeDoc
	reads int
}

func (f *fakeTypes) All(context.Context) ([]*store.TypeDoc, error) {
	f.reads++
	return f.docs, nil
}
func (f *fakeTypes) Insert(context.Context, *store.TypeDoc) error { panic("unused") }
func (f *fakeTypes) DeleteByName(context.Context, string) error   { panic("unused") }

type fakeLocations struct {
	names []string
	reads int
}

func (f *fakeLocations) All(context.Context) ([]string, error) {
	f.reads++
	return f.names, nil
}
func (f *fakeLocations) Insert(context.Context, string) error       { panic("unused") }
func (f *fakeLocations) DeleteByName(context.Context, string) error { panic("unused") }

func typeDoc(name, letter string, visible bool) *store.TypeDoc {
	return &store.TypeDoc{ID: bson.NewObjectID(), Name: name, Letter: letter, Visible: visible}
}

func newTestCache(types *fakeTypes, locs *fakeLocations, ttl time.Duration) (*Cache, *time.Time) {
	c := NewCache(types, locs, ttl)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestResolveRoundTrip(t *testing.T) {
	types := &fakeTypes{docs: []*store.TypeDoc{
		typeDoc("Umbrellas", "U", true),
		typeDoc("Water Bottle", "W", true),
	}}
	c, _ := newTestCache(types, &fakeLocations{}, time.Hour)
	ctx := context.Background()

	id, err := c.ResolveTypeID(ctx, "Umbrellas")
	require.NoError(t, err)
	entry, err := c.ResolveType(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Umbrellas", entry.Name)
	assert.Equal(t, "U", entry.Letter)
	// both reads served from one snapshot
	assert.Equal(t, 1, types.reads)
}

func TestUnknownTypeIsNotFound(t *testing.T) {
	c, _ := newTestCache(&fakeTypes{}, &fakeLocations{}, time.Hour)
	_, err := c.ResolveTypeID(context.Background(), "Sousaphone")
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestHiddenTypesResolveButAreNotListed(t *testing.T) {
	types := &fakeTypes{docs: []*store.TypeDoc{
		typeDoc("Attire", "A", true),
		typeDoc("Retired", "R", false),
	}}
	c, _ := newTestCache(types, &fakeLocations{}, time.Hour)
	ctx := context.Background()

	visible, err := c.VisibleTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Attire"}, visible)

	// items created before a type was hidden must keep rendering
	id, err := c.ResolveTypeID(ctx, "Retired")
	require.NoError(t, err)
	entry, err := c.ResolveType(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "R", entry.Letter)
}

func TestLocationsStaleUntilTTL(t *testing.T) {
	locs := &fakeLocations{names: []string{"Library", "Gym"}}
	c, now := newTestCache(&fakeTypes{}, locs, time.Hour)
	ctx := context.Background()

	got, err := c.Locations(ctx)
	require.NoError(t, err)
	assert.Contains(t, got, "Gym")

	// delete out from under the cache: still served until the TTL lapses
	locs.names = []string{"Library"}
	got, err = c.Locations(ctx)
	require.NoError(t, err)
	assert.Contains(t, got, "Gym")
	assert.Equal(t, 1, locs.reads)

	*now = now.Add(time.Hour + time.Minute)
	got, err = c.Locations(ctx)
	require.NoError(t, err)
	assert.NotContains(t, got, "Gym")
	assert.Equal(t, 2, locs.reads)

	ok, err := c.HasLocation(ctx, "Library")
	require.NoError(t, err)
	assert.True(t, ok)
}
