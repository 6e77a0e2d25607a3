package seq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCounters mimics the atomic counter semantics of the store.
type fakeCounters struct {
	values map[string]int64
	nexts  int
}

func newFakeCounters() *fakeCounters {
	return &fakeCounters{values: map[string]int64{}}
}

func (f *fakeCounters) Next(_ context.Context, name string) (int64, error) {
	f.nexts++
	f.values[name]++
	return f.values[name], nil
}

func (f *fakeCounters) RaiseTo(_ context.Context, name string, floor int64) error {
	if f.values[name] < floor {
		f.values[name] = floor
	}
	return nil
}

// fakeCollection holds the set of ids already present in the target.
type fakeCollection struct {
	ids map[int64]bool
}

func (f *fakeCollection) IDExists(_ context.Context, id int64) (bool, error) {
	return f.ids[id], nil
}

func (f *fakeCollection) MaxID(_ context.Context) (int64, error) {
	var max int64
	for id := range f.ids {
		if id > max {
			max = id
		}
	}
	return max, nil
}

func TestNextIDNormalPath(t *testing.T) {
	counters := newFakeCounters()
	coll := &fakeCollection{ids: map[int64]bool{}}
	a := New(counters)

	for want := int64(1); want <= 5; want++ {
		got, err := a.NextID(context.Background(), "laf_id", coll)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		coll.ids[got] = true
	}
	// one increment per allocation, no drift corrections
	assert.Equal(t, 5, counters.nexts)
}

func TestNextIDHealsDrift(t *testing.T) {
	counters := newFakeCounters()
	// Out-of-band inserts bypassed the allocator entirely.
	coll := &fakeCollection{ids: map[int64]bool{1: true, 2: true, 3: true, 7: true}}
	a := New(counters)

	got, err := a.NextID(context.Background(), "laf_id", coll)
	require.NoError(t, err)
	assert.Equal(t, int64(8), got)
	assert.False(t, coll.ids[got])
}

func TestNextIDUniqueAcrossInterleavedInserts(t *testing.T) {
	counters := newFakeCounters()
	coll := &fakeCollection{ids: map[int64]bool{}}
	a := New(counters)

	seen := map[int64]bool{}
	for i := 0; i < 20; i++ {
		got, err := a.NextID(context.Background(), "laf_id", coll)
		require.NoError(t, err)
		assert.False(t, seen[got], "id %d allocated twice", got)
		assert.False(t, coll.ids[got], "id %d already in collection", got)
		seen[got] = true
		coll.ids[got] = true

		// Every few allocations, slip an out-of-band id ahead of the counter.
		if i%4 == 0 {
			max, _ := coll.MaxID(context.Background())
			coll.ids[max+2] = true
		}
	}
}

// stuckCounters never advances past its fixed value.
type stuckCounters struct{}

func (stuckCounters) Next(context.Context, string) (int64, error)  { return 1, nil }
func (stuckCounters) RaiseTo(context.Context, string, int64) error { return nil }

func TestNextIDBoundedRetries(t *testing.T) {
	coll := &fakeCollection{ids: map[int64]bool{1: true}}
	a := New(stuckCounters{})

	_, err := a.NextID(context.Background(), "laf_id", coll)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no free id")
}
