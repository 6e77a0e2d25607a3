package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/store"
)

// fakeStore is an in-memory store.Store for service tests. Find matches only
// the archived, viewed and _id keys; richer filter shapes are covered by the
// query package's own tests.
type fakeStore struct {
	items    *fakeItems
	reports  *fakeReports
	types    *fakeTypes
	locs     *fakeLocations
	counters *fakeCounters
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:    &fakeItems{docs: map[int64]*store.ItemDoc{}},
		reports:  &fakeReports{docs: map[string]*store.ReportDoc{}},
		types:    &fakeTypes{},
		locs:     &fakeLocations{},
		counters: &fakeCounters{values: map[string]int64{}},
	}
}

func (f *fakeStore) Items() store.Items         { return f.items }
func (f *fakeStore) Reports() store.Reports     { return f.reports }
func (f *fakeStore) Types() store.Types         { return f.types }
func (f *fakeStore) Locations() store.Locations { return f.locs }
func (f *fakeStore) Counters() store.Counters   { return f.counters }
func (f *fakeStore) Ping(context.Context) error { return nil }

type fakeItems struct {
	docs    map[int64]*store.ItemDoc
	filters []bson.M
}

func (f *fakeItems) Insert(_ context.Context, doc *store.ItemDoc) error {
	if _, ok := f.docs[doc.ID]; ok {
		return fmt.Errorf("duplicate item id %d", doc.ID)
	}
	f.docs[doc.ID] = doc
	return nil
}

func (f *fakeItems) FindByID(_ context.Context, id int64) (*store.ItemDoc, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: item %d", model.ErrNotFound, id)
	}
	return doc, nil
}

func (f *fakeItems) Find(_ context.Context, filter bson.M, limit int) ([]*store.ItemDoc, error) {
	f.filters = append(f.filters, filter)
	var out []*store.ItemDoc
	for _, doc := range f.docs {
		if archived, ok := filter["archived"].(bool); ok && doc.Archived != archived {
			continue
		}
		if id, ok := filter["_id"].(int64); ok && doc.ID != id {
			continue
		}
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeItems) Update(_ context.Context, id int64, set bson.M) error {
	doc, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("%w: item %d", model.ErrNotFound, id)
	}
	for k, v := range set {
		switch k {
		case "type_id":
			doc.TypeID = v.(bson.ObjectID)
		case "location":
			doc.Location = v.(string)
		case "date":
			doc.Date = v.(string)
		case "description":
			doc.Description = v.(string)
		case "found":
			doc.Found = v.(bool)
		case "archived":
			doc.Archived = v.(bool)
		case "name":
			s := v.(string)
			doc.Name = &s
		case "email":
			s := v.(string)
			doc.Email = &s
		case "returned":
			s := v.(string)
			doc.Returned = &s
		case "updated":
			doc.Updated = v.(time.Time)
		default:
			return fmt.Errorf("fake store: unexpected set key %q", k)
		}
	}
	return nil
}

func (f *fakeItems) ArchiveMany(_ context.Context, ids []int64, now time.Time) error {
	for _, id := range ids {
		if doc, ok := f.docs[id]; ok {
			doc.Archived = true
			doc.Updated = now
		}
	}
	return nil
}

func (f *fakeItems) IDExists(_ context.Context, id int64) (bool, error) {
	_, ok := f.docs[id]
	return ok, nil
}

func (f *fakeItems) MaxID(context.Context) (int64, error) {
	var max int64
	for id := range f.docs {
		if id > max {
			max = id
		}
	}
	return max, nil
}

type fakeReports struct {
	docs map[string]*store.ReportDoc
}

func (f *fakeReports) Insert(_ context.Context, doc *store.ReportDoc) (string, error) {
	doc.ID = bson.NewObjectID()
	f.docs[doc.ID.Hex()] = doc
	return doc.ID.Hex(), nil
}

func (f *fakeReports) FindByID(_ context.Context, id string) (*store.ReportDoc, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: report %s", model.ErrNotFound, id)
	}
	return doc, nil
}

func (f *fakeReports) Find(_ context.Context, filter bson.M, limit int) ([]*store.ReportDoc, error) {
	var out []*store.ReportDoc
	for _, doc := range f.docs {
		if archived, ok := filter["archived"].(bool); ok && doc.Archived != archived {
			continue
		}
		if viewed, ok := filter["viewed"].(bool); ok && doc.Viewed != viewed {
			continue
		}
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeReports) Update(_ context.Context, id string, set bson.M) error {
	doc, ok := f.docs[id]
	if !ok {
		return fmt.Errorf("%w: report %s", model.ErrNotFound, id)
	}
	for k, v := range set {
		switch k {
		case "name":
			doc.Name = v.(string)
		case "email":
			doc.Email = v.(string)
		case "type_id":
			doc.TypeID = v.(bson.ObjectID)
		case "location":
			doc.Locations = v.([]string)
		case "date":
			doc.Date = v.(string)
		case "description":
			doc.Description = v.(string)
		case "found":
			doc.Found = v.(bool)
		case "archived":
			doc.Archived = v.(bool)
		case "viewed":
			doc.Viewed = v.(bool)
		case "returned":
			s := v.(string)
			doc.Returned = &s
		case "updated":
			doc.Updated = v.(time.Time)
		default:
			return fmt.Errorf("fake store: unexpected set key %q", k)
		}
	}
	return nil
}

func (f *fakeReports) CountUnviewed(context.Context) (int64, error) {
	var n int64
	for _, doc := range f.docs {
		if !doc.Viewed && !doc.Archived {
			n++
		}
	}
	return n, nil
}

type fakeTypes struct {
	docs []*store.TypeDoc
}

func (f *fakeTypes) All(context.Context) ([]*store.TypeDoc, error) { return f.docs, nil }

func (f *fakeTypes) Insert(_ context.Context, doc *store.TypeDoc) error {
	if doc.ID.IsZero() {
		doc.ID = bson.NewObjectID()
	}
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeTypes) DeleteByName(_ context.Context, name string) error {
	for i, doc := range f.docs {
		if doc.Name == name {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: laf type %q", model.ErrNotFound, name)
}

type fakeLocations struct {
	names []string
}

func (f *fakeLocations) All(context.Context) ([]string, error) { return f.names, nil }

func (f *fakeLocations) Insert(_ context.Context, name string) error {
	f.names = append(f.names, name)
	return nil
}

func (f *fakeLocations) DeleteByName(_ context.Context, name string) error {
	for i, n := range f.names {
		if n == name {
			f.names = append(f.names[:i], f.names[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: location %q", model.ErrNotFound, name)
}

type fakeCounters struct {
	values map[string]int64
}

func (f *fakeCounters) Next(_ context.Context, name string) (int64, error) {
	f.values[name]++
	return f.values[name], nil
}

func (f *fakeCounters) RaiseTo(_ context.Context, name string, floor int64) error {
	if f.values[name] < floor {
		f.values[name] = floor
	}
	return nil
}
