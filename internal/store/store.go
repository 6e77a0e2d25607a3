package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/.
type Store interface {
	Items() Items
	Reports() Reports
	Types() Types
	Locations() Locations
	Counters() Counters
	Ping(ctx context.Context) error
}

// Items is the laf_items collection. Find executes a translated filter,
// sorted by date descending and capped at limit.
type Items interface {
	Insert(ctx context.Context, doc *ItemDoc) error
	FindByID(ctx context.Context, id int64) (*ItemDoc, error)
	Find(ctx context.Context, filter bson.M, limit int) ([]*ItemDoc, error)
	Update(ctx context.Context, id int64, set bson.M) error
	ArchiveMany(ctx context.Context, ids []int64, now time.Time) error
	IDExists(ctx context.Context, id int64) (bool, error)
	MaxID(ctx context.Context) (int64, error)
}

// Reports is the lost_reports collection. Report ids are store-assigned.
type Reports interface {
	Insert(ctx context.Context, doc *ReportDoc) (string, error)
	FindByID(ctx context.Context, id string) (*ReportDoc, error)
	Find(ctx context.Context, filter bson.M, limit int) ([]*ReportDoc, error)
	Update(ctx context.Context, id string, set bson.M) error
	CountUnviewed(ctx context.Context) (int64, error)
}

// Types is the laf_types taxonomy collection.
type Types interface {
	All(ctx context.Context) ([]*TypeDoc, error)
	Insert(ctx context.Context, doc *TypeDoc) error
	DeleteByName(ctx context.Context, name string) error
}

// Locations is the laf_locations taxonomy collection. A location's name is
// its own key.
type Locations interface {
	All(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, name string) error
	DeleteByName(ctx context.Context, name string) error
}

// Counters is the sequence_id collection: one monotonically increasing
// integer per allocator name, persisted independently of the collections it
// numbers.
type Counters interface {
	// Next atomically increments the named counter and returns the new value.
	Next(ctx context.Context, name string) (int64, error)
	// RaiseTo atomically raises the named counter to at least floor.
	RaiseTo(ctx context.Context, name string, floor int64) error
}
