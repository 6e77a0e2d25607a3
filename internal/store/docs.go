package store

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ItemDoc is the persisted form of a lost-and-found item. Ids come from the
// sequence allocator, never from the store. Finder fields stay nil until the
// item is marked found.
type ItemDoc struct {
	ID          int64         `bson:"_id"`
	TypeID      bson.ObjectID `bson:"type_id"`
	Location    string        `bson:"location"`
	Date        string        `bson:"date"`
	Description string        `bson:"description"`
	Found       bool          `bson:"found"`
	Archived    bool          `bson:"archived"`
	Name        *string       `bson:"name"`
	Email       *string       `bson:"email"`
	Returned    *string       `bson:"returned"`
	Created     time.Time     `bson:"created"`
	Updated     time.Time     `bson:"updated"`
}

// ReportDoc is the persisted form of an owner's lost-item report.
type ReportDoc struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Email       string        `bson:"email"`
	TypeID      bson.ObjectID `bson:"type_id"`
	Locations   []string      `bson:"location"`
	Date        string        `bson:"date"`
	Description string        `bson:"description"`
	Found       bool          `bson:"found"`
	Archived    bool          `bson:"archived"`
	Viewed      bool          `bson:"viewed"`
	Returned    *string       `bson:"returned"`
	Created     time.Time     `bson:"created"`
	Updated     time.Time     `bson:"updated"`
}

// TypeDoc is a taxonomy node for item types.
type TypeDoc struct {
	ID      bson.ObjectID `bson:"_id,omitempty"`
	Name    string        `bson:"type"`
	Letter  string        `bson:"letter"`
	Visible bool          `bson:"view"`
}
