package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type counters struct {
	c *mongo.Collection
}

type counterDoc struct {
	Name  string `bson:"_id"`
	Value int64  `bson:"value"`
}

// Next is a single atomic find-and-increment; the counter document is
// created on first use.
func (s *counters) Next(ctx context.Context, name string) (int64, error) {
	var doc counterDoc
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"value": 1}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, storeErr("increment counter", err)
	}
	return doc.Value, nil
}

// RaiseTo lifts the counter to at least floor without ever lowering it.
func (s *counters) RaiseTo(ctx context.Context, name string, floor int64) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": name},
		bson.M{"$max": bson.M{"value": floor}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return storeErr("raise counter", err)
	}
	return nil
}
