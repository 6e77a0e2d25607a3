package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/store"
)

type items struct {
	c *mongo.Collection
}

func (i *items) Insert(ctx context.Context, doc *store.ItemDoc) error {
	if _, err := i.c.InsertOne(ctx, doc); err != nil {
		return storeErr("insert item", err)
	}
	return nil
}

func (i *items) FindByID(ctx context.Context, id int64) (*store.ItemDoc, error) {
	var doc store.ItemDoc
	err := i.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if isNoDocuments(err) {
		return nil, fmt.Errorf("%w: laf item %d", model.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr("find item", err)
	}
	return &doc, nil
}

func (i *items) Find(ctx context.Context, filter bson.M, limit int) ([]*store.ItemDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := i.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr("find items", err)
	}
	var docs []*store.ItemDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode items", err)
	}
	return docs, nil
}

func (i *items) Update(ctx context.Context, id int64, set bson.M) error {
	res, err := i.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return storeErr("update item", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: laf item %d", model.ErrNotFound, id)
	}
	return nil
}

// ArchiveMany closes all matching ids in one write; absent ids are skipped.
func (i *items) ArchiveMany(ctx context.Context, ids []int64, now time.Time) error {
	_, err := i.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{"$set": bson.M{"archived": true, "updated": now}},
	)
	if err != nil {
		return storeErr("archive items", err)
	}
	return nil
}

func (i *items) IDExists(ctx context.Context, id int64) (bool, error) {
	n, err := i.c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, storeErr("count item id", err)
	}
	return n > 0, nil
}

func (i *items) MaxID(ctx context.Context) (int64, error) {
	var doc store.ItemDoc
	err := i.c.FindOne(ctx, bson.M{},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}}),
	).Decode(&doc)
	if isNoDocuments(err) {
		return 0, nil
	}
	if err != nil {
		return 0, storeErr("find max item id", err)
	}
	return doc.ID, nil
}
