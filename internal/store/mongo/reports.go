package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/store"
)

type reports struct {
	c *mongo.Collection
}

func (r *reports) Insert(ctx context.Context, doc *store.ReportDoc) (string, error) {
	doc.ID = bson.NewObjectID()
	if _, err := r.c.InsertOne(ctx, doc); err != nil {
		return "", storeErr("insert report", err)
	}
	return doc.ID.Hex(), nil
}

func (r *reports) FindByID(ctx context.Context, id string) (*store.ReportDoc, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed report id %q", model.ErrValidation, id)
	}
	var doc store.ReportDoc
	err = r.c.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if isNoDocuments(err) {
		return nil, fmt.Errorf("%w: lost report %s", model.ErrNotFound, id)
	}
	if err != nil {
		return nil, storeErr("find report", err)
	}
	return &doc, nil
}

func (r *reports) Find(ctx context.Context, filter bson.M, limit int) ([]*store.ReportDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := r.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr("find reports", err)
	}
	var docs []*store.ReportDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode reports", err)
	}
	return docs, nil
}

func (r *reports) Update(ctx context.Context, id string, set bson.M) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: malformed report id %q", model.ErrValidation, id)
	}
	res, err := r.c.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return storeErr("update report", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%w: lost report %s", model.ErrNotFound, id)
	}
	return nil
}

func (r *reports) CountUnviewed(ctx context.Context) (int64, error) {
	n, err := r.c.CountDocuments(ctx, bson.M{"viewed": false, "archived": false})
	if err != nil {
		return 0, storeErr("count unviewed reports", err)
	}
	return n, nil
}
