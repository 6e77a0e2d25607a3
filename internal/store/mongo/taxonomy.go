package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/store"
)

type types struct {
	c *mongo.Collection
}

func (t *types) All(ctx context.Context) ([]*store.TypeDoc, error) {
	cur, err := t.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, storeErr("find types", err)
	}
	var docs []*store.TypeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("decode types", err)
	}
	return docs, nil
}

func (t *types) Insert(ctx context.Context, doc *store.TypeDoc) error {
	doc.ID = bson.NewObjectID()
	if _, err := t.c.InsertOne(ctx, doc); err != nil {
		return storeErr("insert type", err)
	}
	return nil
}

func (t *types) DeleteByName(ctx context.Context, name string) error {
	res, err := t.c.DeleteOne(ctx, bson.M{"type": name})
	if err != nil {
		return storeErr("delete type", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: laf type %q", model.ErrNotFound, name)
	}
	return nil
}

type locations struct {
	c *mongo.Collection
}

type locationDoc struct {
	ID   bson.ObjectID `bson:"_id,omitempty"`
	Name string        `bson:"location"`
}

func (l *locations) All(ctx context.Context) ([]string, error) {
	res := l.c.Distinct(ctx, "location", bson.M{})
	var names []string
	if err := res.Decode(&names); err != nil {
		return nil, storeErr("distinct locations", err)
	}
	return names, nil
}

func (l *locations) Insert(ctx context.Context, name string) error {
	if _, err := l.c.InsertOne(ctx, locationDoc{Name: name}); err != nil {
		return storeErr("insert location", err)
	}
	return nil
}

func (l *locations) DeleteByName(ctx context.Context, name string) error {
	res, err := l.c.DeleteOne(ctx, bson.M{"location": name})
	if err != nil {
		return storeErr("delete location", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("%w: laf location %q", model.ErrNotFound, name)
	}
	return nil
}
