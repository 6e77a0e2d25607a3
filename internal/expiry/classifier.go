// Package expiry decides which items have sat unclaimed long enough to be
// disposed of, and which are approaching that point.
package expiry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/campuslaf/laf-backend/internal/model"
)

// Windows holds the retention periods, in days, for each bucket. Cheap
// high-volume categories turn over on their own shorter schedules; everything
// else uses the Inexpensive/Expensive pair.
type Windows struct {
	WaterBottle int
	Attire      int
	Umbrella    int
	Inexpensive int
	Expensive   int
}

// TypeResolver maps taxonomy names to internal ids.
type TypeResolver interface {
	ResolveTypeID(ctx context.Context, name string) (string, error)
}

// specialCategories are the types with their own retention window. Adding a
// category means one row here plus a Windows field.
var specialCategories = []struct {
	name string
	days func(Windows) int
}{
	{"Water Bottle", func(w Windows) int { return w.WaterBottle }},
	{"Attire", func(w Windows) int { return w.Attire }},
	{"Umbrellas", func(w Windows) int { return w.Umbrella }},
}

// TargetAll asks for the expiration sweep across every category at once.
const TargetAll = "All"

// Classifier builds the store queries that partition unarchived items into
// expired and potentially-expired sets.
type Classifier struct {
	types TypeResolver
}

func NewClassifier(types TypeResolver) *Classifier {
	return &Classifier{types: types}
}

// Queries returns the expired and potential queries for target. Target is
// TargetAll, a special category name, or any other taxonomy type name. A
// special-category target has no potential bucket and returns potential nil.
func (c *Classifier) Queries(ctx context.Context, w Windows, target string, now time.Time) (expired, potential bson.M, err error) {
	if target == TargetAll {
		return c.allQueries(ctx, w, now)
	}

	for _, sc := range specialCategories {
		if sc.name != target {
			continue
		}
		oid, err := c.resolve(ctx, target)
		if err != nil {
			return nil, nil, err
		}
		expired = bson.M{
			"archived": false,
			"type_id":  oid,
			"date":     bson.M{"$lte": cutoff(now, sc.days(w))},
		}
		return expired, nil, nil
	}

	oid, err := c.resolve(ctx, target)
	if err != nil {
		return nil, nil, err
	}
	expired = bson.M{
		"archived": false,
		"type_id":  oid,
		"date":     bson.M{"$lte": cutoff(now, w.Expensive)},
	}
	potential = bson.M{
		"archived": false,
		"type_id":  oid,
		"date":     bson.M{"$lte": cutoff(now, w.Inexpensive), "$gt": cutoff(now, w.Expensive)},
	}
	return expired, potential, nil
}

// allQueries builds the sweep over every category: each special category at
// its own cutoff, everything else at the generic one. A special category
// missing from the taxonomy simply falls into the generic branch.
func (c *Classifier) allQueries(ctx context.Context, w Windows, now time.Time) (bson.M, bson.M, error) {
	var branches []bson.M
	var specialIDs []bson.ObjectID
	for _, sc := range specialCategories {
		oid, err := c.resolve(ctx, sc.name)
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		specialIDs = append(specialIDs, oid)
		branches = append(branches, bson.M{
			"type_id": oid,
			"date":    bson.M{"$lte": cutoff(now, sc.days(w))},
		})
	}
	branches = append(branches, bson.M{
		"type_id": bson.M{"$nin": specialIDs},
		"date":    bson.M{"$lte": cutoff(now, w.Expensive)},
	})

	expired := bson.M{"archived": false, "$or": branches}
	potential := bson.M{
		"archived": false,
		"date":     bson.M{"$lte": cutoff(now, w.Inexpensive), "$gt": cutoff(now, w.Expensive)},
	}
	return expired, potential, nil
}

func (c *Classifier) resolve(ctx context.Context, name string) (bson.ObjectID, error) {
	id, err := c.types.ResolveTypeID(ctx, name)
	if err != nil {
		return bson.ObjectID{}, err
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: malformed type id %q", model.ErrValidation, id)
	}
	return oid, nil
}

// cutoff is the latest date, inclusive, that counts as past the window.
func cutoff(now time.Time, days int) string {
	return now.AddDate(0, 0, -days).Format(model.StoredDateLayout)
}
