package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/campuslaf/laf-backend/internal/model"
)

type fakeResolver struct {
	ids map[string]string
}

func (f *fakeResolver) ResolveTypeID(_ context.Context, name string) (string, error) {
	id, ok := f.ids[name]
	if !ok {
		return "", fmt.Errorf("%w: laf type %q", model.ErrNotFound, name)
	}
	return id, nil
}

func newTestTranslator() *Translator {
	return NewTranslator(&fakeResolver{ids: map[string]string{
		"Umbrellas": "64a000000000000000000001",
	}})
}

func TestItemsEmptyFiltersAreOpen(t *testing.T) {
	q, err := newTestTranslator().Items(context.Background(), Filters{}, false)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"archived": false}, q)
}

func TestItemsIDWins(t *testing.T) {
	id := int64(42)
	f := Filters{ID: &id, Description: "umbrella", Type: "Umbrellas"}
	q, err := newTestTranslator().Items(context.Background(), f, true)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"archived": true, "_id": int64(42)}, q)
}

func TestItemsDateDirections(t *testing.T) {
	tr := newTestTranslator()

	q, err := tr.Items(context.Background(), Filters{Date: "2025-03-01", DateDirection: DateBefore}, false)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$lte": "2025-03-01"}, q["date"])

	q, err = tr.Items(context.Background(), Filters{Date: "03/01/2025", DateDirection: DateAfter}, false)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$gte": "2025-03-01"}, q["date"])

	// date without a direction contributes nothing
	q, err = tr.Items(context.Background(), Filters{Date: "2025-03-01"}, false)
	require.NoError(t, err)
	assert.NotContains(t, q, "date")

	_, err = tr.Items(context.Background(), Filters{Date: "yesterday", DateDirection: DateBefore}, false)
	assert.True(t, errors.Is(err, model.ErrValidation))
}

func TestDescriptionEscapesMetacharacters(t *testing.T) {
	q, err := newTestTranslator().Items(context.Background(), Filters{Description: "Um*brella"}, false)
	require.NoError(t, err)

	re, ok := q["description"].(bson.Regex)
	require.True(t, ok)
	assert.Equal(t, `Um\*brella`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestLocationsBecomeAnyOf(t *testing.T) {
	f := Filters{Locations: []string{"Library", "Union"}}
	q, err := newTestTranslator().Items(context.Background(), f, false)
	require.NoError(t, err)
	assert.Equal(t, bson.M{"$in": []string{"Library", "Union"}}, q["location"])
}

func TestTypeResolvesThroughCache(t *testing.T) {
	tr := newTestTranslator()

	q, err := tr.Items(context.Background(), Filters{Type: "Umbrellas"}, false)
	require.NoError(t, err)
	oid, _ := bson.ObjectIDFromHex("64a000000000000000000001")
	assert.Equal(t, oid, q["type_id"])

	_, err = tr.Items(context.Background(), Filters{Type: "Sousaphone"}, false)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestReportsNameAndEmailFilters(t *testing.T) {
	f := Filters{Name: " Ada Lovelace ", Email: "ada@example.edu"}
	q, err := newTestTranslator().Reports(context.Background(), f, false)
	require.NoError(t, err)

	name := q["name"].(bson.Regex)
	assert.Equal(t, "Ada Lovelace", name.Pattern)
	email := q["email"].(bson.Regex)
	assert.Equal(t, `ada@example\.edu`, email.Pattern)
}
