// Package services orchestrates the lost-and-found use cases on top of the
// store, the taxonomy cache, and the policy packages.
package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/campuslaf/laf-backend/internal/expiry"
	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/query"
	"github.com/campuslaf/laf-backend/internal/sanitize"
	"github.com/campuslaf/laf-backend/internal/seq"
	"github.com/campuslaf/laf-backend/internal/store"
	"github.com/campuslaf/laf-backend/internal/taxonomy"
)

// itemSequence names the counter that numbers laf_items.
const itemSequence = "laf_id"

// ItemService orchestrates item intake, search, claiming, and expiration.
type ItemService struct {
	store    store.Store
	cache    *taxonomy.Cache
	ids      *seq.Allocator
	queries  *query.Translator
	expiry   *expiry.Classifier
	windows  expiry.Windows
	pageSize int
	now      func() time.Time
}

func NewItemService(s store.Store, cache *taxonomy.Cache, w expiry.Windows, pageSize int) *ItemService {
	return &ItemService{
		store:    s,
		cache:    cache,
		ids:      seq.New(s.Counters()),
		queries:  query.NewTranslator(cache),
		expiry:   expiry.NewClassifier(cache),
		windows:  w,
		pageSize: pageSize,
		now:      time.Now,
	}
}

// CreateItem logs a newly found item and assigns it the next sequence id.
func (s *ItemService) CreateItem(ctx context.Context, req model.CreateItemRequest) (*model.Item, error) {
	typeName := sanitize.Text(req.Type, sanitize.MaxType)
	location := sanitize.Location(req.Location)
	description := sanitize.Text(req.Description, sanitize.MaxDescription)
	if typeName == "" || location == "" {
		return nil, fmt.Errorf("%w: type and location are required", model.ErrValidation)
	}
	date, err := model.NormalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	typeID, err := s.resolveType(ctx, typeName)
	if err != nil {
		return nil, err
	}

	id, err := s.ids.NextID(ctx, itemSequence, s.store.Items())
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	doc := &store.ItemDoc{
		ID:          id,
		TypeID:      typeID,
		Location:    location,
		Date:        date,
		Description: description,
		Created:     now,
		Updated:     now,
	}
	if err := s.store.Items().Insert(ctx, doc); err != nil {
		return nil, err
	}
	return s.hydrate(ctx, doc)
}

// GetItem fetches one item by its numeric id.
func (s *ItemService) GetItem(ctx context.Context, id int64) (*model.Item, error) {
	doc, err := s.store.Items().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, doc)
}

// UpdateItem patches an item. A missing item is a hard failure, never an
// implicit create.
func (s *ItemService) UpdateItem(ctx context.Context, id int64, req model.UpdateItemRequest) (*model.Item, error) {
	set := bson.M{"updated": s.now().UTC()}
	if req.Type != nil {
		typeID, err := s.resolveType(ctx, sanitize.Text(*req.Type, sanitize.MaxType))
		if err != nil {
			return nil, err
		}
		set["type_id"] = typeID
	}
	if req.Location != nil {
		set["location"] = sanitize.Location(*req.Location)
	}
	if req.Date != nil {
		date, err := model.NormalizeDate(*req.Date)
		if err != nil {
			return nil, err
		}
		set["date"] = date
	}
	if req.Description != nil {
		set["description"] = sanitize.Text(*req.Description, sanitize.MaxDescription)
	}

	if err := s.store.Items().Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.GetItem(ctx, id)
}

// MarkItemFound records who claimed an item. A found item is always archived
// in the same write.
func (s *ItemService) MarkItemFound(ctx context.Context, id int64, req model.FoundItemRequest) (*model.Item, error) {
	name := sanitize.Text(req.Name, sanitize.MaxName)
	email := sanitize.Text(req.Email, sanitize.MaxEmail)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: finder name and email are required", model.ErrValidation)
	}
	now := s.now().UTC()
	returned := now.Format(model.StoredDateLayout)
	set := bson.M{
		"found":    true,
		"archived": true,
		"name":     name,
		"email":    email,
		"returned": returned,
		"updated":  now,
	}
	if err := s.store.Items().Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.GetItem(ctx, id)
}

// ArchiveItems archives the given items in one write. Already-archived ids
// are harmless.
func (s *ItemService) ArchiveItems(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return s.store.Items().ArchiveMany(ctx, ids, s.now().UTC())
}

// ListItems searches items with the given filters, newest first, capped at
// one page.
func (s *ItemService) ListItems(ctx context.Context, f query.Filters, archived bool) ([]*model.Item, error) {
	q, err := s.queries.Items(ctx, f, archived)
	if err != nil {
		return nil, err
	}
	docs, err := s.store.Items().Find(ctx, q, s.pageSize)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(ctx, docs)
}

// ExpiredItems partitions unarchived items into expired and
// potentially-expired buckets for the given target category. Each bucket is
// queried independently, newest first, capped at one page.
func (s *ItemService) ExpiredItems(ctx context.Context, target string) (*model.ExpiredItems, error) {
	expiredQ, potentialQ, err := s.expiry.Queries(ctx, s.windows, target, s.now().UTC())
	if err != nil {
		return nil, err
	}
	out := &model.ExpiredItems{Expired: []*model.Item{}, Potential: []*model.Item{}}

	docs, err := s.store.Items().Find(ctx, expiredQ, s.pageSize)
	if err != nil {
		return nil, err
	}
	if out.Expired, err = s.hydrateAll(ctx, docs); err != nil {
		return nil, err
	}

	if potentialQ != nil {
		docs, err = s.store.Items().Find(ctx, potentialQ, s.pageSize)
		if err != nil {
			return nil, err
		}
		if out.Potential, err = s.hydrateAll(ctx, docs); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *ItemService) resolveType(ctx context.Context, name string) (bson.ObjectID, error) {
	id, err := s.cache.ResolveTypeID(ctx, name)
	if err != nil {
		return bson.ObjectID{}, err
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: malformed type id %q", model.ErrValidation, id)
	}
	return oid, nil
}

// hydrate maps a stored item onto its presented form: the type is rendered by
// name, the display id combines the type letter with the numeric id, and
// dates switch to display format.
func (s *ItemService) hydrate(ctx context.Context, doc *store.ItemDoc) (*model.Item, error) {
	entry, err := s.cache.ResolveType(ctx, doc.TypeID.Hex())
	if err != nil {
		return nil, err
	}
	item := &model.Item{
		ID:          doc.ID,
		Type:        entry.Name,
		DisplayID:   entry.Letter + strconv.FormatInt(doc.ID, 10),
		Location:    doc.Location,
		Date:        model.DisplayDate(doc.Date),
		Description: doc.Description,
		Found:       doc.Found,
		Archived:    doc.Archived,
		FinderName:  doc.Name,
		FinderEmail: doc.Email,
	}
	if doc.Returned != nil {
		display := model.DisplayDate(*doc.Returned)
		item.Returned = &display
	}
	return item, nil
}

func (s *ItemService) hydrateAll(ctx context.Context, docs []*store.ItemDoc) ([]*model.Item, error) {
	items := make([]*model.Item, 0, len(docs))
	for _, doc := range docs {
		item, err := s.hydrate(ctx, doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
