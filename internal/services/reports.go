package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/query"
	"github.com/campuslaf/laf-backend/internal/sanitize"
	"github.com/campuslaf/laf-backend/internal/store"
	"github.com/campuslaf/laf-backend/internal/taxonomy"
)

// ReportService orchestrates owner-submitted lost-item reports.
type ReportService struct {
	store    store.Store
	cache    *taxonomy.Cache
	queries  *query.Translator
	pageSize int
	now      func() time.Time
}

func NewReportService(s store.Store, cache *taxonomy.Cache, pageSize int) *ReportService {
	return &ReportService{
		store:    s,
		cache:    cache,
		queries:  query.NewTranslator(cache),
		pageSize: pageSize,
		now:      time.Now,
	}
}

// CreateReport files a lost-item report. A report filed by staff is born
// viewed; a public submission waits in the new-report queue.
func (s *ReportService) CreateReport(ctx context.Context, req model.CreateReportRequest, staff bool) (*model.Report, error) {
	name := sanitize.Text(req.Name, sanitize.MaxName)
	email := sanitize.Text(req.Email, sanitize.MaxEmail)
	typeName := sanitize.Text(req.Type, sanitize.MaxType)
	locations := sanitize.Locations(req.Locations)
	if name == "" || email == "" || typeName == "" || len(locations) == 0 {
		return nil, fmt.Errorf("%w: name, email, type and location are required", model.ErrValidation)
	}
	date, err := model.NormalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	typeID, err := s.resolveType(ctx, typeName)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	doc := &store.ReportDoc{
		Name:        name,
		Email:       email,
		TypeID:      typeID,
		Locations:   locations,
		Date:        date,
		Description: sanitize.Text(req.Description, sanitize.MaxDescription),
		Viewed:      staff,
		Created:     now,
		Updated:     now,
	}
	id, err := s.store.Reports().Insert(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc.ID, _ = bson.ObjectIDFromHex(id)
	return s.hydrate(ctx, doc)
}

// GetReport fetches one report by id.
func (s *ReportService) GetReport(ctx context.Context, id string) (*model.Report, error) {
	doc, err := s.store.Reports().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, doc)
}

// UpdateReport patches a report. Only staff edit reports, so the patch also
// marks the report viewed.
func (s *ReportService) UpdateReport(ctx context.Context, id string, req model.UpdateReportRequest) (*model.Report, error) {
	set := bson.M{"viewed": true, "updated": s.now().UTC()}
	if req.Name != nil {
		set["name"] = sanitize.Text(*req.Name, sanitize.MaxName)
	}
	if req.Email != nil {
		set["email"] = sanitize.Text(*req.Email, sanitize.MaxEmail)
	}
	if req.Type != nil {
		typeID, err := s.resolveType(ctx, sanitize.Text(*req.Type, sanitize.MaxType))
		if err != nil {
			return nil, err
		}
		set["type_id"] = typeID
	}
	if req.Locations != nil {
		set["location"] = sanitize.Locations(*req.Locations)
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

	if err := s.store.Reports().Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.GetReport(ctx, id)
}

// MarkReportFound closes a report whose item came back to its owner, stamping
// the return date.
func (s *ReportService) MarkReportFound(ctx context.Context, id string) (*model.Report, error) {
	now := s.now().UTC()
	set := bson.M{
		"found":    true,
		"archived": true,
		"viewed":   true,
		"returned": now.Format(model.StoredDateLayout),
		"updated":  now,
	}
	if err := s.store.Reports().Update(ctx, id, set); err != nil {
		return nil, err
	}
	return s.GetReport(ctx, id)
}

// MarkViewed records that staff have seen a report.
func (s *ReportService) MarkViewed(ctx context.Context, id string) error {
	return s.store.Reports().Update(ctx, id, bson.M{"viewed": true, "updated": s.now().UTC()})
}

// NewReports lists the reports staff have not seen yet, newest first, capped
// at one page. Listing is a pure read: reports stay in the queue until
// explicitly marked viewed.
func (s *ReportService) NewReports(ctx context.Context) ([]*model.Report, error) {
	docs, err := s.store.Reports().Find(ctx, bson.M{"archived": false, "viewed": false}, s.pageSize)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(ctx, docs)
}

// NewReportCount counts reports staff have not seen yet.
func (s *ReportService) NewReportCount(ctx context.Context) (int64, error) {
	return s.store.Reports().CountUnviewed(ctx)
}

// ListReports searches reports with the given filters, newest first, capped
// at one page.
func (s *ReportService) ListReports(ctx context.Context, f query.Filters, archived bool) ([]*model.Report, error) {
	q, err := s.queries.Reports(ctx, f, archived)
	if err != nil {
		return nil, err
	}
	docs, err := s.store.Reports().Find(ctx, q, s.pageSize)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(ctx, docs)
}

func (s *ReportService) resolveType(ctx context.Context, name string) (bson.ObjectID, error) {
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

func (s *ReportService) hydrate(ctx context.Context, doc *store.ReportDoc) (*model.Report, error) {
	entry, err := s.cache.ResolveType(ctx, doc.TypeID.Hex())
	if err != nil {
		return nil, err
	}
	var returned *string
	if doc.Returned != nil {
		display := model.DisplayDate(*doc.Returned)
		returned = &display
	}
	return &model.Report{
		ID:          doc.ID.Hex(),
		Name:        doc.Name,
		Email:       doc.Email,
		Type:        entry.Name,
		Locations:   doc.Locations,
		Date:        model.DisplayDate(doc.Date),
		Description: doc.Description,
		Found:       doc.Found,
		Archived:    doc.Archived,
		Viewed:      doc.Viewed,
		Returned:    returned,
	}, nil
}

func (s *ReportService) hydrateAll(ctx context.Context, docs []*store.ReportDoc) ([]*model.Report, error) {
	reports := make([]*model.Report, 0, len(docs))
	for _, doc := range docs {
		r, err := s.hydrate(ctx, doc)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}
