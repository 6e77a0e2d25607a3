// Package query translates flat optional search filters into the store's
// structured query form.
package query

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/campuslaf/laf-backend/internal/model"
)

// DateDirection selects which side of the date the range filter keeps.
type DateDirection string

const (
	DateBefore DateDirection = "Before"
	DateAfter  DateDirection = "After"
)

// Filters is the full set of optional search fields. Zero-valued fields
// contribute nothing to the query. ID applies to items only; Name and Email
// to reports only.
type Filters struct {
	ID            *int64
	Date          string
	DateDirection DateDirection
	Locations     []string
	Description   string
	Type          string
	Name          string
	Email         string
}

// TypeResolver is the taxonomy lookup the type filter needs.
type TypeResolver interface {
	ResolveTypeID(ctx context.Context, name string) (string, error)
}

// kind enumerates the supported filter strategies. Keeping the set closed
// makes the table statically checkable.
type kind int

const (
	kindDate kind = iota
	kindLocation
	kindDescription
	kindType
	kindName
	kindEmail
)

type strategy struct {
	present func(f Filters) bool
	apply   func(ctx context.Context, t *Translator, f Filters) (bson.M, error)
}

// strategies is the per-field table. Each entry yields an independent query
// fragment; absent fields are open.
var strategies = map[kind]strategy{
	kindDate: {
		present: func(f Filters) bool { return f.Date != "" && f.DateDirection != "" },
		apply: func(_ context.Context, _ *Translator, f Filters) (bson.M, error) {
			date, err := model.NormalizeDate(f.Date)
			if err != nil {
				return nil, err
			}
			switch f.DateDirection {
			case DateBefore:
				return bson.M{"date": bson.M{"$lte": date}}, nil
			case DateAfter:
				return bson.M{"date": bson.M{"$gte": date}}, nil
			default:
				return nil, fmt.Errorf("%w: date filter must be Before or After, got %q",
					model.ErrValidation, f.DateDirection)
			}
		},
	},
	kindLocation: {
		present: func(f Filters) bool { return len(f.Locations) > 0 },
		apply: func(_ context.Context, _ *Translator, f Filters) (bson.M, error) {
			return bson.M{"location": bson.M{"$in": f.Locations}}, nil
		},
	},
	kindDescription: {
		present: func(f Filters) bool { return f.Description != "" },
		apply: func(_ context.Context, _ *Translator, f Filters) (bson.M, error) {
			return bson.M{"description": substring(f.Description)}, nil
		},
	},
	kindType: {
		present: func(f Filters) bool { return f.Type != "" },
		apply: func(ctx context.Context, t *Translator, f Filters) (bson.M, error) {
			id, err := t.types.ResolveTypeID(ctx, f.Type)
			if err != nil {
				return nil, err
			}
			oid, err := bson.ObjectIDFromHex(id)
			if err != nil {
				return nil, fmt.Errorf("%w: malformed type id %q", model.ErrValidation, id)
			}
			return bson.M{"type_id": oid}, nil
		},
	},
	kindName: {
		present: func(f Filters) bool { return f.Name != "" },
		apply: func(_ context.Context, _ *Translator, f Filters) (bson.M, error) {
			return bson.M{"name": substring(f.Name)}, nil
		},
	},
	kindEmail: {
		present: func(f Filters) bool { return f.Email != "" },
		apply: func(_ context.Context, _ *Translator, f Filters) (bson.M, error) {
			return bson.M{"email": substring(f.Email)}, nil
		},
	},
}

var itemKinds = []kind{kindDate, kindLocation, kindDescription, kindType}
var reportKinds = []kind{kindDate, kindLocation, kindDescription, kindType, kindName, kindEmail}

// substring builds a case-insensitive literal substring match. The input is
// escaped so pattern metacharacters never reach the store as a pattern.
func substring(v string) bson.Regex {
	return bson.Regex{Pattern: regexp.QuoteMeta(strings.TrimSpace(v)), Options: "i"}
}

// Translator builds store queries from filter sets.
type Translator struct {
	types TypeResolver
}

func NewTranslator(types TypeResolver) *Translator {
	return &Translator{types: types}
}

// Items builds the laf_items query. An id lookup wins over every other
// filter.
func (t *Translator) Items(ctx context.Context, f Filters, archived bool) (bson.M, error) {
	q := bson.M{"archived": archived}
	if f.ID != nil {
		q["_id"] = *f.ID
		return q, nil
	}
	return t.build(ctx, q, f, itemKinds)
}

// Reports builds the lost_reports query.
func (t *Translator) Reports(ctx context.Context, f Filters, archived bool) (bson.M, error) {
	return t.build(ctx, bson.M{"archived": archived}, f, reportKinds)
}

func (t *Translator) build(ctx context.Context, q bson.M, f Filters, kinds []kind) (bson.M, error) {
	for _, k := range kinds {
		s := strategies[k]
		if !s.present(f) {
			continue
		}
		frag, err := s.apply(ctx, t, f)
		if err != nil {
			return nil, err
		}
		for field, cond := range frag {
			q[field] = cond
		}
	}
	return q, nil
}
