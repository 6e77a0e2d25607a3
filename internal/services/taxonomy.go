package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/sanitize"
	"github.com/campuslaf/laf-backend/internal/store"
	"github.com/campuslaf/laf-backend/internal/taxonomy"
)

// TaxonomyService manages the administrator-facing type and location sets.
// Reads go through the cache, so additions and removals may take up to one
// TTL to appear.
type TaxonomyService struct {
	store store.Store
	cache *taxonomy.Cache
}

func NewTaxonomyService(s store.Store, cache *taxonomy.Cache) *TaxonomyService {
	return &TaxonomyService{store: s, cache: cache}
}

// AddType registers an item type. The letter prefixes display ids and must
// be a single ASCII letter; it is uppercased on the way in.
func (s *TaxonomyService) AddType(ctx context.Context, name, letter string, visible bool) error {
	name = sanitize.Text(name, sanitize.MaxType)
	letter = strings.ToUpper(strings.TrimSpace(letter))
	if name == "" {
		return fmt.Errorf("%w: type name is required", model.ErrValidation)
	}
	if len(letter) != 1 || !unicode.IsLetter(rune(letter[0])) {
		return fmt.Errorf("%w: type letter must be a single letter, got %q", model.ErrValidation, letter)
	}
	return s.store.Types().Insert(ctx, &store.TypeDoc{Name: name, Letter: letter, Visible: visible})
}

// DeleteType removes a type by name. Items referencing it keep their type id
// and stop hydrating, so retiring a type by hiding it is usually the better
// move.
func (s *TaxonomyService) DeleteType(ctx context.Context, name string) error {
	return s.store.Types().DeleteByName(ctx, name)
}

// Types lists the full taxonomy, hidden entries included.
func (s *TaxonomyService) Types(ctx context.Context) ([]model.TypeEntry, error) {
	docs, err := s.store.Types().All(ctx)
	if err != nil {
		return nil, err
	}
	entries := make([]model.TypeEntry, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, model.TypeEntry{
			ID:      doc.ID.Hex(),
			Name:    doc.Name,
			Letter:  doc.Letter,
			Visible: doc.Visible,
		})
	}
	return entries, nil
}

// VisibleTypes lists the type names offered on public forms.
func (s *TaxonomyService) VisibleTypes(ctx context.Context) ([]string, error) {
	return s.cache.VisibleTypes(ctx)
}

// AddLocation registers a pickup location.
func (s *TaxonomyService) AddLocation(ctx context.Context, name string) error {
	name = sanitize.Text(name, sanitize.MaxLocation)
	if name == "" {
		return fmt.Errorf("%w: location name is required", model.ErrValidation)
	}
	return s.store.Locations().Insert(ctx, name)
}

// DeleteLocation removes a location by name.
func (s *TaxonomyService) DeleteLocation(ctx context.Context, name string) error {
	return s.store.Locations().DeleteByName(ctx, name)
}

// Locations lists the known location names.
func (s *TaxonomyService) Locations(ctx context.Context) ([]string, error) {
	return s.cache.Locations(ctx)
}
