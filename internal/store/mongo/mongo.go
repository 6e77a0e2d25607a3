// Package mongo implements the document store on MongoDB.
package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/campuslaf/laf-backend/internal/model"
	"github.com/campuslaf/laf-backend/internal/store"
)

// Store implements store.Store using mongo-driver.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to MongoDB and pings it before returning.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return &Store{client: client, db: client.Database(database)}, nil
}

// EnsureIndexes creates the date indexes the list queries sort on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, name := range []string{"laf_items", "lost_reports"} {
		_, err := s.db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "date", Value: -1}},
		})
		if err != nil {
			return fmt.Errorf("failed to create date index for %s: %w", name, err)
		}
	}
	return nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Store) Items() store.Items         { return &items{c: s.db.Collection("laf_items")} }
func (s *Store) Reports() store.Reports     { return &reports{c: s.db.Collection("lost_reports")} }
func (s *Store) Types() store.Types         { return &types{c: s.db.Collection("laf_types")} }
func (s *Store) Locations() store.Locations { return &locations{c: s.db.Collection("laf_locations")} }
func (s *Store) Counters() store.Counters   { return &counters{c: s.db.Collection("sequence_id")} }

// storeErr wraps driver failures so callers can classify them with errors.Is.
func storeErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", model.ErrStoreUnavailable, op, err)
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
