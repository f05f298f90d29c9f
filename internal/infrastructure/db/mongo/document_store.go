package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shopkeep/storefront/internal/core/domain"
)

const documentsCollection = "documents"

// DocumentStore keeps each document as one record keyed by its name.
type DocumentStore struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewDocumentStore(db *mongo.Database) *DocumentStore {
	return &DocumentStore{db: db, coll: db.Collection(documentsCollection)}
}

type mongoDocument struct {
	Name      string `bson:"_id"`
	Body      string `bson:"body"`
	UpdatedAt int64  `bson:"updated_at"`
}

func (s *DocumentStore) Load(ctx context.Context, name string) ([]byte, error) {
	var doc mongoDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": name}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("load %s: %w", name, domain.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return []byte(doc.Body), nil
}

// Save replaces the whole record in one upsert.
func (s *DocumentStore) Save(ctx context.Context, name string, data []byte) error {
	doc := mongoDocument{
		Name:      name,
		Body:      string(data),
		UpdatedAt: time.Now().UTC().Unix(),
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": name}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}

func (s *DocumentStore) Ping(ctx context.Context) error {
	if err := s.db.Client().Ping(ctx, nil); err != nil {
		return err
	}
	return s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}
