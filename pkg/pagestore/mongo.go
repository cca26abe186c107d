package pagestore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/wikiextract/pkg/cache"
)

// MongoStore keeps one document per page, unique by title.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to uri and ensures the unique title index.
func NewMongoStore(ctx context.Context, uri, database, collection string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	coll := client.Database(database).Collection(collection)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "title", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return &MongoStore{client: client, coll: coll}, nil
}

// Get reads a page by title.
func (s *MongoStore) Get(ctx context.Context, title string) (Page, bool, error) {
	var p Page
	err := cache.RetryWithBackoff(ctx, func() error {
		return mongoRetryable(s.coll.FindOne(ctx, bson.M{"title": title}).Decode(&p))
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Page{}, false, nil
	}
	if err != nil {
		return Page{}, false, err
	}
	return p, true, nil
}

// Put upserts a page by title.
func (s *MongoStore) Put(ctx context.Context, p Page) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	return cache.RetryWithBackoff(ctx, func() error {
		_, err := s.coll.ReplaceOne(ctx, bson.M{"title": p.Title}, p, options.Replace().SetUpsert(true))
		return mongoRetryable(err)
	})
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func mongoRetryable(err error) error {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return cache.Retryable(err)
	}
	return err
}

var _ Store = (*MongoStore)(nil)
