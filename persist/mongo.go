package persist

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo stores each snapshot as a single document keyed by its snapshot
// name, so the collection behaves like a small key-value store.
type Mongo struct {
	snapshots *mongo.Collection
}

type snapshotDoc struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

// NewMongo connects to MongoDB and returns a Persister backed by the
// "snapshots" collection of the given database.
func NewMongo(uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("Connected to MongoDB!")
	return &Mongo{snapshots: client.Database(database).Collection("snapshots")}, nil
}

func (m *Mongo) Load(ctx context.Context, key string) ([]byte, error) {
	var doc snapshotDoc
	err := m.snapshots.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return doc.Data, nil
}

func (m *Mongo) Save(ctx context.Context, key string, data []byte) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.snapshots.ReplaceOne(ctx, bson.M{"_id": key}, snapshotDoc{Key: key, Data: data}, opts)
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}
	return nil
}
