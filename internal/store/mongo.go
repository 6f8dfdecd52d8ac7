package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBackend stores each collection as a single document in a MongoDB
// "kv" collection, keyed by "<prefix>:<name>". This mirrors the get/set
// shape of a remote key/value service: the whole record sequence is one
// value.
type MongoBackend struct {
	coll   *mongo.Collection
	prefix string
}

type kvDocument struct {
	Key  string `bson:"_id"`
	Data []byte `bson:"data"`
}

// NewMongoBackend connects to MongoDB, pings it, and returns a backend
// writing into the given database.
func NewMongoBackend(ctx context.Context, uri, database, prefix string) (*MongoBackend, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("store: connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("store: ping mongodb: %w", err)
	}

	return &MongoBackend{
		coll:   client.Database(database).Collection("kv"),
		prefix: prefix,
	}, nil
}

var _ Backend = (*MongoBackend)(nil)

func (b *MongoBackend) Get(ctx context.Context, name string) ([]byte, error) {
	var doc kvDocument
	err := b.coll.FindOne(ctx, bson.M{"_id": b.key(name)}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: mongodb get %s: %w", name, err)
	}
	return doc.Data, nil
}

func (b *MongoBackend) Set(ctx context.Context, name string, data []byte) error {
	doc := kvDocument{Key: b.key(name), Data: data}
	_, err := b.coll.ReplaceOne(ctx, bson.M{"_id": doc.Key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store: mongodb set %s: %w", name, err)
	}
	return nil
}

func (b *MongoBackend) Ping(ctx context.Context) error {
	return b.coll.Database().Client().Ping(ctx, nil)
}

func (b *MongoBackend) Name() string { return "mongodb" }

// Disconnect closes the underlying client connection.
func (b *MongoBackend) Disconnect(ctx context.Context) error {
	return b.coll.Database().Client().Disconnect(ctx)
}

func (b *MongoBackend) key(name string) string {
	return b.prefix + ":" + name
}
