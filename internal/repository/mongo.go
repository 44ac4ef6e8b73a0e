package repository

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// Mongo is the process-wide connection handle. It is owned by the
// composition root and connects lazily on the first operation; when
// establishment fails the cached client is dropped so the next request
// makes a fresh attempt. A failed attempt is never retried inline.
type Mongo struct {
	uri        string
	database   string
	collection string

	mu     sync.Mutex
	client *mongo.Client
}

func NewMongo(uri, database, collection string) *Mongo {
	return &Mongo{uri: uri, database: database, collection: collection}
}

// Collection returns the recipes collection, connecting if needed.
func (m *Mongo) Collection(ctx context.Context) (*mongo.Collection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		cctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		client, err := mongo.Connect(cctx, options.Client().ApplyURI(m.uri))
		if err != nil {
			return nil, err
		}
		if err := client.Ping(cctx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		m.client = client
	}
	return m.client.Database(m.database).Collection(m.collection), nil
}

func (m *Mongo) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}
