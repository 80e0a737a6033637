// Package repository provides the MongoDB-backed audit trail.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Orders   *mongo.Collection
	Restocks *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:   client,
		Database: db,
		Orders:   db.Collection("order_audit"),
		Restocks: db.Collection("restock_audit"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates necessary indexes for the audit collections.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Orders: lookup by café over a time range, and by session.
	cafeTimestampIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"cafe_id": 1, "timestamp": -1},
		Options: options.Index().SetUnique(false),
	}
	if _, err := m.Orders.Indexes().CreateOne(ctx, cafeTimestampIndex); err != nil {
		return err
	}

	sessionIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"session_id": 1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Orders.Indexes().CreateOne(ctx, sessionIndex)

	// Restocks: lookup by item at a café.
	itemCafeIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"item_id": 1, "cafe_id": 1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Restocks.Indexes().CreateOne(ctx, itemCafeIndex)

	restockTimestampIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"cafe_id": 1, "timestamp": -1},
		Options: options.Index().SetUnique(false),
	}
	_, _ = m.Restocks.Indexes().CreateOne(ctx, restockTimestampIndex)

	return nil
}

// SetAuditTTL updates the TTL index on both audit collections so old
// entries expire automatically.
func (m *MongoDB) SetAuditTTL(ctx context.Context, ttlDays int) error {
	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	for _, coll := range []*mongo.Collection{m.Orders, m.Restocks} {
		// Drop a stale TTL index first; it may not exist.
		_, _ = coll.Indexes().DropOne(ctx, "timestamp_1")

		ttlIndex := mongo.IndexModel{
			Keys:    map[string]interface{}{"timestamp": 1},
			Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
		}
		if _, err := coll.Indexes().CreateOne(ctx, ttlIndex); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
