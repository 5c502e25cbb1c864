package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	BookingsCollection  = "bookings"
	InquiriesCollection = "inquiries"
)

// DB is the shared persistence handle. It is constructed once in main and
// injected into the repositories; Close tears the connection down on
// shutdown.
type DB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Connect establishes the MongoDB connection and verifies it with a ping.
// A connection failure is not retried; it propagates to the caller.
func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	if uri == "" {
		return nil, fmt.Errorf("database: connection string is not set")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("database: failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("database: failed to ping MongoDB: %w", err)
	}

	return &DB{
		Client:   client,
		Database: client.Database(dbName),
	}, nil
}

// Bookings returns the bookings collection.
func (d *DB) Bookings() *mongo.Collection {
	return d.Database.Collection(BookingsCollection)
}

// Inquiries returns the inquiries collection.
func (d *DB) Inquiries() *mongo.Collection {
	return d.Database.Collection(InquiriesCollection)
}

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}
