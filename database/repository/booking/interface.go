package bookingRepo

import (
	"context"

	"venuebook/database"
	"venuebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository provides persistence for booking documents.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (string, error)
	List(ctx context.Context) ([]models.Booking, error)
	Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Booking, error)
	FindConflicting(ctx context.Context, venueName, date string, slots []string) ([]models.Booking, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo(db *database.DB) BookingRepository {
	return &mongoBookingRepo{coll: db.Bookings()}
}
