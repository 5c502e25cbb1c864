package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"venuebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking and returns its generated document id.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (string, error) {
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns all bookings ordered by creation time descending.
func (r *mongoBookingRepo) List(ctx context.Context) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Patch applies a $set update to the booking with the given id, refreshing
// updatedAt, and returns the updated document. A missing document surfaces
// as mongo.ErrNoDocuments.
func (r *mongoBookingRepo) Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Booking, error) {
	set["updatedAt"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindConflicting returns non-cancelled bookings for the same venue and
// date that already hold any of the requested time slots.
func (r *mongoBookingRepo) FindConflicting(ctx context.Context, venueName, date string, slots []string) ([]models.Booking, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"venueName": venueName,
		"date":      date,
		"status":    bson.M{"$ne": models.BookingStatusCancelled},
		"timeSlots": bson.M{"$in": slots},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var conflicts []models.Booking
	if err := cursor.All(ctx, &conflicts); err != nil {
		return nil, err
	}
	return conflicts, nil
}
