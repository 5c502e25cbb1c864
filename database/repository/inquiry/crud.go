package inquiryRepo

import (
	"context"
	"fmt"
	"time"

	"venuebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new inquiry and returns its generated document id.
func (r *mongoInquiryRepo) Create(ctx context.Context, inquiry models.Inquiry) (string, error) {
	res, err := r.coll.InsertOne(ctx, inquiry)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns all inquiries ordered by creation time descending.
func (r *mongoInquiryRepo) List(ctx context.Context) ([]models.Inquiry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// GetByID returns an inquiry by its document id.
func (r *mongoInquiryRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&inquiry); err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// Patch merge-updates only the supplied fields on the inquiry, refreshing
// updatedAt. It reports success by matched count: false means no document
// with that id exists.
func (r *mongoInquiryRepo) Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (bool, error) {
	set["updatedAt"] = time.Now()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
