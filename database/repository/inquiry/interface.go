package inquiryRepo

import (
	"context"

	"venuebook/database"
	"venuebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// InquiryRepository provides persistence for inquiry documents.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry models.Inquiry) (string, error)
	List(ctx context.Context) ([]models.Inquiry, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Inquiry, error)
	Patch(ctx context.Context, id primitive.ObjectID, set bson.M) (bool, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoInquiryRepo struct {
	coll *mongo.Collection
}

// NewMongoInquiryRepo returns an InquiryRepository backed by MongoDB.
func NewMongoInquiryRepo(db *database.DB) InquiryRepository {
	return &mongoInquiryRepo{coll: db.Inquiries()}
}
