package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mociber/booking-api/internal/core/domain"
)

const collectionRequests = "requests"

type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

// Insert stores a new service request document.
func (r *RequestRepository) Insert(ctx context.Context, req *domain.ServiceRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, req)
	return err
}

// CountRecent counts requests with the same phone number and service type
// created at or after the since threshold. It backs the duplicate window.
func (r *RequestRepository) CountRecent(ctx context.Context, phoneNumber, serviceType string, since time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"phone_number": phoneNumber,
		"service_type": serviceType,
		"created_at":   bson.M{"$gte": since.UTC()},
	}
	return r.col.CountDocuments(ctx, filter)
}

// EnsureIndexes creates the index serving the duplicate-window query.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "phone_number", Value: 1},
			{Key: "service_type", Value: 1},
			{Key: "created_at", Value: -1},
		}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
