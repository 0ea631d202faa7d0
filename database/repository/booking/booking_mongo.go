package bookingRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"medibook/database"
	"medibook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// newBookingNumber generates the human-readable booking number. The format is
// opaque to callers.
func newBookingNumber() string {
	id := uuid.New().String()
	return "BK-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}

// Create inserts a new booking document, assigning its identifiers and
// creation timestamp.
func (r *MongoBookingRepo) Create(booking *models.Booking) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.ID = uuid.New().String()
	booking.BookingNumber = newBookingNumber()
	booking.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}
