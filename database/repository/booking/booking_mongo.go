package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"careconnect/database"
	"careconnect/models"

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
	coll := database.MongoClient.Database("careconnect").Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := withTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "seekerId", Value: 1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// ListBySeeker retrieves all bookings where the given user is the seeker.
func (r *MongoBookingRepo) ListBySeeker(ctx context.Context, seekerID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"seekerId": seekerID})
}

// ListByProvider retrieves all bookings where the given user is the provider.
func (r *MongoBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"providerId": providerID})
}

// ListAll retrieves every booking record.
func (r *MongoBookingRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// UpdateStatusIfCurrent transitions a booking's status in one conditional
// update. The filter matches only when the stored status is still one of
// the permitted source states, so a concurrent transition that won the race
// makes this call report no match instead of overwriting it.
func (r *MongoBookingRepo) UpdateStatusIfCurrent(ctx context.Context, id string, from []models.BookingStatus, to models.BookingStatus, extraSet bson.M) (bool, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": bson.M{"$in": from},
	}

	set := bson.M{
		"status":    to,
		"updatedAt": time.Now(),
	}
	for k, v := range extraSet {
		set[k] = v
	}

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to update booking %s status: %w", id, err)
	}
	return result.MatchedCount > 0, nil
}
