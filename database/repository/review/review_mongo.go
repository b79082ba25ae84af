package reviewRepo

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

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a new instance of ReviewRepository using MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	coll := database.MongoClient.Database("careconnect").Collection("reviews")
	repo := &MongoReviewRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReviewRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "bookingId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new review document.
func (r *MongoReviewRepo) Create(review *models.Review) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	review.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByBookingID retrieves the review attached to a booking, if any.
func (r *MongoReviewRepo) GetByBookingID(bookingID string) (*models.Review, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var review models.Review
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&review); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch review for booking %s: %w", bookingID, err)
	}
	return &review, nil
}

// ListByProvider retrieves all reviews for a provider.
func (r *MongoReviewRepo) ListByProvider(providerID string) ([]models.Review, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"providerId": providerID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	for cursor.Next(ctx) {
		var rev models.Review
		if err := cursor.Decode(&rev); err != nil {
			return nil, fmt.Errorf("failed to decode review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

// AverageRatingForProvider computes the mean rating across a provider's reviews.
func (r *MongoReviewRepo) AverageRatingForProvider(providerID string) (float64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "providerId", Value: providerID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$providerId"},
			{Key: "avgRating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate ratings for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var result struct {
		AvgRating float64 `bson:"avgRating"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, fmt.Errorf("failed to decode rating aggregate: %w", err)
		}
	}
	return result.AvgRating, nil
}
