package repository

import (
	"context"
	"fmt"
	"skillpath-service/internal/models"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// RecommendationRepository persists the per-user recommendation bundle. Each
// bundle is exclusively owned by one user (unique on user_id) and always
// replaced wholesale.
type RecommendationRepository struct {
	collection *mongo.Collection
}

func NewRecommendationRepository(database *mongo.Database, collection string) *RecommendationRepository {
	return &RecommendationRepository{
		collection: database.Collection(collection),
	}
}

func (r *RecommendationRepository) InitializeIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, models.GetRecommendationIndexes())
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUser returns the cached bundle for a user, or nil if none exists
func (r *RecommendationRepository) GetByUser(ctx context.Context, userID string) (*models.SkillPathRecommendation, error) {
	var rec models.SkillPathRecommendation
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recommendation: %w", err)
	}

	return &rec, nil
}

// Upsert replaces the user's bundle, creating it if absent
func (r *RecommendationRepository) Upsert(ctx context.Context, rec *models.SkillPathRecommendation) error {
	if rec.ID.IsZero() {
		rec.ID = bson.NewObjectID()
	}

	filter := bson.M{"user_id": rec.UserID}
	opts := options.Replace().SetUpsert(true)

	_, err := r.collection.ReplaceOne(ctx, filter, rec, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert recommendation: %w", err)
	}

	return nil
}

// Delete removes the user's bundle if present
func (r *RecommendationRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete recommendation: %w", err)
	}
	return nil
}

// DeleteIfGeneratedAt deletes the user's bundle only if generated_at still
// matches the value the caller read. Two racing refreshes can both pass the
// cooldown check; this conditional delete lets exactly one of them win, so
// the loser reports the rate limit instead of recomputing redundantly.
func (r *RecommendationRepository) DeleteIfGeneratedAt(ctx context.Context, userID string, generatedAt time.Time) (bool, error) {
	filter := bson.M{
		"user_id":      userID,
		"generated_at": generatedAt,
	}

	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to conditionally delete recommendation: %w", err)
	}

	return result.DeletedCount > 0, nil
}
