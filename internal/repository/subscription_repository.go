package repository

import (
	"context"
	"fmt"
	"skillpath-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// SubscriptionRepository reads the billing service's subscription collection.
// Only the plan type is consumed here, to select the refresh cooldown.
type SubscriptionRepository struct {
	collection *mongo.Collection
}

func NewSubscriptionRepository(database *mongo.Database, collection string) *SubscriptionRepository {
	return &SubscriptionRepository{
		collection: database.Collection(collection),
	}
}

// GetUserTier returns the tier of the user's active subscription. Users
// without an active subscription are on the free tier.
func (r *SubscriptionRepository) GetUserTier(ctx context.Context, userID string) (models.Tier, error) {
	filter := bson.M{
		"userId": userID,
		"status": models.SubscriptionStatusActive,
	}

	var sub models.Subscription
	err := r.collection.FindOne(ctx, filter).Decode(&sub)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.TierFree, nil
		}
		return models.TierFree, fmt.Errorf("failed to get subscription: %w", err)
	}

	if sub.PlanType == "" {
		return models.TierFree, nil
	}
	return sub.PlanType, nil
}
