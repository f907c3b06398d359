package repository

import (
	"context"
	"fmt"
	"skillpath-service/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ProfileRepository reads the student profile documents that feed skill
// extraction. The profile service owns writes; this service only reads.
type ProfileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(database *mongo.Database, collection string) *ProfileRepository {
	return &ProfileRepository{
		collection: database.Collection(collection),
	}
}

func (r *ProfileRepository) InitializeIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, models.GetProfileIndexes())
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// LoadUserSkillSources returns the user's projects and declared skills. A
// user without a profile document gets empty sources, not an error; absence
// of data is a valid input to the pipeline.
func (r *ProfileRepository) LoadUserSkillSources(ctx context.Context, userID string) (*models.UserSkillSources, error) {
	var sources models.UserSkillSources
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&sources)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.UserSkillSources{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to load skill sources: %w", err)
	}

	return &sources, nil
}
