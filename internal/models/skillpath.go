package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// SkillScore is a single entry of a user's derived skill inventory.
// Recomputed on every extraction pass, never persisted on its own.
type SkillScore struct {
	Name   string      `bson:"name" json:"name"`
	Level  int         `bson:"level" json:"level"` // 0-100
	Source SkillSource `bson:"source" json:"source"`
}

// DemandEntry is static market-demand reference data for one skill
type DemandEntry struct {
	Skill    string      `bson:"skill" json:"skill"`
	Category string      `bson:"category,omitempty" json:"category,omitempty"`
	Demand   int         `bson:"demand" json:"demand"` // 0-100
	Trend    DemandTrend `bson:"trend" json:"trend"`
}

// CareerPathArchetype is a career-path template with a required-skill vector
type CareerPathArchetype struct {
	ID             string         `bson:"id" json:"id"`
	Title          string         `bson:"title" json:"title"`
	Description    string         `bson:"description" json:"description"`
	RequiredSkills map[string]int `bson:"required_skills" json:"requiredSkills"` // canonical name -> required level 0-100
}

// SkillGap describes one skill where the user falls short of a target level
type SkillGap struct {
	Skill          string      `bson:"skill" json:"skill"`
	Category       string      `bson:"category" json:"category"`
	CurrentLevel   int         `bson:"current_level" json:"currentLevel"`
	TargetLevel    int         `bson:"target_level" json:"targetLevel"`
	Priority       GapPriority `bson:"priority" json:"priority"`
	Demand         int         `bson:"demand" json:"demand"`
	EstimatedHours int         `bson:"estimated_hours" json:"estimatedHours"`
	Impact         int         `bson:"impact" json:"impact"`
}

// CareerPath is the match result of one archetype against a user's inventory
type CareerPath struct {
	ArchetypeID   string      `bson:"archetype_id" json:"archetypeId"`
	Title         string      `bson:"title" json:"title"`
	Description   string      `bson:"description" json:"description"`
	MatchScore    int         `bson:"match_score" json:"matchScore"` // 0-100
	PresentSkills []string    `bson:"present_skills" json:"presentSkills"`
	MissingSkills []string    `bson:"missing_skills" json:"missingSkills"`
	DemandTrend   DemandTrend `bson:"demand_trend" json:"demandTrend"`
}

// SkillPathRecommendation is the persisted per-user recommendation bundle.
// It is replaced wholesale on every recomputation, never partially updated.
type SkillPathRecommendation struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID           string        `bson:"user_id" json:"userId"`
	SkillGaps        []SkillGap    `bson:"skill_gaps" json:"skillGaps"`
	CareerPaths      []CareerPath  `bson:"career_paths" json:"careerPaths"`
	HireabilityScore int           `bson:"hireability_score" json:"hireabilityScore"`
	HireabilityLabel string        `bson:"hireability_label" json:"hireabilityLabel"`
	GeneratedAt      time.Time     `bson:"generated_at" json:"generatedAt"`
}

// ProjectRecord is the slice of a student's stored project the extractor
// consumes. Malformed records contribute nothing instead of failing extraction.
type ProjectRecord struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string        `bson:"title" json:"title"`
	Technologies []string      `bson:"technologies" json:"technologies"`
	Skills       []string      `bson:"skills" json:"skills"`
	CreatedAt    time.Time     `bson:"created_at" json:"createdAt"`
}

// UserSkillSources is everything extraction needs about one user
type UserSkillSources struct {
	UserID         string          `bson:"user_id" json:"userId"`
	Projects       []ProjectRecord `bson:"projects" json:"projects"`
	DeclaredSkills []string        `bson:"declared_skills" json:"declaredSkills"`
}

// GetRecommendationIndexes returns the MongoDB indexes for the cache collection
func GetRecommendationIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "generated_at", Value: -1},
			},
		},
	}
}

// GetProfileIndexes returns the MongoDB indexes for the profile sources collection
func GetProfileIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "projects.created_at", Value: -1},
			},
		},
	}
}
