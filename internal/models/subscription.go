package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Subscription is the slice of the billing service's subscription document
// this service reads to pick a refresh cooldown. Billing owns the collection;
// here it is read-only.
type Subscription struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   string        `bson:"userId" json:"userId"`
	PlanType Tier          `bson:"planType" json:"planType"`
	Status   string        `bson:"status" json:"status"`
}

const SubscriptionStatusActive = "active"
