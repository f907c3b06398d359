package event

const (
	EventTypeRecommendationGenerated = "recommendation.generated"
	EventTypeRecommendationRefreshed = "recommendation.refreshed"
	EventTypeRefreshDenied           = "recommendation.refresh_denied"
)

// RecommendationEvent is published whenever a bundle is generated or replaced
type RecommendationEvent struct {
	EventType        string `json:"eventType"`
	UserID           string `json:"userId"`
	HireabilityScore int    `json:"hireabilityScore"`
	GapCount         int    `json:"gapCount"`
	PathCount        int    `json:"pathCount"`
	Timestamp        int64  `json:"timestamp"`
}

// RefreshDeniedEvent is published when a refresh is rejected by the cooldown
type RefreshDeniedEvent struct {
	EventType        string `json:"eventType"`
	UserID           string `json:"userId"`
	Tier             string `json:"tier"`
	RemainingMinutes int    `json:"remainingMinutes"`
	Timestamp        int64  `json:"timestamp"`
}
