package models

// DemandTrend describes the market direction for a skill
type DemandTrend string

const (
	TrendRising    DemandTrend = "rising"
	TrendStable    DemandTrend = "stable"
	TrendDeclining DemandTrend = "declining"
)

// GapPriority ranks how urgently a skill gap should be closed
type GapPriority string

const (
	PriorityCritical GapPriority = "critical"
	PriorityHigh     GapPriority = "high"
	PriorityMedium   GapPriority = "medium"
	PriorityLow      GapPriority = "low"
)

// Rank maps a priority to a sortable order (higher is more urgent)
func (p GapPriority) Rank() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// SkillSource records where an extracted skill was observed
type SkillSource string

const (
	SourceProject  SkillSource = "project"
	SourceDeclared SkillSource = "declared"
)

// Tier mirrors the plan types owned by the billing service; only the
// cooldown selection depends on it here
type Tier string

const (
	TierFree    Tier = "free"
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

// Hireability labels
const (
	LabelExcellent      = "Excellent"
	LabelGood           = "Good"
	LabelDeveloping     = "Developing"
	LabelGettingStarted = "Getting Started"
)

// HireabilityLabel maps a 0-100 score to its qualitative label
func HireabilityLabel(score int) string {
	switch {
	case score >= 75:
		return LabelExcellent
	case score >= 50:
		return LabelGood
	case score >= 25:
		return LabelDeveloping
	default:
		return LabelGettingStarted
	}
}
