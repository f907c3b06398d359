package engine

import (
	"time"

	"skillpath-service/internal/catalog"
)

// Config holds the tuning values for the recommendation engine
type Config struct {
	BaseLevel         int           // level assigned for any appearance
	ProjectIncrement  int           // added per additional project referencing the skill
	RecencyBonus      int           // added when a referencing project is recent
	RecencyWindow     time.Duration // how recent a project must be for the bonus
	MaxGaps           int           // top-N cap on the gap list
	HoursPerDelta     int           // learning-hours estimate per level of delta
	MinEstimatedHours int
	MaxEstimatedHours int
	PresenceThreshold float64 // fraction of target level that counts as "have it"
}

// DefaultConfig returns the production defaults
func DefaultConfig() *Config {
	return &Config{
		BaseLevel:         40,
		ProjectIncrement:  10,
		RecencyBonus:      5,
		RecencyWindow:     6 * 30 * 24 * time.Hour,
		MaxGaps:           10,
		HoursPerDelta:     4,
		MinEstimatedHours: 4,
		MaxEstimatedHours: 200,
		PresenceThreshold: 0.7,
	}
}

// Engine computes skill inventories, gaps, path matches and hireability
// scores. Every method is a pure function over its inputs plus the read-only
// catalogue, so identical inputs always produce identical ordered output.
type Engine struct {
	config  *Config
	catalog *catalog.Catalog
}

// New creates an engine; nil config selects the defaults
func New(config *Config, cat *catalog.Catalog) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{
		config:  config,
		catalog: cat,
	}
}

func clampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
