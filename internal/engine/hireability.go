package engine

import (
	"math"

	"skillpath-service/internal/models"
)

// ScoreHireability aggregates the gap list and path matches into a single
// 0-100 figure: 60% the best path match, 40% the inverse of average gap
// severity. No gaps means no severity penalty; no paths means a zero base.
func (e *Engine) ScoreHireability(gaps []models.SkillGap, paths []models.CareerPath) (int, string) {
	bestMatch := 0
	for _, path := range paths {
		if path.MatchScore > bestMatch {
			bestMatch = path.MatchScore
		}
	}

	avgSeverity := 0.0
	if len(gaps) > 0 {
		total := 0
		for _, gap := range gaps {
			total += gap.TargetLevel - gap.CurrentLevel
		}
		avgSeverity = float64(total) / float64(len(gaps))
	}

	score := clampLevel(int(math.Round(0.6*float64(bestMatch) + 0.4*(100-avgSeverity))))
	return score, models.HireabilityLabel(score)
}
