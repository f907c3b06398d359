package engine

import (
	"math"
	"sort"
	"strings"

	"skillpath-service/internal/models"
)

// AnalyzeGaps compares the user's inventory against the union of the
// archetypes' required-skill vectors and returns the ranked gap list, highest
// priority first, then impact descending, ties broken by skill name. The list
// is capped at the configured top-N. Pass a single archetype to narrow scope.
func (e *Engine) AnalyzeGaps(inventory []models.SkillScore, archetypes []models.CareerPathArchetype) []models.SkillGap {
	levels := inventoryLevels(inventory)

	// Union of required vectors; when archetypes disagree on a target the
	// highest one wins, since closing that gap serves every path needing it.
	targets := make(map[string]int)
	for _, archetype := range archetypes {
		for skill, target := range archetype.RequiredSkills {
			canonical := e.catalog.Normalize(skill)
			key := strings.ToLower(canonical)
			if target > targets[key] {
				targets[key] = target
			}
		}
	}

	gaps := make([]models.SkillGap, 0, len(targets))
	for key, target := range targets {
		target = clampLevel(target)
		current := levels[key]

		delta := target - current
		if delta <= 0 {
			continue
		}

		entry := e.catalog.GetDemand(key)
		gaps = append(gaps, models.SkillGap{
			Skill:          entry.Skill,
			Category:       entry.Category,
			CurrentLevel:   current,
			TargetLevel:    target,
			Priority:       gapPriority(delta, entry.Demand),
			Demand:         entry.Demand,
			EstimatedHours: e.estimateHours(delta),
			Impact:         int(math.Round(float64(entry.Demand) * float64(delta) / 100)),
		})
	}

	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Priority.Rank() != gaps[j].Priority.Rank() {
			return gaps[i].Priority.Rank() > gaps[j].Priority.Rank()
		}
		if gaps[i].Impact != gaps[j].Impact {
			return gaps[i].Impact > gaps[j].Impact
		}
		return gaps[i].Skill < gaps[j].Skill
	})

	if e.config.MaxGaps > 0 && len(gaps) > e.config.MaxGaps {
		gaps = gaps[:e.config.MaxGaps]
	}

	return gaps
}

// gapPriority classifies a gap. Thresholds are stable for testing; a larger
// delta or demand never lowers the resulting priority.
func gapPriority(delta, demand int) models.GapPriority {
	switch {
	case delta >= 50 && demand >= 70:
		return models.PriorityCritical
	case delta >= 30 || demand >= 80:
		return models.PriorityHigh
	case delta >= 15:
		return models.PriorityMedium
	default:
		return models.PriorityLow
	}
}

func (e *Engine) estimateHours(delta int) int {
	hours := delta * e.config.HoursPerDelta
	if hours < e.config.MinEstimatedHours {
		hours = e.config.MinEstimatedHours
	}
	if hours > e.config.MaxEstimatedHours {
		hours = e.config.MaxEstimatedHours
	}
	return hours
}

// inventoryLevels indexes an inventory by lowercased canonical name
func inventoryLevels(inventory []models.SkillScore) map[string]int {
	levels := make(map[string]int, len(inventory))
	for _, score := range inventory {
		key := strings.ToLower(score.Name)
		if score.Level > levels[key] {
			levels[key] = score.Level
		}
	}
	return levels
}
