package engine

import (
	"math"
	"sort"
	"strings"

	"skillpath-service/internal/models"
)

// MatchPaths scores every career-path archetype against the user's inventory
// and returns the matches ordered by score descending, title ascending on
// ties. Archetypes with an empty required-skill vector have no defined match
// score and are excluded entirely.
func (e *Engine) MatchPaths(inventory []models.SkillScore, archetypes []models.CareerPathArchetype) []models.CareerPath {
	levels := inventoryLevels(inventory)

	paths := make([]models.CareerPath, 0, len(archetypes))
	for _, archetype := range archetypes {
		if len(archetype.RequiredSkills) == 0 {
			continue
		}
		paths = append(paths, e.matchArchetype(levels, archetype))
	}

	sort.Slice(paths, func(i, j int) bool {
		if paths[i].MatchScore != paths[j].MatchScore {
			return paths[i].MatchScore > paths[j].MatchScore
		}
		return paths[i].Title < paths[j].Title
	})

	return paths
}

func (e *Engine) matchArchetype(levels map[string]int, archetype models.CareerPathArchetype) models.CareerPath {
	var haveSum, targetSum int
	var present, missing []string
	trendCounts := make(map[models.DemandTrend]int)

	for skill, target := range archetype.RequiredSkills {
		entry := e.catalog.GetDemand(skill)
		target = clampLevel(target)
		current := levels[strings.ToLower(entry.Skill)]

		if current < target {
			haveSum += current
		} else {
			haveSum += target
		}
		targetSum += target

		if float64(current) >= float64(target)*e.config.PresenceThreshold {
			present = append(present, entry.Skill)
		} else {
			missing = append(missing, entry.Skill)
		}

		trendCounts[entry.Trend]++
	}

	score := 0
	if targetSum > 0 {
		score = clampLevel(int(math.Round(100 * float64(haveSum) / float64(targetSum))))
	}

	sort.Strings(present)
	sort.Strings(missing)

	return models.CareerPath{
		ArchetypeID:   archetype.ID,
		Title:         archetype.Title,
		Description:   archetype.Description,
		MatchScore:    score,
		PresentSkills: present,
		MissingSkills: missing,
		DemandTrend:   majorityTrend(trendCounts),
	}
}

// majorityTrend picks the most frequent trend across an archetype's required
// skills; any tie resolves toward stable
func majorityTrend(counts map[models.DemandTrend]int) models.DemandTrend {
	best := models.TrendStable
	bestCount := counts[models.TrendStable]
	tied := false

	for _, trend := range []models.DemandTrend{models.TrendRising, models.TrendDeclining} {
		if counts[trend] > bestCount {
			best = trend
			bestCount = counts[trend]
			tied = false
		} else if counts[trend] == bestCount && counts[trend] > 0 && trend != best {
			tied = true
		}
	}

	if tied {
		return models.TrendStable
	}
	return best
}
