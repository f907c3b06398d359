package engine

import (
	"sort"
	"strings"
	"time"

	"skillpath-service/internal/models"
)

// skillEvidence accumulates what extraction observed about one canonical skill
type skillEvidence struct {
	name         string
	projectCount int
	recent       bool
	declared     bool
}

// ExtractInventory derives the user's skill inventory from stored projects and
// declared skills. Skill strings are alias-folded to canonical names; a skill
// referenced by several projects is counted once per project. Malformed or
// empty entries contribute nothing, so one corrupt project record degrades
// gracefully instead of failing the whole pass.
func (e *Engine) ExtractInventory(sources *models.UserSkillSources, now time.Time) []models.SkillScore {
	if sources == nil {
		return []models.SkillScore{}
	}

	evidence := make(map[string]*skillEvidence)

	for _, project := range sources.Projects {
		seen := make(map[string]bool)

		for _, raw := range append(append([]string{}, project.Technologies...), project.Skills...) {
			canonical := e.catalog.Normalize(raw)
			if canonical == "" {
				continue
			}
			key := strings.ToLower(canonical)
			if seen[key] {
				continue
			}
			seen[key] = true

			ev, ok := evidence[key]
			if !ok {
				ev = &skillEvidence{name: canonical}
				evidence[key] = ev
			}
			ev.projectCount++
			if !project.CreatedAt.IsZero() && now.Sub(project.CreatedAt) <= e.config.RecencyWindow {
				ev.recent = true
			}
		}
	}

	for _, raw := range sources.DeclaredSkills {
		canonical := e.catalog.Normalize(raw)
		if canonical == "" {
			continue
		}
		key := strings.ToLower(canonical)

		ev, ok := evidence[key]
		if !ok {
			ev = &skillEvidence{name: canonical}
			evidence[key] = ev
		}
		ev.declared = true
	}

	inventory := make([]models.SkillScore, 0, len(evidence))
	for _, ev := range evidence {
		inventory = append(inventory, models.SkillScore{
			Name:   ev.name,
			Level:  e.scoreEvidence(ev),
			Source: ev.source(),
		})
	}

	// Stable order so repeated extraction of the same profile is identical
	sort.Slice(inventory, func(i, j int) bool {
		return inventory[i].Name < inventory[j].Name
	})

	return inventory
}

// scoreEvidence applies the frequency/recency heuristic: base level for any
// appearance, an increment per additional project, a bonus for recent work
func (e *Engine) scoreEvidence(ev *skillEvidence) int {
	level := e.config.BaseLevel

	if ev.projectCount > 1 {
		level += (ev.projectCount - 1) * e.config.ProjectIncrement
	}
	if ev.recent {
		level += e.config.RecencyBonus
	}

	return clampLevel(level)
}

func (ev *skillEvidence) source() models.SkillSource {
	if ev.projectCount > 0 {
		return models.SourceProject
	}
	return models.SourceDeclared
}
