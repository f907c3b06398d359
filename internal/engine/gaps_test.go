package engine

import (
	"reflect"
	"testing"

	"skillpath-service/internal/models"
)

func frontendArchetype() models.CareerPathArchetype {
	return models.CareerPathArchetype{
		ID:          "frontend-engineer",
		Title:       "Frontend Engineer",
		Description: "Builds user interfaces",
		RequiredSkills: map[string]int{
			"React":      80,
			"TypeScript": 60,
		},
	}
}

func TestAnalyzeGaps_SingleSkillUser(t *testing.T) {
	eng := testEngine(t)

	inventory := []models.SkillScore{
		{Name: "React", Level: 40, Source: models.SourceProject},
	}

	gaps := eng.AnalyzeGaps(inventory, []models.CareerPathArchetype{frontendArchetype()})
	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d", len(gaps))
	}

	// TypeScript: delta 60, demand 85 -> critical, impact 51
	ts := gaps[0]
	if ts.Skill != "TypeScript" {
		t.Fatalf("expected TypeScript gap first, got %q", ts.Skill)
	}
	if ts.CurrentLevel != 0 || ts.TargetLevel != 60 {
		t.Errorf("unexpected TypeScript levels: current %d target %d", ts.CurrentLevel, ts.TargetLevel)
	}
	if ts.Priority != models.PriorityCritical {
		t.Errorf("expected critical priority, got %q", ts.Priority)
	}
	if ts.Impact != 51 {
		t.Errorf("expected impact 51, got %d", ts.Impact)
	}

	// React: delta 40, demand 80 -> high, impact 32, hours 160
	react := gaps[1]
	if react.Skill != "React" {
		t.Fatalf("expected React gap second, got %q", react.Skill)
	}
	if react.CurrentLevel != 40 || react.TargetLevel != 80 {
		t.Errorf("unexpected React levels: current %d target %d", react.CurrentLevel, react.TargetLevel)
	}
	if react.Priority != models.PriorityHigh {
		t.Errorf("expected high priority, got %q", react.Priority)
	}
	if react.EstimatedHours != 160 {
		t.Errorf("expected 160 estimated hours, got %d", react.EstimatedHours)
	}
}

func TestAnalyzeGaps_SkipsSatisfiedSkills(t *testing.T) {
	eng := testEngine(t)

	inventory := []models.SkillScore{
		{Name: "React", Level: 90, Source: models.SourceProject},
		{Name: "TypeScript", Level: 60, Source: models.SourceProject},
	}

	gaps := eng.AnalyzeGaps(inventory, []models.CareerPathArchetype{frontendArchetype()})
	if len(gaps) != 0 {
		t.Errorf("expected no gaps for a satisfied inventory, got %d", len(gaps))
	}
}

func TestGapPriority_Thresholds(t *testing.T) {
	cases := []struct {
		name   string
		delta  int
		demand int
		want   models.GapPriority
	}{
		{"large delta high demand", 50, 70, models.PriorityCritical},
		{"large delta low demand", 60, 40, models.PriorityHigh},
		{"small delta very high demand", 10, 80, models.PriorityHigh},
		{"moderate delta", 30, 50, models.PriorityHigh},
		{"medium delta", 15, 50, models.PriorityMedium},
		{"tiny delta", 10, 50, models.PriorityLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gapPriority(tc.delta, tc.demand)
			if got != tc.want {
				t.Errorf("gapPriority(%d, %d) = %q, want %q", tc.delta, tc.demand, got, tc.want)
			}
		})
	}
}

func TestGapPriority_MonotonicInDelta(t *testing.T) {
	// For fixed demand, a larger delta never lowers the priority rank
	for _, demand := range []int{0, 40, 70, 80, 100} {
		prev := 0
		for delta := 1; delta <= 100; delta++ {
			rank := gapPriority(delta, demand).Rank()
			if rank < prev {
				t.Fatalf("priority rank dropped from %d to %d at delta %d demand %d", prev, rank, delta, demand)
			}
			prev = rank
		}
	}
}

func TestGapPriority_MonotonicInDemand(t *testing.T) {
	for _, delta := range []int{1, 15, 30, 50, 100} {
		prev := 0
		for demand := 0; demand <= 100; demand++ {
			rank := gapPriority(delta, demand).Rank()
			if rank < prev {
				t.Fatalf("priority rank dropped from %d to %d at demand %d delta %d", prev, rank, demand, delta)
			}
			prev = rank
		}
	}
}

func TestAnalyzeGaps_Clamping(t *testing.T) {
	eng := testEngine(t)

	archetype := models.CareerPathArchetype{
		ID:    "stretch",
		Title: "Stretch Role",
		RequiredSkills: map[string]int{
			"React":      100,
			"TypeScript": 100,
			"Go":         100,
			"Java":       100,
		},
	}

	gaps := eng.AnalyzeGaps(nil, []models.CareerPathArchetype{archetype})
	for _, gap := range gaps {
		if gap.CurrentLevel < 0 || gap.CurrentLevel > 100 {
			t.Errorf("current level out of range: %d", gap.CurrentLevel)
		}
		if gap.TargetLevel < 0 || gap.TargetLevel > 100 {
			t.Errorf("target level out of range: %d", gap.TargetLevel)
		}
		if gap.Demand < 0 || gap.Demand > 100 {
			t.Errorf("demand out of range: %d", gap.Demand)
		}
		if gap.EstimatedHours < 4 || gap.EstimatedHours > 200 {
			t.Errorf("estimated hours out of bounds: %d", gap.EstimatedHours)
		}
		if gap.Impact < 0 {
			t.Errorf("impact must be non-negative, got %d", gap.Impact)
		}
	}
}

func TestAnalyzeGaps_TopNCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxGaps = 2
	eng := New(cfg, testCatalog(t))

	archetype := models.CareerPathArchetype{
		ID:    "wide",
		Title: "Wide Role",
		RequiredSkills: map[string]int{
			"React":      80,
			"TypeScript": 80,
			"Go":         80,
			"Java":       80,
			"JavaScript": 80,
		},
	}

	gaps := eng.AnalyzeGaps(nil, []models.CareerPathArchetype{archetype})
	if len(gaps) != 2 {
		t.Errorf("expected gap list capped at 2, got %d", len(gaps))
	}
}

func TestAnalyzeGaps_Deterministic(t *testing.T) {
	eng := testEngine(t)

	inventory := []models.SkillScore{
		{Name: "React", Level: 30, Source: models.SourceProject},
		{Name: "Go", Level: 20, Source: models.SourceDeclared},
	}
	archetypes := []models.CareerPathArchetype{
		frontendArchetype(),
		{
			ID:    "backend",
			Title: "Backend Engineer",
			RequiredSkills: map[string]int{
				"Go":   70,
				"Java": 50,
			},
		},
	}

	first := eng.AnalyzeGaps(inventory, archetypes)
	for i := 0; i < 10; i++ {
		again := eng.AnalyzeGaps(inventory, archetypes)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("gap analysis is not deterministic")
		}
	}
}

func TestAnalyzeGaps_UnionTakesHighestTarget(t *testing.T) {
	eng := testEngine(t)

	archetypes := []models.CareerPathArchetype{
		{ID: "a", Title: "A", RequiredSkills: map[string]int{"Go": 50}},
		{ID: "b", Title: "B", RequiredSkills: map[string]int{"Go": 70}},
	}

	gaps := eng.AnalyzeGaps(nil, archetypes)
	if len(gaps) != 1 {
		t.Fatalf("expected a single union gap, got %d", len(gaps))
	}
	if gaps[0].TargetLevel != 70 {
		t.Errorf("expected union target 70, got %d", gaps[0].TargetLevel)
	}
}
