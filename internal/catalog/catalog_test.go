package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"skillpath-service/internal/models"
)

func TestNormalize(t *testing.T) {
	cat := New()

	cases := []struct {
		raw  string
		want string
	}{
		{"JS", "JavaScript"},
		{"javascript", "JavaScript"},
		{"  react  ", "React"},
		{"REACTJS", "React"},
		{"golang", "Go"},
		{"k8s", "Kubernetes"},
		{"Some Unknown Tool", "Some Unknown Tool"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range cases {
		if got := cat.Normalize(tc.raw); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestGetDemand_KnownSkill(t *testing.T) {
	cat := New()

	// Lookup must apply the same alias normalization as extraction
	for _, raw := range []string{"TypeScript", "typescript", "TS", "ts"} {
		entry := cat.GetDemand(raw)
		if entry.Skill != "TypeScript" {
			t.Errorf("GetDemand(%q) resolved to %q", raw, entry.Skill)
		}
		if entry.Demand < 0 || entry.Demand > 100 {
			t.Errorf("demand out of range: %d", entry.Demand)
		}
		if entry.Trend != models.TrendRising {
			t.Errorf("expected rising trend for TypeScript, got %q", entry.Trend)
		}
	}
}

func TestGetDemand_UnknownSkillDefaults(t *testing.T) {
	cat := New()

	entry := cat.GetDemand("Underwater Basket Weaving")
	if entry.Demand != DefaultDemand {
		t.Errorf("expected default demand %d, got %d", DefaultDemand, entry.Demand)
	}
	if entry.Trend != models.TrendStable {
		t.Errorf("expected stable trend for unknown skill, got %q", entry.Trend)
	}
	if entry.Skill != "Underwater Basket Weaving" {
		t.Errorf("expected passthrough name, got %q", entry.Skill)
	}
}

func TestListArchetypes_ReturnsCopy(t *testing.T) {
	cat := New()

	first := cat.ListArchetypes()
	if len(first) == 0 {
		t.Fatal("expected built-in archetypes")
	}

	first[0].Title = "mutated"
	again := cat.ListArchetypes()
	if again[0].Title == "mutated" {
		t.Error("ListArchetypes must not expose internal state")
	}
}

func TestInitializeData_Overlay(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skillpath"), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	overlay := `{
		"aliases": {"rs": "Rust"},
		"demand": [{"skill": "Rust", "category": "backend", "demand": 77, "trend": "rising"}],
		"archetypes": [
			{"id": "systems-engineer", "title": "Systems Engineer", "description": "Low-level services", "requiredSkills": {"Rust": 70}},
			{"id": "frontend-engineer", "title": "Frontend Engineer (updated)", "description": "", "requiredSkills": {"React": 90}}
		]
	}`
	if err := os.WriteFile(filepath.Join(dir, "skillpath", "overlay.json"), []byte(overlay), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cat := New()
	baseline := len(cat.ListArchetypes())
	if err := cat.InitializeData(dir); err != nil {
		t.Fatalf("InitializeData failed: %v", err)
	}

	if got := cat.GetDemand("rs"); got.Skill != "Rust" || got.Demand != 77 {
		t.Errorf("overlay demand not applied: %+v", got)
	}

	archetypes := cat.ListArchetypes()
	// One new archetype appended, one existing replaced in place
	if len(archetypes) != baseline+1 {
		t.Errorf("expected %d archetypes, got %d", baseline+1, len(archetypes))
	}
	for _, a := range archetypes {
		if a.ID == "frontend-engineer" && a.RequiredSkills["React"] != 90 {
			t.Errorf("existing archetype not replaced by overlay: %+v", a)
		}
	}
}

func TestInitializeData_MissingDirIsNotAnError(t *testing.T) {
	cat := New()
	if err := cat.InitializeData(filepath.Join(t.TempDir(), "nope")); err != nil {
		t.Errorf("missing data directory must not fail: %v", err)
	}
}

func TestInitializeData_BadFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skillpath"), 0755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skillpath", "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skillpath", "good.json"), []byte(`{"aliases": {"ex": "Elixir"}}`), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cat := New()
	if err := cat.InitializeData(dir); err != nil {
		t.Fatalf("a broken file must not fail the whole load: %v", err)
	}
	if got := cat.Normalize("ex"); got != "Elixir" {
		t.Errorf("good file not loaded after broken one: %q", got)
	}
}
