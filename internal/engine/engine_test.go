package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"skillpath-service/internal/catalog"
)

// testCatalog builds a catalogue from a fixed overlay so tests do not depend
// on the built-in reference data
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	overlay := map[string]any{
		"aliases": map[string]string{
			"js":         "JavaScript",
			"javascript": "JavaScript",
			"ts":         "TypeScript",
			"typescript": "TypeScript",
			"react":      "React",
			"reactjs":    "React",
			"golang":     "Go",
			"go":         "Go",
			"java":       "Java",
		},
		"demand": []map[string]any{
			{"skill": "React", "category": "frontend", "demand": 80, "trend": "rising"},
			{"skill": "TypeScript", "category": "frontend", "demand": 85, "trend": "rising"},
			{"skill": "JavaScript", "category": "frontend", "demand": 75, "trend": "stable"},
			{"skill": "Go", "category": "backend", "demand": 70, "trend": "stable"},
			{"skill": "Java", "category": "backend", "demand": 50, "trend": "declining"},
		},
		"archetypes": []map[string]any{
			{
				"id":          "frontend-engineer",
				"title":       "Frontend Engineer",
				"description": "Builds user interfaces",
				"requiredSkills": map[string]int{
					"React":      80,
					"TypeScript": 60,
				},
			},
			{
				"id":              "generalist",
				"title":           "Generalist",
				"description":     "No requirements recorded yet",
				"requiredSkills": map[string]int{},
			},
		},
	}

	data, err := json.Marshal(overlay)
	if err != nil {
		t.Fatalf("failed to marshal overlay: %v", err)
	}

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "skillpath"), 0755); err != nil {
		t.Fatalf("failed to create overlay dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "skillpath", "test.json"), data, 0644); err != nil {
		t.Fatalf("failed to write overlay file: %v", err)
	}

	cat := catalog.New()
	if err := cat.InitializeData(dir); err != nil {
		t.Fatalf("failed to load overlay: %v", err)
	}
	return cat
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(nil, testCatalog(t))
}
