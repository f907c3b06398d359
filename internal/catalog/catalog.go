package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"skillpath-service/internal/models"
	"strings"
)

// Catalog is the process-wide, read-only reference data the recommendation
// engine matches against: market demand per skill, career-path archetypes and
// the alias table that folds raw skill strings to canonical names. Curation
// happens offline; there is no mutation path at runtime.
type Catalog struct {
	aliases    map[string]string             // normalized raw -> canonical name
	demand     map[string]models.DemandEntry // normalized canonical -> entry
	archetypes []models.CareerPathArchetype
}

const (
	DefaultDemand = 50
)

// New builds a catalogue from the compiled-in defaults
func New() *Catalog {
	c := &Catalog{
		aliases: make(map[string]string),
		demand:  make(map[string]models.DemandEntry),
	}

	for raw, canonical := range defaultAliases {
		c.aliases[normalizeKey(raw)] = canonical
	}
	for _, entry := range defaultDemand {
		c.demand[normalizeKey(entry.Skill)] = entry
	}
	c.archetypes = append(c.archetypes, defaultArchetypes...)

	return c
}

// catalogFile is the on-disk overlay format, one JSON document per file
type catalogFile struct {
	Aliases    map[string]string            `json:"aliases,omitempty"`
	Demand     []models.DemandEntry         `json:"demand,omitempty"`
	Archetypes []models.CareerPathArchetype `json:"archetypes,omitempty"`
}

// InitializeData overlays catalogue data from JSON files under
// <dataDir>/skillpath. Missing directory is not an error; a single bad file
// is skipped so the rest of the data still loads.
func (c *Catalog) InitializeData(dataDir string) error {
	catalogDir := filepath.Join(dataDir, "skillpath")

	if _, err := os.Stat(catalogDir); os.IsNotExist(err) {
		log.Printf("Catalog data directory not found, using built-in data: %s", catalogDir)
		return nil
	}

	var filesLoaded int
	err := filepath.WalkDir(catalogDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".json") {
			return nil
		}

		if err := c.loadFile(path); err != nil {
			log.Printf("Warning: failed to load catalog file %s: %v", path, err)
			return nil
		}

		filesLoaded++
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk catalog directory: %w", err)
	}

	log.Printf("Loaded %d catalog files from %s", filesLoaded, catalogDir)
	return nil
}

func (c *Catalog) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	for raw, canonical := range file.Aliases {
		c.aliases[normalizeKey(raw)] = canonical
	}
	for _, entry := range file.Demand {
		c.demand[normalizeKey(entry.Skill)] = entry
	}

	for _, archetype := range file.Archetypes {
		replaced := false
		for i, existing := range c.archetypes {
			if existing.ID == archetype.ID {
				c.archetypes[i] = archetype
				replaced = true
				break
			}
		}
		if !replaced {
			c.archetypes = append(c.archetypes, archetype)
		}
	}

	return nil
}

// Normalize folds a raw skill/technology string to its canonical name.
// Lookup is case-insensitive and trimmed; unknown strings pass through with
// their original casing so extraction never drops a skill.
func (c *Catalog) Normalize(raw string) string {
	key := normalizeKey(raw)
	if key == "" {
		return ""
	}

	if canonical, ok := c.aliases[key]; ok {
		return canonical
	}
	if entry, ok := c.demand[key]; ok {
		return entry.Skill
	}
	return strings.TrimSpace(raw)
}

// GetDemand looks up market demand for a skill, applying the same alias
// normalization as extraction so catalogue keys match extracted names.
// Unknown skills get the neutral default entry.
func (c *Catalog) GetDemand(skill string) models.DemandEntry {
	canonical := c.Normalize(skill)
	if entry, ok := c.demand[normalizeKey(canonical)]; ok {
		return entry
	}
	return models.DemandEntry{
		Skill:    canonical,
		Category: "general",
		Demand:   DefaultDemand,
		Trend:    models.TrendStable,
	}
}

// ListArchetypes returns all career-path archetypes
func (c *Catalog) ListArchetypes() []models.CareerPathArchetype {
	out := make([]models.CareerPathArchetype, len(c.archetypes))
	copy(out, c.archetypes)
	return out
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
