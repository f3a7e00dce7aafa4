package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

const (
	RestDayID      = "rest_day"
	RecoverySwimID = "recovery_swim"
)

//go:embed templates.json
var builtinJSON []byte

// Catalog is an immutable, ordered set of workout templates. It is safe for
// concurrent use once built.
type Catalog struct {
	templates []domain.WorkoutTemplate
	byID      map[string]int
	rest      domain.WorkoutTemplate
	recovery  domain.WorkoutTemplate
}

// New builds a catalog from the given templates, keeping their order. The
// rest-day and recovery-swim templates fall back to built-in definitions
// when the set does not provide them.
func New(templates []domain.WorkoutTemplate) *Catalog {
	c := &Catalog{
		templates: make([]domain.WorkoutTemplate, 0, len(templates)),
		byID:      make(map[string]int, len(templates)),
		rest:      fallbackRestDay(),
		recovery:  fallbackRecoverySwim(),
	}
	for _, t := range templates {
		t.Structure = domain.CloneBlocks(t.Structure)
		t.Phases = slices.Clone(t.Phases)
		t.Tags = slices.Clone(t.Tags)
		c.byID[t.ID] = len(c.templates)
		c.templates = append(c.templates, t)
		switch t.ID {
		case RestDayID:
			c.rest = t
		case RecoverySwimID:
			c.recovery = t
		}
	}
	return c
}

// Default returns the embedded template library.
func Default() (*Catalog, error) {
	return Parse(builtinJSON)
}

// Load reads a template library from a JSON file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a JSON array of templates.
func Parse(data []byte) (*Catalog, error) {
	var templates []domain.WorkoutTemplate
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if errs := Validate(templates); len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return New(templates), nil
}

// ByID looks up a template, including the rest-day and recovery fallbacks.
func (c *Catalog) ByID(id string) (domain.WorkoutTemplate, bool) {
	if i, ok := c.byID[id]; ok {
		return c.templates[i], true
	}
	switch id {
	case RestDayID:
		return c.rest, true
	case RecoverySwimID:
		return c.recovery, true
	}
	return domain.WorkoutTemplate{}, false
}

// ByPhase returns the non-rest templates tagged for the phase, in catalog order.
func (c *Catalog) ByPhase(p domain.Phase) []domain.WorkoutTemplate {
	var out []domain.WorkoutTemplate
	for _, t := range c.templates {
		if t.IsRest() || !t.InPhase(p) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// RestDay returns the fixed rest-day template.
func (c *Catalog) RestDay() domain.WorkoutTemplate { return c.rest }

// RecoverySwim returns the fixed recovery template used when a fatigued
// athlete has no easy option in the current phase.
func (c *Catalog) RecoverySwim() domain.WorkoutTemplate { return c.recovery }

// All returns every template in catalog order.
func (c *Catalog) All() []domain.WorkoutTemplate {
	return slices.Clone(c.templates)
}

func (c *Catalog) Len() int { return len(c.templates) }

func fallbackRestDay() domain.WorkoutTemplate {
	return domain.WorkoutTemplate{
		ID:        RestDayID,
		Source:    "built-in",
		Name:      "Rest Day",
		Phases:    []domain.Phase{domain.PhaseBuild, domain.PhaseSharpen, domain.PhaseTaper},
		Intensity: domain.IntensityRest,
		Tags:      []string{domain.TagRest},
		Structure: []domain.Block{},
	}
}

func fallbackRecoverySwim() domain.WorkoutTemplate {
	return domain.WorkoutTemplate{
		ID:              RecoverySwimID,
		Source:          "built-in",
		Name:            "Recovery Swim",
		Phases:          []domain.Phase{domain.PhaseBuild, domain.PhaseSharpen, domain.PhaseTaper},
		Intensity:       domain.IntensityEasy,
		Tags:            []string{domain.TagRecovery},
		BaseDistanceM:   1000,
		BaseDurationMin: 25,
		Structure: []domain.Block{
			{Label: "Warm-up", Items: []domain.Item{{Instruction: "easy freestyle", DistanceM: 400}}},
			{Label: "Main", Items: []domain.Item{{Instruction: "relaxed freestyle", Reps: 4, RepDistanceM: 50, RestSec: 20}}},
			{Label: "Cool-down", Items: []domain.Item{{Instruction: "easy choice stroke", DistanceM: 400}}},
		},
	}
}
