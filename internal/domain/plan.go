package domain

import "time"

// Readiness is the athlete's state derived from recent history.
type Readiness struct {
	Status  ReadinessStatus `json:"status"`
	Reasons []string        `json:"reasons"`
}

// Metrics summarises recent training.
type Metrics struct {
	MaxDistanceM     int      `json:"max_distance_m"`
	AvgWeeklyVolumeM int      `json:"avg_weekly_volume_m"`
	AvgEffort        float64  `json:"avg_effort"`
	AvgPaceMinPerKm  *float64 `json:"avg_pace_min_per_km"`
	Sessions7d       int      `json:"sessions_7d"`
	Sessions14d      int      `json:"sessions_14d"`
}

type Validation struct {
	DistanceCheckPassed   bool     `json:"distance_check_passed"`
	GuardrailsCheckPassed bool     `json:"guardrails_check_passed"`
	Warnings              []string `json:"warnings"`
}

// Lineage links a derived plan to the plan it was computed from.
type Lineage struct {
	ID         string        `json:"id,omitempty"`
	ParentID   string        `json:"parent_id,omitempty"`
	Generation int           `json:"generation"`
	Operation  PlanOperation `json:"operation"`
}

type PlanSession struct {
	Type                 SessionType `json:"type"`
	TotalDistanceM       *int        `json:"total_distance_m"`
	EstimatedDurationMin int         `json:"estimated_duration_min"`
	Intensity            Intensity   `json:"intensity"`
	Structure            []Block     `json:"scaled_structure"`
	OpenWaterAddons      []string    `json:"open_water_addons,omitempty"`
	SafetyNote           *string     `json:"safety_note"`
}

// DistanceM returns the stated total, zero for a rest session.
func (s PlanSession) DistanceM() int {
	if s.TotalDistanceM == nil {
		return 0
	}
	return *s.TotalDistanceM
}

type Provenance struct {
	TemplateID     string   `json:"template_id"`
	TemplateName   string   `json:"template_name"`
	TemplateSource string   `json:"template_source"`
	ScalingNotes   []string `json:"scaling_notes"`
}

// SessionPlan is the planner's answer for one day.
type SessionPlan struct {
	Lineage     Lineage     `json:"lineage"`
	Date        Date        `json:"date"`
	Session     PlanSession `json:"session"`
	Provenance  Provenance  `json:"provenance"`
	Phase       Phase       `json:"phase"`
	DaysToEvent int         `json:"days_to_event"`
	Readiness   Readiness   `json:"readiness"`
	Validation  Validation  `json:"validation"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (p SessionPlan) IsRest() bool {
	return p.Session.Type == SessionRest || p.Session.Intensity == IntensityRest
}
