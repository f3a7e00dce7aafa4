package planner

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/catalog"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

// Planner composes the rule stages into a daily plan. It holds no mutable
// state and is safe for concurrent use.
type Planner struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

type Option func(*Planner)

// WithClock overrides the clock used to derive today's date.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

func New(c *catalog.Catalog, opts ...Option) *Planner {
	p := &Planner{catalog: c, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Today is the planner's current calendar day in local time.
func (p *Planner) Today() domain.Date {
	return domain.DateOf(p.now())
}

func (p *Planner) Catalog() *catalog.Catalog { return p.catalog }

// GenerateSessionPlan builds today's plan from the profile and the full
// session history. An empty preferred type falls back to the profile's access.
func (p *Planner) GenerateSessionPlan(profile domain.AthleteProfile, history []domain.TrainingSession, preferred domain.SessionType) domain.SessionPlan {
	today := p.Today()
	phase, days := ClassifyPhase(profile.Event.Date, today)
	readiness := AssessReadiness(RecentSessions(history, today, ReadinessWindowDays), today)
	metrics := CalculateRecentMetrics(history, today)

	target := preferred
	if !domain.ValidSessionTypes[target] {
		target = profile.DefaultSessionType()
	}

	plan := domain.SessionPlan{
		Lineage:     domain.Lineage{Generation: 0, Operation: domain.OpGenerate},
		Date:        today,
		Phase:       phase,
		DaysToEvent: days,
		Readiness:   readiness,
	}

	tmpl := SelectTemplate(p.catalog, SelectionInput{
		Phase:     phase,
		Readiness: readiness,
		Metrics:   metrics,
		Today:     today,
	})
	if tmpl == nil {
		rest := p.catalog.RestDay()
		plan.Session = restSession()
		plan.Provenance = provenanceFor(rest, []string{fmt.Sprintf("No templates available for %s; resting", phase)})
	} else {
		plan.Session, plan.Provenance = p.fromTemplate(*tmpl, target, profile, metrics)
	}

	plan.Validation = ValidatePlan(plan, profile, metrics)
	return plan
}

// AdaptPlanToType re-derives the plan for another environment from its
// original template, so repeated adaptation never compounds drift. Rest
// plans pass through unchanged.
func (p *Planner) AdaptPlanToType(plan domain.SessionPlan, newType domain.SessionType, profile domain.AthleteProfile, m domain.Metrics) domain.SessionPlan {
	if plan.IsRest() || !domain.ValidSessionTypes[newType] {
		return plan
	}

	from := plan.Session.Type
	out := derive(plan, domain.OpAdapt)

	if tmpl, ok := p.catalog.ByID(plan.Provenance.TemplateID); ok && !tmpl.IsRest() {
		out.Session, out.Provenance = p.fromTemplate(tmpl, newType, profile, m)
	} else {
		out.Session = adaptExisting(plan.Session, newType, m)
		out.Provenance = copyProvenance(plan.Provenance)
		out.Provenance.ScalingNotes = append(out.Provenance.ScalingNotes,
			fmt.Sprintf("Template %q not in catalog; converted the current structure", plan.Provenance.TemplateID))
	}
	out.Provenance.ScalingNotes = append(out.Provenance.ScalingNotes,
		fmt.Sprintf("Adapted from %s to %s", from, newType))

	out.Validation = ValidatePlan(out, profile, m)
	return out
}

// ScalePlanToDistance rescales the plan's current structure by ratio, keeping
// any environment conversion already applied. Rest plans and plans without a
// distance pass through unchanged.
func (p *Planner) ScalePlanToDistance(plan domain.SessionPlan, newDistanceM int, profile domain.AthleteProfile, m domain.Metrics) domain.SessionPlan {
	original := plan.Session.DistanceM()
	if plan.IsRest() || original <= 0 || newDistanceM <= 0 {
		return plan
	}

	ratio := float64(newDistanceM) / float64(original)
	out := derive(plan, domain.OpScale)
	out.Session.Structure = scaleBlocks(domain.CloneBlocks(plan.Session.Structure), ratio)
	renderText(out.Session.Structure)

	total := domain.SumDistanceM(out.Session.Structure)
	out.Session.TotalDistanceM = &total
	out.Session.EstimatedDurationMin = int(math.Round(float64(plan.Session.EstimatedDurationMin) * ratio))
	out.Session.OpenWaterAddons = slices.Clone(plan.Session.OpenWaterAddons)

	out.Provenance = copyProvenance(plan.Provenance)
	out.Provenance.ScalingNotes = append(out.Provenance.ScalingNotes,
		fmt.Sprintf("Rescaled from %dm to %dm (x%.2f)", original, newDistanceM, ratio))

	out.Validation = ValidatePlan(out, profile, m)
	return out
}

func (p *Planner) fromTemplate(t domain.WorkoutTemplate, target domain.SessionType, profile domain.AthleteProfile, m domain.Metrics) (domain.PlanSession, domain.Provenance) {
	res := ScaleTemplate(t, profile, m)
	session := res.Session
	notes := res.Notes
	if target == domain.SessionOpenWater && !t.IsRest() {
		session = ToOpenWater(session, m)
		notes = append(notes, "Converted intervals to open-water efforts")
	}
	return session, provenanceFor(t, notes)
}

// adaptExisting converts the displayed structure when the template can no
// longer be found.
func adaptExisting(s domain.PlanSession, newType domain.SessionType, m domain.Metrics) domain.PlanSession {
	if newType == domain.SessionOpenWater {
		return ToOpenWater(s, m)
	}
	out := ToPool(s)
	out.OpenWaterAddons = nil
	out.SafetyNote = nil
	return out
}

// derive starts a child plan pointing back at its parent.
func derive(plan domain.SessionPlan, op domain.PlanOperation) domain.SessionPlan {
	out := plan
	out.Lineage = domain.Lineage{
		ParentID:   plan.Lineage.ID,
		Generation: plan.Lineage.Generation + 1,
		Operation:  op,
	}
	out.Readiness.Reasons = slices.Clone(plan.Readiness.Reasons)
	out.CreatedAt = time.Time{}
	return out
}

func provenanceFor(t domain.WorkoutTemplate, notes []string) domain.Provenance {
	return domain.Provenance{
		TemplateID:     t.ID,
		TemplateName:   t.Name,
		TemplateSource: t.Source,
		ScalingNotes:   notes,
	}
}

func copyProvenance(p domain.Provenance) domain.Provenance {
	p.ScalingNotes = slices.Clone(p.ScalingNotes)
	return p
}
