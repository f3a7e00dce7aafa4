package polish

import (
	"fmt"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/planner"
)

const sightingFocus = "Sight every 6-8 strokes without lifting your hips"

var techniqueByIntensity = map[domain.Intensity][]string{
	domain.IntensityEasy:     {"Long, relaxed strokes", "Exhale fully underwater"},
	domain.IntensityModerate: {"Hold an even pace across every repeat", "Steady bilateral breathing"},
	domain.IntensityHard:     {"Keep your stroke long as you tire", "Strong push-offs and tight streamlines"},
}

// DeterministicCoaching builds coaching from the plan alone. It stands in when
// the model is off, unreachable or returns something unusable.
func DeterministicCoaching(plan domain.SessionPlan, profile domain.AthleteProfile) *Coaching {
	c := &Coaching{
		WhyThis:        flavour(whyThis(plan, profile), profile.Tone),
		TechniqueFocus: techniqueFocus(plan),
		EventPrepTip:   eventPrepTip(plan.DaysToEvent),
		Flags:          []string{},
		Source:         SourceFallback,
	}

	switch plan.Readiness.Status {
	case domain.ReadinessNeedsRest:
		c.Flags = append(c.Flags, "Readiness: rest recommended - "+strings.Join(plan.Readiness.Reasons, "; "))
	case domain.ReadinessFatigued:
		c.Flags = append(c.Flags, "Readiness: fatigued - keep the effort honest and back off if anything hurts")
	}
	if !plan.Validation.GuardrailsCheckPassed && len(plan.Validation.Warnings) > 0 {
		c.Flags = append(c.Flags, "Load check: "+plan.Validation.Warnings[len(plan.Validation.Warnings)-1])
	}
	ensureSafetyFlag(c, plan)
	return c
}

func whyThis(plan domain.SessionPlan, profile domain.AthleteProfile) string {
	event := profile.Event.Name
	if event == "" {
		event = "race day"
	}
	if plan.IsRest() {
		return fmt.Sprintf("Rest today. Your body absorbs training while it recovers, and %s rewards the swimmer who arrives fresh.", event)
	}

	ow := plan.Session.Type == domain.SessionOpenWater
	switch plan.Phase {
	case domain.PhaseTaper:
		return fmt.Sprintf("Taper week: less volume with a touch of pace keeps you sharp so you arrive fresh for %s in %d days.", event, plan.DaysToEvent)
	case domain.PhaseSharpen:
		if ow {
			return fmt.Sprintf("Sharpening in open water: race rhythm plus sighting practice, %d days out from %s.", plan.DaysToEvent, event)
		}
		return fmt.Sprintf("Sharpening phase: race-pace work teaches your body the rhythm you will hold at %s in %d days.", event, plan.DaysToEvent)
	default:
		if ow {
			return "Building your aerobic base in open water, where steady pacing and sighting become habits."
		}
		return "Building your aerobic base: steady pool volume now makes the race distance feel routine later."
	}
}

func flavour(why string, tone domain.Tone) string {
	switch tone {
	case domain.ToneCalm:
		return why + " Go gently and enjoy the water."
	case domain.ToneToughLove:
		return why + " No shortcuts on the main set."
	default:
		return why
	}
}

func techniqueFocus(plan domain.SessionPlan) []string {
	if plan.IsRest() {
		return []string{}
	}
	cues := append([]string{}, techniqueByIntensity[plan.Session.Intensity]...)
	if plan.Session.Type == domain.SessionOpenWater && len(cues) < maxTechniqueCue {
		cues = append(cues, sightingFocus)
	}
	return cues
}

func eventPrepTip(days int) *string {
	var tip string
	switch {
	case days < 0:
		return nil
	case days == 0:
		tip = "Race day: warm up gently, start controlled and settle into your rhythm before you push."
	case days <= 3:
		tip = "Lay out your kit and plan race-morning food now; nothing new this close to the event."
	case days <= 10:
		tip = "Rehearse your race-day breakfast and kit before one of this week's sessions."
	case days <= 28:
		tip = "Do one session in race conditions soon: same time of day, same kit, same fuelling."
	default:
		return nil
	}
	return &tip
}

// ensureSafetyFlag adds the open-water safety note unless it is already
// covered or the flag list is full.
func ensureSafetyFlag(c *Coaching, plan domain.SessionPlan) {
	if plan.Session.Type != domain.SessionOpenWater {
		return
	}
	for _, f := range c.Flags {
		if strings.Contains(strings.ToLower(f), "alone") {
			return
		}
	}
	if len(c.Flags) >= maxFlags {
		c.Flags[len(c.Flags)-1] = planner.SafetyNote
		return
	}
	c.Flags = append(c.Flags, planner.SafetyNote)
}
