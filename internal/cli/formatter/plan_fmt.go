package formatter

import (
	"fmt"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/polish"
)

// FormatPlan renders a session plan as a boxed workout card.
func FormatPlan(p domain.SessionPlan) string {
	var b strings.Builder

	s := p.Session
	fmt.Fprintf(&b, "%s  %s", Bold(HumanDate(p.Date)), SessionTypeLabel(s.Type))
	if !p.IsRest() {
		fmt.Fprintf(&b, "  %s  %s  %s",
			IntensityStyle(s.Intensity).Render(string(s.Intensity)),
			StyleFg.Render(FormatDistance(s.DistanceM())),
			Dim("~"+FormatMinutes(s.EstimatedDurationMin)))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %s  %s\n", PhaseBadge(p.Phase), EventCountdown(p.DaysToEvent), ReadinessIndicator(p.Readiness.Status))
	for _, r := range p.Readiness.Reasons {
		b.WriteString(Dim("  · "+r) + "\n")
	}

	for _, block := range s.Structure {
		b.WriteString("\n" + Bold(block.Label) + "\n")
		for _, it := range block.Items {
			text := it.Text
			if text == "" {
				text = it.Instruction
			}
			b.WriteString("  " + text + "\n")
		}
	}

	if len(s.OpenWaterAddons) > 0 {
		b.WriteString("\n" + StyleAqua.Render("Open water") + "\n")
		for _, a := range s.OpenWaterAddons {
			b.WriteString("  + " + a + "\n")
		}
	}
	if s.SafetyNote != nil {
		b.WriteString("\n" + StyleRed.Render("⚠ "+*s.SafetyNote) + "\n")
	}
	for _, w := range p.Validation.Warnings {
		b.WriteString(StyleYellow.Render("! "+w) + "\n")
	}

	b.WriteString("\n" + Dim(provenanceLine(p)))
	return RenderBox(planTitle(p), b.String())
}

func planTitle(p domain.SessionPlan) string {
	switch {
	case p.IsRest():
		return "Rest day"
	case p.Lineage.Operation == domain.OpAdapt:
		return "Adapted session"
	case p.Lineage.Operation == domain.OpScale:
		return "Scaled session"
	default:
		return "Today's session"
	}
}

func provenanceLine(p domain.SessionPlan) string {
	parts := []string{p.Provenance.TemplateName}
	if p.Provenance.TemplateSource != "" {
		parts[0] += " (" + p.Provenance.TemplateSource + ")"
	}
	if p.Lineage.ID != "" {
		parts = append(parts, "id "+shortID(p.Lineage.ID))
	}
	if p.Lineage.Generation > 0 {
		parts = append(parts, fmt.Sprintf("%s of %s", p.Lineage.Operation, shortID(p.Lineage.ParentID)))
	}
	line := strings.Join(parts, " · ")
	for _, n := range p.Provenance.ScalingNotes {
		line += "\n" + n
	}
	return line
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// FormatCoaching renders the coaching notes that accompany a plan.
func FormatCoaching(c *polish.Coaching) string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(c.WhyThis + "\n")
	if len(c.TechniqueFocus) > 0 {
		b.WriteString("\n" + Bold("Focus") + "\n")
		for _, f := range c.TechniqueFocus {
			b.WriteString("  • " + f + "\n")
		}
	}
	if c.EventPrepTip != nil {
		b.WriteString("\n" + StyleBlue.Render("Event prep: ") + *c.EventPrepTip + "\n")
	}
	for _, f := range c.Flags {
		b.WriteString(StyleYellow.Render("⚑ "+f) + "\n")
	}
	if c.Source == polish.SourceFallback {
		b.WriteString("\n" + Dim("Offline coaching notes"))
	}
	return RenderBox("Coaching", strings.TrimRight(b.String(), "\n"))
}

// FormatDerived lists the plans computed from a root plan.
func FormatDerived(plans []domain.SessionPlan) string {
	if len(plans) == 0 {
		return Dim("No adapted or scaled versions.")
	}
	headers := []string{"ID", "OPERATION", "TYPE", "DISTANCE", "GEN"}
	rows := make([][]string, 0, len(plans))
	for _, p := range plans {
		rows = append(rows, []string{
			TruncID(p.Lineage.ID),
			string(p.Lineage.Operation),
			SessionTypeLabel(p.Session.Type),
			FormatDistance(p.Session.DistanceM()),
			fmt.Sprintf("%d", p.Lineage.Generation),
		})
	}
	return RenderTable(headers, rows)
}
