package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/service"
)

// FormatMetrics renders the training summary dashboard.
func FormatMetrics(r *service.MetricsReport) string {
	var b strings.Builder

	if r.Phase != "" && r.DaysToEvent != nil {
		fmt.Fprintf(&b, "%s  %s\n", PhaseBadge(r.Phase), EventCountdown(*r.DaysToEvent))
	}
	b.WriteString(ReadinessIndicator(r.Readiness.Status) + "\n")
	for _, reason := range r.Readiness.Reasons {
		b.WriteString(Dim("  · "+reason) + "\n")
	}
	b.WriteString("\n")

	m := r.Metrics
	pace := "--"
	if m.AvgPaceMinPerKm != nil {
		pace = strconv.FormatFloat(*m.AvgPaceMinPerKm, 'f', 1, 64) + " min/km"
	}
	rows := [][]string{
		{"Longest swim", FormatDistance(m.MaxDistanceM)},
		{"Weekly volume (14d avg)", FormatDistance(m.AvgWeeklyVolumeM)},
		{"Average effort (7d)", strconv.FormatFloat(m.AvgEffort, 'f', 1, 64) + " / 10"},
		{"Average pace", pace},
		{"Sessions (7d / 14d)", fmt.Sprintf("%d / %d", m.Sessions7d, m.Sessions14d)},
		{"Safe session ceiling", Bold(FormatDistance(r.SafeCeilingM))},
	}
	b.WriteString(RenderTable([]string{"METRIC", "VALUE"}, rows))

	return RenderBox("Training as of "+r.Date.String(), strings.TrimRight(b.String(), "\n"))
}

// FormatProfile renders the athlete profile card.
func FormatProfile(p *domain.AthleteProfile) string {
	access := make([]string, 0, 2)
	if p.Access.Pool {
		access = append(access, "pool")
	}
	if p.Access.OpenWater {
		access = append(access, "open water")
	}

	availability := fmt.Sprintf("%d sessions / week", p.SessionsPerWeekTarget())
	if len(p.Availability.Weekdays) > 0 {
		days := make([]string, len(p.Availability.Weekdays))
		for i, d := range p.Availability.Weekdays {
			days[i] = d.String()[:3]
		}
		availability = strings.Join(days, ", ")
	}

	goal := string(p.Goal)
	if p.Goal == domain.GoalTargetTime && p.TargetTime != "" {
		goal += " (" + p.TargetTime + ")"
	}

	rows := [][]string{
		{"Event", Bold(p.Event.Name)},
		{"Date", HumanDate(p.Event.Date)},
		{"Distance", FormatDistance(p.Event.DistanceM)},
		{"Goal", goal},
		{"Weekly volume", FormatDistance(p.WeeklyVolumeTarget())},
		{"Longest recent swim", fmt.Sprintf("%s in %s", FormatDistance(p.LongestSwim.DistanceM), FormatMinutes(p.LongestSwim.TimeMin))},
		{"Access", strings.Join(access, ", ")},
		{"Availability", availability},
		{"Tone", string(p.Tone)},
	}
	return RenderBox("Profile", RenderTable([]string{"FIELD", "VALUE"}, rows))
}

// FormatTemplates lists the workout catalog.
func FormatTemplates(templates []domain.WorkoutTemplate) string {
	headers := []string{"ID", "NAME", "PHASES", "INTENSITY", "DISTANCE", "TAGS"}
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		phases := make([]string, len(t.Phases))
		for i, ph := range t.Phases {
			phases[i] = string(ph)
		}
		rows = append(rows, []string{
			Dim(t.ID),
			Bold(t.Name),
			strings.Join(phases, ","),
			IntensityStyle(t.Intensity).Render(string(t.Intensity)),
			FormatDistance(t.BaseDistanceM),
			Dim(strings.Join(t.Tags, ",")),
		})
	}
	return RenderBox(fmt.Sprintf("Catalog (%d)", len(templates)), RenderTable(headers, rows))
}
