package formatter

import (
	"fmt"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/service"
)

// FormatSessions renders logged swims as a boxed table.
func FormatSessions(sessions []domain.TrainingSession) string {
	if len(sessions) == 0 {
		return Dim("No sessions logged. Use 'swim session log' to add one.")
	}
	headers := []string{"ID", "DATE", "TYPE", "DISTANCE", "TIME", "EFFORT", "NOTES"}
	rows := make([][]string, 0, len(sessions))
	total := 0
	for _, s := range sessions {
		total += s.DistanceM
		rows = append(rows, []string{
			TruncID(s.ID),
			s.Date.String(),
			SessionTypeLabel(s.Type),
			FormatDistance(s.DistanceM),
			FormatMinutes(s.DurationMin),
			effortLabel(s),
			Dim(truncate(s.Notes, 30)),
		})
	}
	footer := Dim(fmt.Sprintf("%d sessions · %s total", len(sessions), FormatDistance(total)))
	return RenderBox("Sessions", RenderTable(headers, rows)+"\n"+footer)
}

func effortLabel(s domain.TrainingSession) string {
	bucket := s.EffortBucket()
	style := IntensityStyle(domain.Intensity(bucket))
	if s.Effort == "" && s.RPE != nil {
		return style.Render(fmt.Sprintf("rpe %d", *s.RPE))
	}
	return style.Render(string(bucket))
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// FormatSessionLogged confirms a logged swim on one line.
func FormatSessionLogged(s domain.TrainingSession) string {
	return fmt.Sprintf("%s Logged %s %s on %s %s",
		StyleGreen.Render("✔"),
		FormatDistance(s.DistanceM),
		strings.ReplaceAll(string(s.Type), "_", " "),
		s.Date.String(),
		TruncID(s.ID))
}

// FormatImportResult summarises a history import.
func FormatImportResult(r *service.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Imported %d sessions", StyleGreen.Render("✔"), r.SessionCount)
	if r.SessionCount > 0 {
		fmt.Fprintf(&b, " from %s to %s", r.From.String(), r.To.String())
	}
	if r.ProfileSaved {
		b.WriteString(" and saved the profile")
	}
	return b.String()
}
