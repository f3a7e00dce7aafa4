package polish

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
)

const baseSystemPrompt = `You are a swim coach writing short notes for a workout that has already been planned.
The plan JSON is final. Never change distances, repetitions, rest intervals, blocks or the session type, and never suggest a different workout.

Respond with a single JSON object and nothing else:
{
  "why_this": "one or two sentences, at most 60 words, explaining why this session fits today",
  "technique_focus": ["0 to 3 short technique cues"],
  "event_prep_tip": "one short event preparation tip, or null",
  "flags": ["0 to 4 short safety or readiness notes"]
}

If the plan is a rest day, explain why resting helps and leave technique_focus empty.
If the session is in open water, include a safety flag about never swimming alone.`

var toneGuidance = map[domain.Tone]string{
	domain.ToneNeutral:   "Write in a plain, friendly voice.",
	domain.ToneCalm:      "Write in a calm, reassuring voice. Avoid pressure.",
	domain.ToneToughLove: "Write in a direct, no-excuses voice, but never unsafe.",
}

func systemPrompt(tone domain.Tone) string {
	guidance, ok := toneGuidance[tone]
	if !ok {
		guidance = toneGuidance[domain.ToneNeutral]
	}
	return baseSystemPrompt + "\n\n" + guidance
}

type promptProfile struct {
	Goal           domain.Goal `json:"goal"`
	TargetTime     string      `json:"target_time,omitempty"`
	WeeklyVolumeM  int         `json:"weekly_volume_m"`
	EventName      string      `json:"event_name"`
	EventDate      domain.Date `json:"event_date"`
	EventDistanceM int         `json:"event_distance_m"`
}

type promptSession struct {
	Date      domain.Date        `json:"date"`
	Type      domain.SessionType `json:"type"`
	DistanceM int                `json:"distance_m"`
	TimeMin   int                `json:"time_min"`
	Effort    domain.EffortLevel `json:"effort"`
	Notes     string             `json:"notes,omitempty"`
}

func buildUserPrompt(req Request) (string, error) {
	recent := latest(req.Recent, MaxRecentSessions)
	sessions := make([]promptSession, 0, len(recent))
	for _, s := range recent {
		sessions = append(sessions, promptSession{
			Date:      s.Date,
			Type:      s.Type,
			DistanceM: s.DistanceM,
			TimeMin:   s.DurationMin,
			Effort:    s.EffortBucket(),
			Notes:     s.Notes,
		})
	}

	payload := struct {
		Plan    domain.SessionPlan `json:"plan"`
		Athlete promptProfile      `json:"athlete"`
		Recent  []promptSession    `json:"recent_sessions"`
	}{
		Plan: req.Plan,
		Athlete: promptProfile{
			Goal:           req.Profile.Goal,
			TargetTime:     req.Profile.TargetTime,
			WeeklyVolumeM:  req.Profile.WeeklyVolumeTarget(),
			EventName:      req.Profile.Event.Name,
			EventDate:      req.Profile.Event.Date,
			EventDistanceM: req.Profile.Event.DistanceM,
		},
		Recent: sessions,
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding polish prompt: %w", err)
	}

	var b strings.Builder
	b.WriteString("Today's plan, athlete and recent sessions:\n\n")
	b.Write(data)
	return b.String(), nil
}
