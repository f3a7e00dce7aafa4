package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/cli/formatter"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// swimHuhTheme restyles the base huh theme with the formatter palette.
func swimHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	fg := lipgloss.NewStyle().Foreground(formatter.ColorFg)
	accent := lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	dim := lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Focused.Title = accent.Bold(true)
	t.Focused.Description = dim
	t.Focused.SelectSelector = accent
	t.Focused.MultiSelectSelector = accent
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorAqua)
	t.Focused.UnselectedOption = fg
	t.Focused.FocusedButton = fg.Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = dim.Padding(0, 1)
	t.Focused.TextInput.Cursor = accent
	t.Focused.TextInput.Prompt = accent
	t.Focused.TextInput.Text = fg
	t.Focused.TextInput.Placeholder = dim
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = dim
	t.Blurred.SelectSelector = dim
	t.Blurred.SelectedOption = dim
	t.Blurred.UnselectedOption = dim
	t.Blurred.TextInput.Prompt = dim
	t.Blurred.TextInput.Text = dim

	return t
}

// profileAnswers holds the wizard's raw string inputs.
type profileAnswers struct {
	eventName       string
	eventDate       string
	eventDistance   string
	goal            string
	targetTime      string
	weeklyVolume    string
	longestDistance string
	longestTime     string
	access          []string
	sessionsPerWeek string
	tone            string
}

func answersFrom(p *domain.AthleteProfile) *profileAnswers {
	a := &profileAnswers{
		goal:   string(domain.GoalFinishComfortably),
		tone:   string(domain.ToneNeutral),
		access: []string{string(domain.SessionPool)},
	}
	if p == nil {
		return a
	}
	a.eventName = p.Event.Name
	if !p.Event.Date.IsZero() {
		a.eventDate = p.Event.Date.String()
	}
	a.eventDistance = itoaOrEmpty(p.Event.DistanceM)
	a.goal = string(p.Goal)
	a.targetTime = p.TargetTime
	a.weeklyVolume = itoaOrEmpty(p.WeeklyVolumeM)
	a.longestDistance = itoaOrEmpty(p.LongestSwim.DistanceM)
	a.longestTime = itoaOrEmpty(p.LongestSwim.TimeMin)
	a.access = a.access[:0]
	if p.Access.Pool {
		a.access = append(a.access, string(domain.SessionPool))
	}
	if p.Access.OpenWater {
		a.access = append(a.access, string(domain.SessionOpenWater))
	}
	a.sessionsPerWeek = strconv.Itoa(p.SessionsPerWeekTarget())
	if p.Tone != "" {
		a.tone = string(p.Tone)
	}
	return a
}

func itoaOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// apply writes the answers onto p. Inputs have already passed the form's
// validators, so parse errors only come from programmatic use.
func (a *profileAnswers) apply(p *domain.AthleteProfile) error {
	date, err := domain.ParseDate(strings.TrimSpace(a.eventDate))
	if err != nil {
		return err
	}
	ints := map[string]string{
		"event distance":  a.eventDistance,
		"weekly volume":   a.weeklyVolume,
		"longest swim":    a.longestDistance,
		"longest time":    a.longestTime,
		"sessions a week": a.sessionsPerWeek,
	}
	parsed := make(map[string]int, len(ints))
	for name, raw := range ints {
		n, err := atoiOrZero(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		parsed[name] = n
	}

	p.Event = domain.Event{Name: strings.TrimSpace(a.eventName), Date: date, DistanceM: parsed["event distance"]}
	p.Goal = domain.Goal(a.goal)
	p.TargetTime = ""
	if p.Goal == domain.GoalTargetTime {
		p.TargetTime = strings.TrimSpace(a.targetTime)
	}
	p.WeeklyVolumeM = parsed["weekly volume"]
	p.LongestSwim = domain.LongestSwim{DistanceM: parsed["longest swim"], TimeMin: parsed["longest time"]}
	p.Access = domain.Access{}
	for _, v := range a.access {
		switch domain.SessionType(v) {
		case domain.SessionPool:
			p.Access.Pool = true
		case domain.SessionOpenWater:
			p.Access.OpenWater = true
		}
	}
	p.Availability = domain.Availability{SessionsPerWeek: parsed["sessions a week"]}
	p.Tone = domain.Tone(a.tone)
	return nil
}

func atoiOrZero(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return n, nil
}

// profileWizard builds the `swim profile init` form.
func profileWizard(a *profileAnswers) *huh.Form {
	goalOptions := []huh.Option[string]{
		huh.NewOption("Finish comfortably", string(domain.GoalFinishComfortably)),
		huh.NewOption("Just finish", string(domain.GoalJustFinish)),
		huh.NewOption("Hit a target time", string(domain.GoalTargetTime)),
		huh.NewOption("Set a personal best", string(domain.GoalPersonalBest)),
	}
	toneOptions := []huh.Option[string]{
		huh.NewOption("Neutral", string(domain.ToneNeutral)),
		huh.NewOption("Calm", string(domain.ToneCalm)),
		huh.NewOption("Tough love", string(domain.ToneToughLove)),
	}
	accessOptions := []huh.Option[string]{
		huh.NewOption("Pool", string(domain.SessionPool)),
		huh.NewOption("Open water", string(domain.SessionOpenWater)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Event name").Placeholder("Harbour Mile").Value(&a.eventName),
			huh.NewInput().Title("Event date").Placeholder("YYYY-MM-DD").Value(&a.eventDate).Validate(validateRequiredDate),
			huh.NewInput().Title("Event distance (m)").Placeholder("3000").Value(&a.eventDistance).Validate(validateRequiredPositiveInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Goal").Options(goalOptions...).Value(&a.goal),
		),
		huh.NewGroup(
			huh.NewInput().Title("Target time").Placeholder("1:05:00").Value(&a.targetTime).Validate(validateRequired),
		).WithHideFunc(func() bool { return a.goal != string(domain.GoalTargetTime) }),
		huh.NewGroup(
			huh.NewInput().Title("Weekly volume (m)").Description("Leave empty for the default").Value(&a.weeklyVolume).Validate(validatePositiveInt),
			huh.NewInput().Title("Longest recent swim (m)").Value(&a.longestDistance).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Longest swim time (min)").Value(&a.longestTime).Validate(validateNonNegativeInt),
			huh.NewInput().Title("Sessions per week").Value(&a.sessionsPerWeek).Validate(validateSessionsPerWeek),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().Title("Where can you swim?").Options(accessOptions...).Value(&a.access).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return errors.New("pick at least one")
					}
					return nil
				}),
			huh.NewSelect[string]().Title("Coaching tone").Options(toneOptions...).Value(&a.tone),
		),
	).WithTheme(swimHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

func validateRequiredPositiveInt(s string) error {
	if err := validateRequired(s); err != nil {
		return err
	}
	return validatePositiveInt(s)
}

func validateNonNegativeInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}

func validateSessionsPerWeek(s string) error {
	if err := validatePositiveInt(s); err != nil {
		return err
	}
	if v, _ := strconv.Atoi(strings.TrimSpace(s)); v > 14 {
		return errors.New("at most 14 sessions a week")
	}
	return nil
}

func validateRequiredDate(s string) error {
	if err := validateRequired(s); err != nil {
		return err
	}
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD format")
	}
	return nil
}
