package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/cli/formatter"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/service"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your athlete profile and target event",
	}
	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
		newProfileInitCmd(app),
	)
	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the saved profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

// loadOrNewProfile returns the saved profile, or an empty one when none exists.
func loadOrNewProfile(ctx context.Context, app *App) (*domain.AthleteProfile, error) {
	p, err := app.Profiles.Get(ctx)
	if code, _ := service.CodeOf(err); code == service.CodeProfileMissing {
		return &domain.AthleteProfile{}, nil
	}
	return p, err
}

func newProfileSetCmd(app *App) *cobra.Command {
	var (
		eventName, eventDate, goal, targetTime, tone string
		eventDistance, weeklyVolume                  int
		longestDistance, longestTime, perWeek        int
		pool, openWater                              bool
		weekdays                                     weekdaysValue
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		Long:  "Update profile fields from flags. Only the flags given are changed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := loadOrNewProfile(ctx, app)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.NFlag() == 0 {
				return errors.New("nothing to update; pass at least one flag")
			}
			if flags.Changed("event-name") {
				p.Event.Name = eventName
			}
			if flags.Changed("event-date") {
				d, err := domain.ParseDate(eventDate)
				if err != nil {
					return err
				}
				p.Event.Date = d
			}
			if flags.Changed("event-distance") {
				p.Event.DistanceM = eventDistance
			}
			if flags.Changed("goal") {
				p.Goal = domain.Goal(goal)
			}
			if flags.Changed("target-time") {
				p.TargetTime = targetTime
			}
			if flags.Changed("weekly-volume") {
				p.WeeklyVolumeM = weeklyVolume
			}
			if flags.Changed("longest-distance") {
				p.LongestSwim.DistanceM = longestDistance
			}
			if flags.Changed("longest-time") {
				p.LongestSwim.TimeMin = longestTime
			}
			if flags.Changed("pool") {
				p.Access.Pool = pool
			}
			if flags.Changed("open-water") {
				p.Access.OpenWater = openWater
			}
			if flags.Changed("days") {
				p.Availability = domain.Availability{Weekdays: weekdays}
			}
			if flags.Changed("sessions-per-week") {
				p.Availability = domain.Availability{SessionsPerWeek: perWeek}
			}
			if flags.Changed("tone") {
				p.Tone = domain.Tone(tone)
			}

			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&eventName, "event-name", "", "Target event name")
	f.StringVar(&eventDate, "event-date", "", "Event date YYYY-MM-DD")
	f.IntVar(&eventDistance, "event-distance", 0, "Event distance in metres")
	f.StringVar(&goal, "goal", "", "finish_comfortably, just_finish, target_time or personal_best")
	f.StringVar(&targetTime, "target-time", "", "Target finish time, for the target_time goal")
	f.IntVar(&weeklyVolume, "weekly-volume", 0, "Weekly volume goal in metres")
	f.IntVar(&longestDistance, "longest-distance", 0, "Longest recent swim in metres")
	f.IntVar(&longestTime, "longest-time", 0, "Duration of the longest recent swim in minutes")
	f.BoolVar(&pool, "pool", false, "Pool access")
	f.BoolVar(&openWater, "open-water", false, "Open water access")
	f.Var(&weekdays, "days", "Training weekdays, e.g. mon,wed,sat")
	f.IntVar(&perWeek, "sessions-per-week", 0, "Sessions per week")
	f.StringVar(&tone, "tone", "", "Coaching tone: neutral, calm or tough_love")
	cmd.MarkFlagsMutuallyExclusive("days", "sessions-per-week")

	return cmd
}

func newProfileInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or update the profile with an interactive wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("profile init needs a terminal; use 'swim profile set' instead")
			}
			ctx := cmd.Context()
			p, err := loadOrNewProfile(ctx, app)
			if err != nil {
				return err
			}

			answers := answersFrom(p)
			if p.Event.Date.IsZero() {
				answers = answersFrom(nil)
			}
			if err := profileWizard(answers).RunWithContext(ctx); err != nil {
				return err
			}
			if err := answers.apply(p); err != nil {
				return err
			}
			if err := app.Profiles.Save(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}
