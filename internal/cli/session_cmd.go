package cli

import (
	"fmt"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/cli/formatter"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log and review swims",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
		newSessionRemoveCmd(app),
		newSessionImportCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var (
		date, notes, conditions string
		distance, minutes, rpe  int
		effort                  effortValue
		typ                     = sessionTypeValue(domain.SessionPool)
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a completed swim",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := app.today()
			if date != "" {
				parsed, err := domain.ParseDate(date)
				if err != nil {
					return err
				}
				day = parsed
			}

			s := &domain.TrainingSession{
				Date:        day,
				Type:        domain.SessionType(typ),
				DistanceM:   distance,
				DurationMin: minutes,
				Effort:      domain.EffortLevel(effort),
				Notes:       notes,
				Conditions:  conditions,
			}
			if cmd.Flags().Changed("rpe") {
				s.RPE = &rpe
			}
			if err := app.Sessions.Log(cmd.Context(), s); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessionLogged(*s))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Session date YYYY-MM-DD (default today)")
	cmd.Flags().Var(&typ, "type", "Session type")
	cmd.Flags().IntVar(&distance, "distance", 0, "Distance swum in metres")
	cmd.Flags().IntVar(&minutes, "time", 0, "Duration in minutes")
	cmd.Flags().Var(&effort, "effort", "Perceived effort")
	cmd.Flags().IntVar(&rpe, "rpe", 0, "Legacy 1-10 effort score, used when --effort is not given")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&conditions, "conditions", "", "Water conditions, e.g. choppy or 16C")
	_ = cmd.MarkFlagRequired("distance")
	cmd.MarkFlagsMutuallyExclusive("effort", "rpe")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var days int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent swims",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.List(cmd.Context(), days)
			if err != nil {
				return err
			}
			if asJSON {
				if sessions == nil {
					sessions = []domain.TrainingSession{}
				}
				return writeJSON(cmd.OutOrStdout(), sessions)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSessions(sessions))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 14, "Show swims from the last N days (0 for all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")

	return cmd
}

func newSessionRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove SESSION_ID",
		Aliases: []string{"rm"},
		Short:   "Delete a logged swim",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed session %s\n", args[0])
			return nil
		},
	}
}

func newSessionImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import swim history (and optionally a profile) from a JSON file",
		Long: `Import swim history from a JSON file of the form
{"profile": {...}, "sessions": [{"date": "2026-06-01", "type": "pool", "distance_m": 2000, "effort": "easy"}]}.
The whole file is validated first and stored in one transaction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Imports == nil {
				return fmt.Errorf("import is not configured")
			}
			res, err := app.Imports.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}
