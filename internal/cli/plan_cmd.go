package cli

import (
	"fmt"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/cli/formatter"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/polish"
	"github.com/spf13/cobra"
)

type planOutput struct {
	json   bool
	polish bool
}

func (o *planOutput) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "Print the plan as JSON")
	cmd.Flags().BoolVar(&o.polish, "polish", false, "Add coaching notes (uses the LLM when enabled)")
}

type planJSON struct {
	Plan     *domain.SessionPlan  `json:"plan"`
	Coaching *polish.Coaching     `json:"coaching,omitempty"`
	Derived  []domain.SessionPlan `json:"derived,omitempty"`
}

func newPlanCmd(app *App) *cobra.Command {
	var typ sessionTypeValue
	var out planOutput

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan today's session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Generate(cmd.Context(), domain.SessionType(typ))
			if err != nil {
				return err
			}
			return app.printPlan(cmd, plan, out)
		},
	}
	cmd.Flags().Var(&typ, "type", "Preferred session type")
	out.register(cmd)

	cmd.AddCommand(
		newPlanAdaptCmd(app),
		newPlanScaleCmd(app),
		newPlanShowCmd(app),
		newPlanLatestCmd(app),
	)
	return cmd
}

func newPlanAdaptCmd(app *App) *cobra.Command {
	var typ sessionTypeValue
	var out planOutput

	cmd := &cobra.Command{
		Use:   "adapt PLAN_ID",
		Short: "Convert a plan to pool or open water",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Adapt(cmd.Context(), args[0], domain.SessionType(typ))
			if err != nil {
				return err
			}
			return app.printPlan(cmd, plan, out)
		},
	}
	cmd.Flags().Var(&typ, "type", "Target session type")
	_ = cmd.MarkFlagRequired("type")
	out.register(cmd)
	return cmd
}

func newPlanScaleCmd(app *App) *cobra.Command {
	var distance int
	var out planOutput

	cmd := &cobra.Command{
		Use:   "scale PLAN_ID",
		Short: "Rescale a plan to a new total distance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Scale(cmd.Context(), args[0], distance)
			if err != nil {
				return err
			}
			return app.printPlan(cmd, plan, out)
		},
	}
	cmd.Flags().IntVar(&distance, "distance", 0, "New total distance in metres")
	_ = cmd.MarkFlagRequired("distance")
	out.register(cmd)
	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show PLAN_ID",
		Short: "Show a stored plan and the versions derived from it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			plan, err := app.Plans.Get(ctx, args[0])
			if err != nil {
				return err
			}
			derived, err := app.Plans.Derived(ctx, plan.Lineage.ID)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, planJSON{Plan: plan, Derived: derived})
			}
			fmt.Fprintln(w, formatter.FormatPlan(*plan))
			fmt.Fprintln(w, formatter.Header("Derived plans"))
			fmt.Fprintln(w, formatter.FormatDerived(derived))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newPlanLatestCmd(app *App) *cobra.Command {
	var out planOutput

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the most recently generated plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Latest(cmd.Context())
			if err != nil {
				return err
			}
			return app.printPlan(cmd, plan, out)
		},
	}
	out.register(cmd)
	return cmd
}

// printPlan renders a plan, fetching coaching first when asked to.
func (a *App) printPlan(cmd *cobra.Command, plan *domain.SessionPlan, out planOutput) error {
	var coaching *polish.Coaching
	if out.polish {
		stop := func() {}
		if a.interactive() && !out.json {
			stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Writing coaching notes...")
		}
		c, err := a.Plans.Coach(cmd.Context(), *plan)
		stop()
		if err != nil {
			return err
		}
		coaching = c
	}

	w := cmd.OutOrStdout()
	if out.json {
		return writeJSON(w, planJSON{Plan: plan, Coaching: coaching})
	}
	fmt.Fprintln(w, formatter.FormatPlan(*plan))
	if coaching != nil {
		fmt.Fprintln(w, formatter.FormatCoaching(coaching))
	}
	return nil
}
