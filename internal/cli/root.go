// Package cli implements the swim command-line interface on cobra.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/catalog"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and process settings the commands run against.
type App struct {
	Plans    service.PlanService
	Sessions service.SessionService
	Profiles service.ProfileService
	Imports  service.ImportService
	Catalog  *catalog.Catalog

	// Today is the default date for logged sessions.
	Today func() domain.Date
	// IsInteractive reports whether stdin is a terminal. Wizards and
	// spinners only run when it returns true.
	IsInteractive func() bool

	Logger     *slog.Logger
	ServerAddr string
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) today() domain.Date {
	if a.Today != nil {
		return a.Today()
	}
	return domain.Date{}
}

// NewRootCmd creates the top-level "swim" command. Run bare it plans today's
// session.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "swim",
		Short:         "Deterministic open-water swim training planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plans.Generate(cmd.Context(), "")
			if err != nil {
				return err
			}
			return app.printPlan(cmd, plan, planOutput{})
		},
	}

	root.AddCommand(
		newPlanCmd(app),
		newSessionCmd(app),
		newProfileCmd(app),
		newMetricsCmd(app),
		newCatalogCmd(app),
		newServeCmd(app),
	)

	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
