package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/cli/formatter"
	"github.com/MarnusVe92/lets-keep-swimming-sub000/internal/domain"
	"github.com/spf13/cobra"
)

var errNoCatalog = errors.New("no workout catalog loaded")

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the workout templates",
	}
	cmd.AddCommand(newCatalogListCmd(app), newCatalogShowCmd(app))
	return cmd
}

func newCatalogListCmd(app *App) *cobra.Command {
	var phase string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workout templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Catalog == nil {
				return errNoCatalog
			}
			templates := app.Catalog.All()
			if phase != "" {
				p := domain.Phase(strings.ToUpper(phase))
				switch p {
				case domain.PhaseBuild, domain.PhaseSharpen, domain.PhaseTaper:
				default:
					return fmt.Errorf("invalid phase %q (use BUILD, SHARPEN or TAPER)", phase)
				}
				templates = app.Catalog.ByPhase(p)
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), templates)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplates(templates))
			return nil
		},
	}
	cmd.Flags().StringVar(&phase, "phase", "", "Only templates for this phase")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show TEMPLATE_ID",
		Short: "Print one template as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Catalog == nil {
				return errNoCatalog
			}
			t, ok := app.Catalog.ByID(args[0])
			if !ok {
				return fmt.Errorf("template %q not found", args[0])
			}
			return writeJSON(cmd.OutOrStdout(), t)
		},
	}
}
