package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newBriefCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "brief",
		Short: "Fill in a briefing with a form and print the article workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errNotInteractive
			}

			var sel domain.Selection
			if err := newBriefingForm(app, &sel).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}

			out, err := runBriefing(cmd.Context(), app.NewDispatcher(), sel, domain.DefaultModule)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

// newBriefingForm builds a three-field form writing into sel. Each select
// starts on an empty option and is required.
func newBriefingForm(app *App, sel *domain.Selection) *huh.Form {
	choices := app.Config.Choices
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Brand").
				Options(selectOptions("brand", choices.Brands)...).
				Value(&sel.Brand).
				Validate(requireValue("brand")),
			huh.NewSelect[string]().
				Title("Season").
				Options(selectOptions("season", choices.Seasons)...).
				Value(&sel.Season).
				Validate(requireValue("season")),
			huh.NewSelect[string]().
				Title("Department").
				Options(selectOptions("department", choices.Departments)...).
				Value(&sel.Department).
				Validate(requireValue("department")),
		),
	).WithTheme(linebriefHuhTheme()).WithShowHelp(false)
}

// selectOptions puts the empty "unselected" option in front of opts.
func selectOptions(field string, opts []string) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(opts)+1)
	out = append(out, huh.NewOption("Select "+field, ""))
	return append(out, huh.NewOptions(opts...)...)
}

// requireValue rejects an empty selection for field.
func requireValue(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
