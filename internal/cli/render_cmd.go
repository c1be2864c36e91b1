package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/linebrief/internal/briefing"
	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// selectionFlags are the briefing fields shared by non-interactive commands.
type selectionFlags struct {
	brand      string
	season     string
	department string
	module     string
}

func (f *selectionFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.brand, "brand", "", "Brand to brief")
	fs.StringVar(&f.season, "season", "", "Season to brief")
	fs.StringVar(&f.department, "department", "", "Department to brief")
	fs.StringVar(&f.module, "module", string(domain.DefaultModule),
		"Module to show ("+strings.Join(moduleKeyNames(), ", ")+")")
}

func (f *selectionFlags) selection() domain.Selection {
	return domain.Selection{Brand: f.brand, Season: f.season, Department: f.department}
}

func moduleKeyNames() []string {
	names := make([]string, len(domain.ModuleKeys))
	for i, k := range domain.ModuleKeys {
		names[i] = string(k)
	}
	return names
}

func newRenderCmd(app *App) *cobra.Command {
	var flags selectionFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Submit a briefing and print one workspace module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, ok := domain.ParseModuleKey(flags.module)
			if !ok {
				return fmt.Errorf("unknown module %q (want one of %s)", flags.module, strings.Join(moduleKeyNames(), ", "))
			}
			out, err := runBriefing(cmd.Context(), app.NewDispatcher(), flags.selection(), key)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	flags.bind(cmd.Flags())
	return cmd
}

// runBriefing replays sel through the dispatch table, submits it and opens
// key, returning the rendered workspace.
func runBriefing(ctx context.Context, d *briefing.Dispatcher, sel domain.Selection, key domain.ModuleKey) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	events := []struct {
		id    briefing.InputID
		value string
	}{
		{briefing.InputBrand, sel.Brand},
		{briefing.InputSeason, sel.Season},
		{briefing.InputDepartment, sel.Department},
	}
	for _, ev := range events {
		// An empty brand has no toggle to press.
		if ev.id == briefing.InputBrand && ev.value == "" {
			continue
		}
		if err := d.Dispatch(ctx, ev.id, ev.value); err != nil {
			return "", err
		}
	}

	c := d.Controller()
	if !c.SubmitEnabled() {
		return "", briefing.ErrNotSubmittable
	}
	if err := d.Dispatch(ctx, briefing.InputSubmit, ""); err != nil {
		return "", err
	}
	if key != domain.DefaultModule {
		if err := d.Dispatch(ctx, briefing.InputModule, string(key)); err != nil {
			return "", err
		}
	}
	return renderWorkspace(c), nil
}
