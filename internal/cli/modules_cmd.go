package cli

import (
	"fmt"

	"github.com/alexanderramin/linebrief/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List workspace modules and their columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatModuleList())
			return nil
		},
	}
}
