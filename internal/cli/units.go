package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the units and aliases in effect",
		Long:  "List the units in effect after applying the config file and --unit flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := buildParser(cmd)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "UNIT\tVALUE\tALIASES")
			for _, def := range p.Units().Definitions() {
				fmt.Fprintf(tw, "%s\t%v\t%s\n", def.Unit.Name, def.Unit.Value, strings.Join(def.Aliases, ", "))
			}
			if p.IgnoreCase() {
				fmt.Fprintln(tw, "\naliases match case-insensitively")
			}
			return tw.Flush()
		},
	}
}
