package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTermCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "term <n>",
		Short: "Print the full look-and-say term n",
		Args:  cobra.ExactArgs(1),
		RunE: a.withSession(func(cmd *cobra.Command, args []string) error {
			n, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			term, err := a.term(cmd, n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), term)
			return nil
		}),
	}
}
