package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leonardcser/look-and-say/internal/sequence"
)

func newMiddleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "middle <digits>",
		Short: "Print the middle two digits of a digit string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !sequence.ValidDigits(args[0]) {
				return errors.New("argument must be a non-empty string of decimal digits")
			}
			fmt.Fprintln(cmd.OutOrStdout(), sequence.MiddleTwo(args[0]))
			return nil
		},
	}
}
