package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jask/rubrica/internal/testdata"
)

func seedCmd(e *env) *cobra.Command {
	var (
		count int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty address book with sample contacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("seed: --count must be positive")
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			n, err := testdata.Seed(cmd.Context(), e.wire.Registry, count, seed)
			if err != nil {
				return err
			}
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "address book is not empty; nothing added")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %d sample contact(s)\n", n)
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 20, "number of contacts to generate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible output")
	return cmd
}

func resetCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every stored contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.wire.Maintenance == nil {
				return fmt.Errorf("reset: storage is disabled")
			}
			if !e.printer(cmd, yes).Confirm("Remove every stored contact?") {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing removed")
				return nil
			}
			if err := e.wire.Maintenance.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "address book cleared")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
