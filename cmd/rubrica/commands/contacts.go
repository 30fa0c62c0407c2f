package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/rubrica/internal/contact"
	"github.com/jask/rubrica/internal/controller"
)

func (e *env) printer(cmd *cobra.Command, assumeYes bool) *printer {
	return &printer{
		out:       cmd.OutOrStdout(),
		errOut:    cmd.ErrOrStderr(),
		in:        cmd.InOrStdin(),
		assumeYes: assumeYes,
		reported:  &e.reported,
	}
}

func listCmd(e *env) *cobra.Command {
	var (
		byLast bool
		query  string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print contacts in the configured order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := e.wire.Registry
			if cmd.Flags().Changed("by-last-name") {
				reg.Ordering().SetSortedByFirstName(!byLast)
			}
			cs := reg.List()
			if query != "" {
				cs = reg.Search(query)
			}
			e.printer(cmd, false).DisplayContactList(cs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&byLast, "by-last-name", false, "order by last name instead of the configured key")
	cmd.Flags().StringVarP(&query, "search", "s", "", "only show contacts matching the query")
	return cmd
}

func addCmd(e *env) *cobra.Command {
	var c contact.Contact
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ed := controller.NewEditor(e.wire.Registry, e.printer(cmd, false), controller.Creating{}, e.wire.Log)
			_, err := ed.Submit(cmd.Context(), c)
			return err
		},
	}
	cmd.Flags().StringVar(&c.FirstName, "first", "", "first name")
	cmd.Flags().StringVar(&c.LastName, "last", "", "last name")
	cmd.Flags().StringVar(&c.Address, "address", "", "postal address")
	cmd.Flags().StringArrayVar(&c.Phones, "phone", nil, fmt.Sprintf("phone number (repeatable, up to %d)", contact.MaxPhones))
	cmd.Flags().StringArrayVar(&c.Emails, "email", nil, fmt.Sprintf("email address (repeatable, up to %d)", contact.MaxEmails))
	return cmd
}

func deleteCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete ID...",
		Short: "Delete contacts by ID",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := e.wire.Registry
			for _, id := range args {
				if err := reg.SetSelected(id, true); err != nil {
					return fmt.Errorf("select %s: %w", id, err)
				}
			}
			view := e.printer(cmd, yes)
			view.quiet = true
			n, err := controller.NewBulk(reg, view, e.wire.Log).DeleteSelected(cmd.Context())
			if errors.Is(err, contact.ErrCancelled) {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing deleted")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d contact(s)\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}
