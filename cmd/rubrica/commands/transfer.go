package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/rubrica/internal/controller"
)

func importCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Append contacts from a CSV, JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := e.printer(cmd, false)
			view.quiet = true
			n, err := controller.NewBulk(e.wire.Registry, view, e.wire.Log).ImportContacts(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d contact(s) from %s\n", n, args[0])
			return nil
		},
	}
}

func exportCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "export [FILE]",
		Short: "Write the address book to a file",
		Long:  "Write the address book to FILE, or to the configured export path. The extension picks the format.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := e.wire.Config.UI.ExportPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return fmt.Errorf("export: no file given and ui.export_path is empty")
			}
			n, err := controller.NewBulk(e.wire.Registry, e.printer(cmd, false), e.wire.Log).ExportContacts(cmd.Context(), path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d contact(s) to %s\n", n, path)
			return nil
		},
	}
}
