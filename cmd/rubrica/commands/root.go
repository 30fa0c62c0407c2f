package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/rubrica/internal/app"
	"github.com/jask/rubrica/internal/config"
	"github.com/jask/rubrica/internal/logging"
)

// env is what the root command prepares for its subcommands.
type env struct {
	wire      *app.Wire
	logCloser io.Closer
	inMemory  bool
	// reported is set once a Presenter has shown the failure to the user.
	reported bool
}

// reportedError marks an error the user has already seen.
type reportedError struct{ error }

func (r reportedError) Unwrap() error { return r.error }

func Execute() error {
	return execute(NewRootCmd())
}

// execute runs root and prints its error unless a Presenter already did.
func execute(root *cobra.Command) error {
	err := root.Execute()
	var seen reportedError
	if err != nil && !errors.As(err, &seen) {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
	}
	return err
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "rubrica",
		Short:         "Terminal address book",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if e.inMemory {
				cfg.Storage.Enabled = false
			}
			log, err := e.logger(cmd, cfg)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cmd.Context(), cfg, log)
			if err != nil {
				_ = e.close()
				return err
			}
			e.wire = w
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), e.wire)
		},
	}
	root.PersistentFlags().BoolVar(&e.inMemory, "memory", false, "do not read or write the sqlite archive")

	root.AddCommand(
		listCmd(e),
		addCmd(e),
		deleteCmd(e),
		importCmd(e),
		exportCmd(e),
		seedCmd(e),
		resetCmd(e),
	)
	for _, c := range append(root.Commands(), root) {
		e.closeAfter(c)
	}
	root.SetContext(context.Background())
	return root
}

// closeAfter makes c release the wire even when its RunE fails; cobra skips
// post-run hooks on error.
func (e *env) closeAfter(c *cobra.Command) {
	run := c.RunE
	if run == nil {
		return
	}
	c.RunE = func(cmd *cobra.Command, args []string) (err error) {
		e.reported = false
		defer func() {
			if cerr := e.close(); err == nil {
				err = cerr
			}
		}()
		if err := run(cmd, args); err != nil {
			if e.reported {
				return reportedError{err}
			}
			return err
		}
		return nil
	}
}

// logger picks the sink: the TUI owns the terminal so the root command logs
// to a file, subcommands log to stderr.
func (e *env) logger(cmd *cobra.Command, cfg config.Config) (zerolog.Logger, error) {
	if cmd.HasParent() {
		return logging.NewConsole(cmd.ErrOrStderr(), cfg.Log.Level), nil
	}
	log, closer, err := logging.OpenFile(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	e.logCloser = closer
	return log, nil
}

func (e *env) close() error {
	var err error
	if e.wire != nil {
		err = e.wire.Close()
		e.wire = nil
	}
	if e.logCloser != nil {
		_ = e.logCloser.Close()
		e.logCloser = nil
	}
	return err
}
