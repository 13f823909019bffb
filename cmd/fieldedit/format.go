package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldedit/pkg/session"
	"github.com/goliatone/go-fieldedit/pkg/terminal"
	"github.com/goliatone/go-fieldedit/pkg/validator"
)

func newFormatCmd(a *app) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "format <bundle> <text>",
		Short: "Type text into a bundle and print the result",
		Long:  "Replay text one keystroke at a time through the bundle, as if typed, then end the edit and print the displayed value. Vetoed keystrokes are dropped.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			if b.FixedChoice() {
				return fmt.Errorf("fieldedit: bundle %q is not free text", args[0])
			}

			field := terminal.NewField("", io.Discard, terminal.WithPlain(true))
			editor := a.editor(args[0], b)
			if !editor.Begin(field) {
				return fmt.Errorf("fieldedit: bundle %q refused to begin", args[0])
			}
			vetoed := 0
			for _, r := range args[1] {
				if field.Resigned() {
					break
				}
				typed := terminal.Capitalize(field.Text(), string(r), field.Presentation().Capitalization)
				if editor.Change(field, session.Append(field.Text(), typed)) == session.OutcomeVetoed {
					vetoed++
				}
			}
			a.logger.Debug("formatted", "bundle", args[0], "vetoed", vetoed)

			if !field.Resigned() && !editor.Resign(field) {
				editor.Close()
				fmt.Fprintln(cmd.OutOrStdout(), field.Problem())
				return errInvalid
			}
			out := field.Text()
			if raw {
				out = validator.ProcessAll(editor.Validators(), out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the raw (unformatted) value instead of the display form")
	return cmd
}
