package main

import (
	"fmt"
	"os"

	sterm "github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldedit/pkg/terminal"
)

func newEditCmd(a *app) *cobra.Command {
	var (
		label   string
		initial string
	)
	cmd := &cobra.Command{
		Use:   "edit <bundle>",
		Short: "Edit a field interactively",
		Long:  "Edit a single field on the terminal. Enter ends the edit when the text is valid, Backspace deletes and Ctrl-C aborts. The final value is printed on stdout.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			if label == "" {
				label = args[0]
			}

			prompt := a.prompt()
			field := terminal.NewField(label, a.stderr, terminal.WithInitialText(initial))
			res, err := prompt.Run(cmd.Context(), a.editor(args[0], b), field)
			if err != nil {
				return err
			}
			if b.ReadOnly {
				return nil
			}
			if !res.Committed {
				return errInvalid
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Text)
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "label shown before the field (defaults to the bundle name)")
	cmd.Flags().StringVar(&initial, "initial", "", "initial text")
	return cmd
}

func (a *app) prompt() *terminal.Prompt {
	reader := terminal.NewRuneReader(sterm.Stdio{In: a.stdin, Out: os.Stdout, Err: a.stderr})
	return terminal.NewPrompt(reader, a.stderr,
		terminal.WithLogger(a.logger),
		terminal.WithPromptDriver(terminal.NewSurveyDriver(a.stderr)),
	)
}
