package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldedit/pkg/validator"
)

// errInvalid marks a value that failed validation.
var errInvalid = errors.New("fieldedit: value is invalid")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <bundle> <text>",
		Short: "Validate text against a bundle",
		Long:  "Validate text against every validator in the bundle and print each problem. Exits non-zero when the text is invalid.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			text := validator.ProcessAll(b.Validators, args[1])
			if err := validator.ValidateAll(b.Validators, text); err != nil {
				for _, kind := range validator.Kinds(err) {
					a.logger.Debug("problem", "bundle", args[0], "kind", string(kind))
				}
				fmt.Fprintln(cmd.OutOrStdout(), validator.Reason(err))
				return errInvalid
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
