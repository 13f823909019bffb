package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the available bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSOURCE\tKEYBOARD\tHINTS")
			for _, name := range a.store.Names() {
				b, _ := a.store.Lookup(name)
				source := "preset"
				if _, ok := a.store.Loaded(name); ok {
					source = "file"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, source, orDash(string(b.Keyboard)), hints(b.Prefix, b.Suffix, b.Placeholder, b.Choices, b.ReadOnly))
			}
			return w.Flush()
		},
	}
}

func hints(prefix, suffix, placeholder string, choices []string, readOnly bool) string {
	var parts []string
	if prefix != "" {
		parts = append(parts, "prefix="+prefix)
	}
	if suffix != "" {
		parts = append(parts, "suffix="+suffix)
	}
	if placeholder != "" {
		parts = append(parts, "placeholder="+placeholder)
	}
	if len(choices) > 0 {
		parts = append(parts, "choices="+strings.Join(choices, "|"))
	}
	if readOnly {
		parts = append(parts, "readonly")
	}
	return orDash(strings.Join(parts, " "))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
