package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldedit"
	pkgopenapi "github.com/goliatone/go-fieldedit/pkg/openapi"
	"github.com/goliatone/go-fieldedit/pkg/orchestrator"
	"github.com/goliatone/go-fieldedit/pkg/terminal"
)

func newOpenAPICmd(a *app) *cobra.Command {
	var (
		edit       bool
		allowHTTP  bool
		operations bool
	)
	cmd := &cobra.Command{
		Use:   "openapi <source> [operationId]",
		Short: "Derive field bundles from an OpenAPI request body",
		Long: `Load an OpenAPI document from a file or URL and list the request body
fields of an operation with the bundle each one resolves to. Bundle files
named "<operationId>.<field>" or "<field>" override the derived bundle.

With --edit every field is edited in turn and the values are printed as JSON.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseSource(args[0])
			if err != nil {
				return err
			}
			var loaderOpts []pkgopenapi.LoaderOption
			if allowHTTP {
				loaderOpts = append(loaderOpts, pkgopenapi.WithDefaultSources())
			}
			orch := fieldedit.NewOrchestrator(
				orchestrator.WithLoader(fieldedit.NewLoader(loaderOpts...)),
				orchestrator.WithStore(a.store),
				orchestrator.WithResolver(pkgopenapi.NewResolver(a.store.Catalog())),
				orchestrator.WithLogger(a.logger),
			)

			if operations || len(args) == 1 {
				ops, err := orch.Operations(cmd.Context(), orchestrator.Request{Source: src})
				if err != nil {
					return err
				}
				return printOperations(cmd, ops)
			}

			result, err := orch.Fields(cmd.Context(), orchestrator.Request{Source: src, OperationID: args[1]})
			if err != nil {
				return err
			}
			if !edit {
				return printFields(cmd, result.Fields)
			}
			return a.editFields(cmd, result.Fields)
		},
	}
	cmd.Flags().BoolVar(&edit, "edit", false, "edit every field interactively and print the values as JSON")
	cmd.Flags().BoolVar(&allowHTTP, "http", false, "allow loading documents over HTTP")
	cmd.Flags().BoolVar(&operations, "operations", false, "list operations instead of fields")
	return cmd
}

func printOperations(cmd *cobra.Command, ops map[string]pkgopenapi.Operation) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OPERATION\tMETHOD\tPATH\tFIELDS")
	ids := make([]string, 0, len(ops))
	for id := range ops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		op := ops[id]
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", id, op.Method, op.Path, len(op.RequestBody.Properties))
	}
	return w.Flush()
}

func printFields(cmd *cobra.Command, fields []pkgopenapi.Field) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tBUNDLE\tRULE\tREQUIRED")
	for _, field := range fields {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", field.Name, field.Bundle.Name, orDash(field.Rule), field.Required)
	}
	return w.Flush()
}

func (a *app) editFields(cmd *cobra.Command, fields []pkgopenapi.Field) error {
	values := make(map[string]string, len(fields))
	prompt := a.prompt()
	for _, field := range fields {
		if field.Bundle.ReadOnly {
			continue
		}
		host := terminal.NewField(field.Name, a.stderr, terminal.WithInitialText(field.Default))
		res, err := prompt.Run(cmd.Context(), a.editor(field.Name, field.Bundle), host)
		if err != nil {
			return err
		}
		if res.Committed {
			values[field.Name] = res.Text
			continue
		}
		if field.Required {
			return fmt.Errorf("fieldedit: %s is required", field.Name)
		}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(values)
}

func parseSource(raw string) (pkgopenapi.Source, error) {
	path := strings.TrimSpace(raw)
	if path == "" {
		return nil, fmt.Errorf("fieldedit: source is required")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return pkgopenapi.SourceFromURL(path), nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("fieldedit: source %s: %w", path, err)
	}
	return pkgopenapi.SourceFromFile(path), nil
}
