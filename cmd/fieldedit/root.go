package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-fieldedit"
	"github.com/goliatone/go-fieldedit/internal/logging"
	"github.com/goliatone/go-fieldedit/pkg/bundle"
	"github.com/goliatone/go-fieldedit/pkg/config"
	"github.com/goliatone/go-fieldedit/pkg/session"
)

// app carries the state shared by every command once the root pre-run has
// loaded configuration.
type app struct {
	stdin  *os.File
	stdout io.Writer
	stderr io.Writer

	cfg      config.Config
	logger   *slog.Logger
	store    *bundle.Store
	registry *session.Registry

	// flag overrides
	bundlesDir string
	strict     bool
	logLevel   string
	logFormat  string
}

func newApp(stdin *os.File, stdout, stderr io.Writer) *app {
	return &app{stdin: stdin, stdout: stdout, stderr: stderr, registry: session.NewRegistry()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "fieldedit",
		Short:         "Edit and check validated text fields",
		Long:          "fieldedit edits text fields through validator bundles on the terminal, checks and formats values, and derives bundles from OpenAPI request bodies.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.bundlesDir, "bundles", "", "directory of bundle YAML/JSON files (overrides FIELDEDIT_BUNDLES_DIR)")
	flags.BoolVar(&a.strict, "strict", false, "panic on contract violations (overrides FIELDEDIT_STRICT)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(
		newEditCmd(a),
		newCheckCmd(a),
		newFormatCmd(a),
		newPresetsCmd(a),
		newOpenAPICmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(&a.cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("bundles") {
		a.cfg.BundlesDir = a.bundlesDir
	}
	if cmd.Flags().Changed("strict") {
		a.cfg.Strict = a.strict
	}
	if a.logLevel != "" {
		a.cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.LogFormat = a.logFormat
	}

	logger, err := logging.New(a.cfg, logging.WithOutput(a.stderr))
	if err != nil {
		return err
	}
	a.logger = logger

	catalog := bundle.NewCatalog()
	tag := a.cfg.Language()
	catalog.Register(bundle.PresetAmount, func() bundle.Bundle { return bundle.Amount(tag) })

	fsys := fieldedit.DefaultBundlesFS()
	if a.cfg.BundlesDir != "" {
		fsys = os.DirFS(a.cfg.BundlesDir)
	}
	store, err := bundle.LoadFS(fsys, catalog)
	if err != nil {
		return err
	}
	a.store = store
	a.logger.Debug("configuration loaded", "bundles", len(store.Names()), "strict", a.cfg.Strict)
	return nil
}

func (a *app) lookup(name string) (bundle.Bundle, error) {
	b, ok := a.store.Lookup(name)
	if !ok {
		return bundle.Bundle{}, fmt.Errorf("fieldedit: unknown bundle %q (see `fieldedit presets`)", name)
	}
	return b, nil
}

func (a *app) editor(name string, b bundle.Bundle, opts ...session.Option) *session.Editor {
	base := []session.Option{
		session.WithName(name),
		session.WithLogger(a.logger),
		session.WithStrict(a.cfg.Strict),
		session.WithRegistry(a.registry),
	}
	return fieldedit.NewEditor(b, append(base, opts...)...)
}
