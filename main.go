package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"teems/apps"
	"teems/config"
	"teems/dispatcher"
	"teems/model"
	"teems/storage"
	"teems/theme"
)

var appVersion = "0.2.0"

type options struct {
	catalog  string
	settings string
	verbose  bool

	plain bool
	names bool

	themeName string
	dryRun    bool
	appNames  []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "teems",
		Short:         "teems – switch colour themes across terminal emulators",
		Long:          "Teems rewrites the colour settings of terminal emulator configuration files from a catalog of named themes.",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&opts.catalog, "config", "c", "", "Theme catalog file (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&opts.settings, "settings", config.DefaultPath(), "Settings file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}
	listCmd.Flags().BoolVar(&opts.plain, "plain", false, "Print without colour swatches")
	listCmd.Flags().BoolVar(&opts.names, "names", false, "Print theme names only")

	activateCmd := &cobra.Command{
		Use:   "activate",
		Short: "Activate a theme",
		Long:  "Rewrite the colours of every installed application's configuration to the given theme.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActivate(cmd, opts)
		},
	}
	activateCmd.Flags().StringVarP(&opts.themeName, "theme", "t", "", "Name of the theme to activate")
	activateCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report what would change without writing files")
	activateCmd.Flags().StringSliceVar(&opts.appNames, "app", nil, "Only theme these applications (repeatable)")
	_ = activateCmd.MarkFlagRequired("theme")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Settings management",
		Long:  "Manage the teems settings file.",
	}
	configGenerateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a default settings file",
		Long:  "Write a default teems.toml at the --settings location.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGenerate(cmd, opts)
		},
	}
	configCmd.AddCommand(configGenerateCmd)

	rootCmd.AddCommand(listCmd, activateCmd, configCmd)
	return rootCmd
}

// loadSettings reads the settings file and applies explicit flag overrides.
func loadSettings(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.settings)
	if err != nil {
		return config.Config{}, fmt.Errorf("load settings: %w", err)
	}
	if cmd.Flags().Changed("config") {
		cfg.Catalog = config.ExpandHome(opts.catalog)
	}
	if cmd.Flags().Changed("app") {
		cfg.Apps = opts.appNames
	}
	if cmd.Flags().Changed("plain") {
		cfg.Swatches = !opts.plain
	}
	return cfg, nil
}

func runList(cmd *cobra.Command, opts *options) error {
	cfg, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	manager, err := theme.LoadManager(cfg.Catalog)
	if err != nil {
		return err
	}

	return theme.RenderList(cmd.OutOrStdout(), manager.Themes(), theme.RenderOptions{
		Swatches:  cfg.Swatches,
		NamesOnly: opts.names,
	})
}

func runActivate(cmd *cobra.Command, opts *options) error {
	cfg, err := loadSettings(cmd, opts)
	if err != nil {
		return err
	}

	// The catalog is validated before any file is touched.
	manager, err := theme.LoadManager(cfg.Catalog)
	if err != nil {
		return err
	}
	t, err := manager.Get(opts.themeName)
	if err != nil {
		return err
	}

	selected, err := apps.Select(apps.Defaults(), cfg.Apps)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	d := dispatcher.New(storage.New(), selected, dispatcher.Options{
		DryRun: opts.dryRun,
		Extra:  cfg.Paths,
	})
	d.SetOnResult(func(res model.FileResult) {
		printResult(out, res, opts.dryRun)
	})

	report := d.Run(t)
	printSummary(out, report, opts.dryRun)

	if failed := report.Failed(); len(failed) > 0 {
		return fmt.Errorf("%d of %d file(s) failed: %w", len(failed), len(report.Results), report.Err())
	}
	return nil
}

func printResult(w io.Writer, res model.FileResult, dryRun bool) {
	switch {
	case res.Err != nil:
		fmt.Fprintf(w, "✗ %-10s %s: %v\n", res.App, res.Path, res.Err)
	case !res.Changed:
		fmt.Fprintf(w, "· %-10s %s (unchanged)\n", res.App, res.Path)
	case dryRun:
		fmt.Fprintf(w, "~ %-10s %s (would rewrite, %s)\n", res.App, res.Path, humanize.Bytes(uint64(res.Bytes)))
	default:
		fmt.Fprintf(w, "✓ %-10s %s (%s)\n", res.App, res.Path, humanize.Bytes(uint64(res.Bytes)))
	}
}

func printSummary(w io.Writer, report model.Report, dryRun bool) {
	if len(report.Results) == 0 {
		fmt.Fprintln(w, "No application configuration files found.")
		return
	}

	var changed, unchanged int
	for _, res := range report.Succeeded() {
		if res.Changed {
			changed++
		} else {
			unchanged++
		}
	}
	verb := "updated"
	if dryRun {
		verb = "would be updated"
	}
	fmt.Fprintf(w, "Theme %q: %d file(s) %s, %d unchanged, %d failed\n",
		report.Theme, changed, verb, unchanged, len(report.Failed()))
}

func runConfigGenerate(cmd *cobra.Command, opts *options) error {
	path := config.ExpandHome(opts.settings)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("settings file already exists: %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := config.Save(config.Default(), path); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated default settings file: %s\n", path)
	return nil
}

func main() {
	log.SetPrefix("teems")
	log.SetReportTimestamp(false)

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
