package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/andareed/siftly-table/config"
	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/logging"
	"github.com/andareed/siftly-table/source"
)

var (
	configPath string
	debugLog   string

	// table shaping, shared by view, render and export
	sortKey    string
	sortDesc   bool
	filterArgs []string
	statePath  string

	// generated data
	genCount int
	genSeed  uint64

	cfg            *config.Config
	loggingCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "sftable [file.csv|file.xlsx|file.json]",
	Short: "Sort and filter a table of users in the terminal or the browser",
	Long: `sftable shows rows from a CSV, XLSX or JSON file (or generated dummy
users when no file is given) as a sortable, filterable table.

Run without a subcommand to open the terminal viewer.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		opts := cfg.LogOptions()
		if debugLog != "" {
			opts.File = debugLog
			opts.Debug = true
			opts.Level = "debug"
		}
		// the terminal viewer owns stderr; everything else may log there
		if cmd.Name() == "serve" && opts.File == "" {
			opts.Stderr = true
		}
		loggingCleanup, err = logging.SetupLogging(opts)
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
		return nil
	},
	RunE: runView,
}

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Open the terminal viewer",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&debugLog, "debug", "", "write debug logs to file")

	for _, c := range []*cobra.Command{rootCmd, viewCmd, renderCmd, exportCmd} {
		addTableFlags(c)
	}
	for _, c := range []*cobra.Command{rootCmd, viewCmd, renderCmd, exportCmd, serveCmd, generateCmd} {
		c.Flags().IntVar(&genCount, "count", 0, "number of generated users when no file is given (default from config)")
		c.Flags().Uint64Var(&genSeed, "seed", 0, "generator seed; 0 picks one at random")
	}

	rootCmd.AddCommand(viewCmd, serveCmd, renderCmd, exportCmd, generateCmd, versionCmd)
}

func addTableFlags(c *cobra.Command) {
	c.Flags().StringVar(&sortKey, "sort", "", "column key to sort by")
	c.Flags().BoolVar(&sortDesc, "desc", false, "sort descending")
	c.Flags().StringArrayVar(&filterArgs, "filter", nil, "filter as key=value (repeatable)")
	c.Flags().StringVar(&statePath, "state", "", "view state file saved from the viewer")
}

func main() {
	if err := execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// execute runs the command line. The log sink is closed on every path;
// cobra skips post-run hooks when a command fails.
func execute(args []string) error {
	defer closeLogging()
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		logging.Errorf("sftable: %v", err)
	}
	return err
}

func closeLogging() {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
}

func runView(cmd *cobra.Command, args []string) error {
	ds, name, err := loadDataset(args)
	if err != nil {
		return err
	}
	opts, err := tableOptions()
	if err != nil {
		return err
	}
	m := newModel(grid.New(ds, opts...), name)

	logging.Infof("siftly-table: started on %s", displayName(name))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("tea program: %v", err)
		return err
	}
	return nil
}

// loadDataset reads the file named on the command line, then the configured
// source path, and otherwise generates users. The name is "" for generated
// data.
func loadDataset(args []string) (grid.Dataset, string, error) {
	path := cfg.Source.Path
	if len(args) > 0 {
		path = args[0]
	}
	opts := source.Options{TextColumns: cfg.Source.TextColumns}
	if path != "" {
		ds, err := source.LoadAuto(path, opts)
		if err != nil {
			return grid.Dataset{}, "", fmt.Errorf("failed to load %q: %w", path, err)
		}
		return ds, path, nil
	}

	count := cfg.Source.Generate
	if genCount > 0 {
		count = genCount
	}
	seed := cfg.Source.Seed
	if genSeed != 0 {
		seed = genSeed
	}
	ds := source.Generate(source.GenerateOptions{Count: count, Seed: seed, Now: time.Now()})
	logging.Infof("generated %d users", ds.Len())
	return ds, "", nil
}

// tableOptions merges config, a saved view state and the sort/filter flags,
// in that order of precedence from lowest to highest.
func tableOptions() ([]grid.Option, error) {
	opts := cfg.TableOptions()

	state := ViewState{Criteria: grid.Criteria{}}
	if statePath != "" {
		var err error
		state, err = LoadViewState(statePath)
		if err != nil {
			return nil, fmt.Errorf("load view state: %w", err)
		}
	}
	if sortKey != "" {
		state.Sort = grid.SortState{Key: sortKey, Ascending: !sortDesc}
	}
	for _, arg := range filterArgs {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("--filter %q: want key=value", arg)
		}
		state.Criteria[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := checkFilterKeys(cfg.FilterFields(), state.Criteria); err != nil {
		return nil, err
	}
	return append(opts, state.Options()...), nil
}

func checkFilterKeys(fields []grid.FilterField, c grid.Criteria) error {
	known := make(map[string]bool, len(fields))
	for _, f := range fields {
		known[f.Key] = true
	}
	for k := range c {
		if !known[k] {
			return fmt.Errorf("filter %q: %w", k, grid.ErrUnknownFilter)
		}
	}
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "generated users"
	}
	return filepath.Base(name)
}
