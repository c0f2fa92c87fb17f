package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andareed/siftly-table/export"
	"github.com/andareed/siftly-table/grid"
	"github.com/andareed/siftly-table/htmlview"
	"github.com/andareed/siftly-table/logging"
	"github.com/andareed/siftly-table/server"
	"github.com/andareed/siftly-table/source"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var (
	serveAddr string
	outPath   string
	genOut    string
	pageTitle string
)

var serveCmd = &cobra.Command{
	Use:   "serve [file]",
	Short: "Serve the table as an HTML page",
	Long: `serve renders the table as a page with clickable headers and a filter
form. Sort and filter state lives in the query string, so every view can be
bookmarked. /export.csv and /export.xlsx download the current view.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Write a static HTML page of the sorted and filtered table",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

var exportCmd = &cobra.Command{
	Use:   "export [file] --out path.{csv,xlsx,html}",
	Short: "Write the sorted and filtered rows to a file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var generateCmd = &cobra.Command{
	Use:   "generate --out users.{csv,xlsx,html}",
	Short: "Write generated dummy users to a file",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "Version:", Version)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().StringVar(&pageTitle, "title", "", "page title")
	renderCmd.Flags().StringVar(&pageTitle, "title", "", "page title")
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file; the extension picks the format")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "users.csv", "output file; the extension picks the format")
	_ = exportCmd.MarkFlagRequired("out")
}

func runServe(cmd *cobra.Command, args []string) error {
	ds, name, err := loadDataset(args)
	if err != nil {
		return err
	}
	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	ws := server.New(ds, server.Options{
		Title:  pageTitle,
		Fields: cfg.FilterFields(),
		Locale: grid.ParseLocale(cfg.Locale),
	})
	srv := server.NewHTTPServer(addr, ws.Handler(), cfg.Server.ReadHeaderTimeoutDuration())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Infof("serving %d rows from %s on %s", ds.Len(), displayName(name), addr)
	if err := server.RunServerWithShutdown(ctx, srv, cfg.Server.ShutdownTimeoutDuration()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logging.Infof("server stopped")
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	tbl, err := buildTable(args)
	if err != nil {
		return err
	}
	opts := htmlview.Options{Title: pageTitle}

	if outPath == "" {
		w := bufio.NewWriter(cmd.OutOrStdout())
		if err := tbl.Render(htmlview.Surface(w, opts)); err != nil {
			return err
		}
		return w.Flush()
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if err := tbl.Render(htmlview.Surface(f, opts)); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d of %d rows to %s\n", len(tbl.Rows()), tbl.Dataset().Len(), outPath)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	tbl, err := buildTable(args)
	if err != nil {
		return err
	}
	if err := export.ToFile(outPath, tbl.View()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "exported %d of %d rows to %s\n", len(tbl.Rows()), tbl.Dataset().Len(), outPath)
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	count := cfg.Source.Generate
	if genCount > 0 {
		count = genCount
	}
	ds := source.Generate(source.GenerateOptions{Count: count, Seed: genSeed, Now: time.Now()})
	if err := export.ToFile(genOut, grid.New(ds).View()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "generated %d users into %s\n", ds.Len(), genOut)
	return nil
}

func buildTable(args []string) (*grid.Table, error) {
	ds, _, err := loadDataset(args)
	if err != nil {
		return nil, err
	}
	opts, err := tableOptions()
	if err != nil {
		return nil, err
	}
	return grid.New(ds, opts...), nil
}
