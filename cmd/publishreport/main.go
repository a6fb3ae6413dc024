/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package main publishes a data report from JSON and renders it, or serves
// it for drill-down over HTTP.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"chainguard.dev/datareport/reports/ingest"
	"chainguard.dev/datareport/reports/model"
	"chainguard.dev/datareport/reports/publish"
	"chainguard.dev/datareport/reports/render"
	"chainguard.dev/datareport/reports/table"
	"chainguard.dev/datareport/reports/view"
	"github.com/chainguard-dev/clog"
	_ "github.com/chainguard-dev/clog/gcp/init"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

type config struct {
	JSON     string `env:"REPORT_JSON"`
	JSONFile string `env:"REPORT_JSON_FILE"`
	Label    string `env:"REPORT_LABEL"`
	RunID    string `env:"RUN_ID,default=local"`

	Workspace      string `env:"WORKSPACE,default=."`
	Locale         string `env:"REPORT_LOCALE,default=en"`
	FractionDigits int    `env:"REPORT_FRACTION_DIGITS,default=2"`

	// Format is one of table, tree, json, yaml, or schema.
	Format string `env:"REPORT_FORMAT,default=table"`
	Item   string `env:"REPORT_ITEM"`

	Serve       bool `env:"SERVE,default=false"`
	Port        int  `env:"PORT,default=8080"`
	MetricsPort int  `env:"METRICS_PORT,default=2112"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	if cfg.Format == "schema" {
		b, err := ingest.Schema()
		if err != nil {
			clog.FatalContextf(ctx, "generating schema: %v", err)
		}
		fmt.Println(string(b))
		return
	}

	locale, err := language.Parse(cfg.Locale)
	if err != nil {
		clog.FatalContextf(ctx, "parsing locale %q: %v", cfg.Locale, err)
	}

	step := publish.NewStep(ingest.WithFormat(model.Format{
		Locale:         locale,
		FractionDigits: cfg.FractionDigits,
	}))
	step.JSONString = cfg.JSON
	step.JSONFile = cfg.JSONFile
	step.Label = cfg.Label

	run := publish.NewRun(cfg.RunID)
	report, err := step.Perform(ctx, run, cfg.Workspace)
	if err != nil {
		clog.FatalContextf(ctx, "publishing report: %v", err)
	}
	if report == nil {
		clog.FatalContextf(ctx, "report failed validation, nothing was attached to run %s", run.ID())
	}

	if !cfg.Serve {
		if err := write(os.Stdout, report, cfg.Item, cfg.Format); err != nil {
			clog.FatalContextf(ctx, "rendering report: %v", err)
		}
		return
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return view.NewServer(fmt.Sprintf(":%d", cfg.MetricsPort), promhttp.Handler()).Serve(ctx)
	})
	eg.Go(func() error {
		clog.InfoContextf(ctx, "Serving run %s on port %d", run.ID(), cfg.Port)
		return view.NewServer(fmt.Sprintf(":%d", cfg.Port), view.NewRouter(run)).Serve(ctx)
	})
	if err := eg.Wait(); err != nil {
		clog.FatalContextf(ctx, "server failed: %v", err)
	}
}

// write renders the table of item id in format.
func write(w io.Writer, report *model.Report, id, format string) error {
	m, err := table.ForID(report, id)
	if err != nil {
		return err
	}

	switch format {
	case "table":
		if _, err := fmt.Fprintf(w, "## %s\n\n", report.Label()); err != nil {
			return err
		}
		return render.Table(w, m)
	case "tree":
		out, err := render.Tree(report, m.Item())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	case "json":
		return render.JSON(w, m)
	case "yaml":
		return render.YAML(w, m)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
