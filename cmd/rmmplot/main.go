// SPDX-License-Identifier: MIT
// Command rmmplot renders the figure catalog to image files.
//
// Usage:
//
//	rmmplot [-config run.yaml] [-figure a,b] [-out dir] [-format svg] [-list] [-print-config]
//
// Flags override the matching configuration keys. Without -figure the
// configured selection is rendered, or every figure when none is configured.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/rmmcurve/config"
	"github.com/katalvlaran/rmmcurve/figures"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, l.NewConsoleLoggerWrapper())
	stop()
	os.Exit(code)
}

// run is main without the process plumbing. It returns the exit code.
func run(ctx context.Context, args []string, stdout io.Writer, logger l.Wrapper) int {
	fs := flag.NewFlagSet("rmmplot", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "YAML run configuration (defaults when empty)")
	figureList := fs.String("figure", "", "comma-separated figure names (default: configured or all)")
	outDir := fs.String("out", "", "output directory (overrides output_dir)")
	format := fs.String("format", "", "png, svg or pdf (overrides format)")
	list := fs.Bool("list", false, "list figure names and exit")
	printConfig := fs.Bool("print-config", false, "print the effective configuration and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, fig := range figures.Registry() {
			fmt.Fprintf(stdout, "%-26s %s\n", fig.Name, fig.Description)
		}

		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("path", *configPath)).Error("load config failed")

		return 1
	}
	if *outDir != "" {
		cfg.OutputDir = *outDir
	}
	if *format != "" {
		cfg.Format = *format
	}
	if err = cfg.Validate(); err != nil {
		logger.WithFields(l.ErrorField(err)).Error("invalid flags")

		return 1
	}

	if *printConfig {
		d, err := cfg.Marshal()
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("marshal config failed")

			return 1
		}
		_, _ = stdout.Write(d)

		return 0
	}

	res, err := figures.NewRunner(figures.NewEnv(cfg, logger)).Run(ctx, splitNames(*figureList))
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("run failed")

		return 1
	}
	if len(res.Failed) > 0 {
		logger.WithFields(l.StringField("failed", strings.Join(res.Failed, ","))).Info("some figures were skipped")
	}

	return 0
}

func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}

	return names
}
