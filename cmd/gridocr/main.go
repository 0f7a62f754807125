// gridocr - builds a fixed-grid captcha recognizer from a labeled dataset and
// infers the given image/output pairs.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	ocr "github.com/getcharzp/go-gridocr"
	"github.com/getcharzp/go-gridocr/gridocr"
	"github.com/getcharzp/go-gridocr/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := pflag.NewFlagSet("gridocr", pflag.ContinueOnError)
	configPath := fs.StringP("config", "c", ocr.DefaultConfigFile(), "config file (yaml)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: gridocr [--config file] <image> <output> [<image> <output> ...]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	rest := fs.Args()
	if len(rest)%2 != 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	engine, err := gridocr.NewEngine(cfg.Engine(logger))
	if err != nil {
		slog.Error("failed to build recognizer", "input_dir", cfg.InputDir, "output_dir", cfg.OutputDir, "error", err)
		return 1
	}

	if cfg.PrototypeDir != "" {
		if err := engine.SavePrototypes(cfg.PrototypeDir); err != nil {
			slog.Error("failed to save prototypes", "dir", cfg.PrototypeDir, "error", err)
		}
	}

	failed := 0
	for i := 0; i < len(rest); i += 2 {
		// Infer already logs the diagnostic
		if err := engine.Infer(rest[i], rest[i+1]); err != nil {
			failed++
			continue
		}
		slog.Debug("inferred", "image", rest[i], "output", rest[i+1])
	}
	slog.Info("done", "pairs", len(rest)/2, "failed", failed)

	if failed > 0 {
		return 2
	}
	return 0
}
