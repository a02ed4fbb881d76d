package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prateek/lifelens"
	"github.com/prateek/lifelens/config"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "path to YAML config")
		input   = flag.String("input", "", "log URL or path, overrides config")
		format  = flag.String("format", "", "input format: auto, json or yaml")
		object  = flag.Int("object", 0, "print only records for this object id")
		verbose = flag.Bool("verbose", false, "enable verbose logging")
	)
	flag.Parse()

	var (
		cfg config.Config
		err error
	)
	if *cfgPath != "" {
		if cfg, err = config.Read(*cfgPath); err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *object != 0 {
		cfg.Object = *object
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	if *verbose {
		log.Printf("lifelens %s reading %s (format=%s sort=%s)", lifelens.Version, cfg.Input, cfg.Format, cfg.Sort)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := newRunner(cfg, os.Stdout).run(ctx)
	if err != nil {
		log.Fatalf("lifelens: %v", err)
	}
	if *verbose {
		log.Printf("wrote %d records", n)
	}
}
