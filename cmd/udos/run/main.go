package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	udos "github.com/goliatone/go-udos"
)

func main() {
	var (
		filePath      = flag.String("file", "", "Markdown script to execute")
		sectionID     = flag.String("section", "", "Section to start from (defaults to the first section)")
		maxSections   = flag.Int("max-sections", udos.DefaultMaxSections, "Maximum number of sections executed in a single run")
		scriptTimeout = flag.Duration("script-timeout", 5*time.Second, "Wall clock budget for script blocks")
		dbDSN         = flag.String("db", "", "SQLite DSN used by sql blocks (omit to disable sql execution)")
		pretty        = flag.Bool("pretty", false, "Indent the JSON result")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	source, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read script: %v", err)
	}

	cfg := udos.DefaultConfig()
	cfg.Runner.MaxSections = *maxSections
	cfg.Script.Timeout = *scriptTimeout
	cfg.Storage.DSN = *dbDSN

	module, err := udos.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	result := module.Runner().Run(context.Background(), string(source), *sectionID)

	encoder := json.NewEncoder(os.Stdout)
	if *pretty {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(result); err != nil {
		log.Fatalf("encode result: %v", err)
	}

	if !result.Success {
		fmt.Fprintf(os.Stderr, "run failed: %s\n", result.Error)
		os.Exit(1)
	}
}
