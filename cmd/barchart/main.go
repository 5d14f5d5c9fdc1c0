package main

import (
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"

	barchart "github.com/mskpairprogrammer/barchart"
	"github.com/mskpairprogrammer/barchart/internal/config"
)

func main() {
	cli := &CLI{}
	cli.parseFlags()
	cli.checkForExits()
	cli.setLogLevel()

	cfg, err := config.Load(cli.ConfigPath)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if err := cli.applyOverrides(cfg); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	runner := barchart.NewRunner(cfg)

	switch {
	case cli.hasStdin():
		symbols := readStdinSymbols()
		if len(symbols) == 0 {
			log.Fatal("No symbols read from stdin")
		}
		runBatch(runner, symbols)

	case cfg.SymbolsFile != "" && fileExists(cfg.SymbolsFile):
		log.Infof("Batch mode, loading symbols from %s", cfg.SymbolsFile)
		symbols := barchart.LoadSymbols(cfg.SymbolsFile)
		if len(symbols) == 0 {
			log.Fatal("No symbols found in file")
		}
		log.Infof("Found %d symbols: %s", len(symbols), strings.Join(symbols, ", "))
		runBatch(runner, symbols)

	case cfg.Symbol != "":
		path, err := runner.TakeScreenshot(cfg.Symbol)
		if err != nil {
			log.Errorf("Capture failed: %v. Ensure Barchart is open in a browser.", err)
			os.Exit(1)
		}
		log.Infof("Done. Screenshot: %s", path)

	default:
		log.Fatal("No symbol configured: set STOCK_SYMBOL or STOCK_SYMBOLS_FILE, or pass -t / -l")
	}
}

func runBatch(runner *barchart.Runner, symbols []string) {
	summary := runner.ProcessBatch(symbols)
	printSummary(summary)

	if len(summary.Failed) > 0 {
		os.Exit(1)
	}
}

func printSummary(s barchart.Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Batch complete (%d symbols)", s.Total())
	t.AppendHeader(table.Row{"Outcome", "Count", "Symbols"})
	t.AppendRow(table.Row{"Succeeded", len(s.Succeeded), strings.Join(s.Succeeded, ", ")})
	t.AppendRow(table.Row{"Skipped", len(s.Skipped), strings.Join(s.Skipped, ", ")})
	t.AppendRow(table.Row{"Failed", len(s.Failed), strings.Join(s.Failed, ", ")})
	t.Render()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
