package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	barchart "github.com/mskpairprogrammer/barchart"
	"github.com/mskpairprogrammer/barchart/internal/config"
)

type CLI struct {
	Symbol             string
	Infile             string
	ConfigPath         string
	Outfolder          string
	Keyword            string
	AvoidDuplicates    bool
	DuplicateThreshold int
	NoCaption          bool
	Silence            bool
	Verbose            bool
	Version            bool
	Help               bool
}

// checkForExits handles -h|--help and --version.
func (c *CLI) checkForExits() {
	if c.Help {
		c.banner()
		c.usage()
		os.Exit(0)
	}
	if c.Version {
		fmt.Println("barchart", barchart.Version)
		os.Exit(0)
	}
}

// applyOverrides copies explicitly set CLI flags over the loaded config.
func (c *CLI) applyOverrides(cfg *config.Config) error {
	if c.Symbol != "" {
		cfg.Symbol = strings.ToUpper(strings.TrimSpace(c.Symbol))
	}
	if c.Infile != "" {
		cfg.SymbolsFile = c.Infile
	}
	if c.Outfolder != "" {
		cfg.OutputDir = c.Outfolder
	}
	if c.Keyword != "" {
		cfg.WindowKeyword = c.Keyword
	}
	if c.AvoidDuplicates {
		cfg.AvoidDuplicates = true
	}
	if c.DuplicateThreshold != 0 {
		cfg.DuplicateThreshold = c.DuplicateThreshold
	}
	if c.NoCaption {
		cfg.NoCaption = true
	}
	return cfg.Validate()
}

func (c *CLI) setLogLevel() {
	switch {
	case c.Silence:
		log.SetLevel(log.FatalLevel)
	case c.Verbose:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// hasStdin determines if the user has piped input.
func (c *CLI) hasStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}

	mode := stat.Mode()

	isPipedFromChrDev := (mode & os.ModeCharDevice) == 0
	isPipedFromFIFO := (mode & os.ModeNamedPipe) != 0

	return isPipedFromChrDev || isPipedFromFIFO
}

// readStdinSymbols reads whitespace-separated symbols from stdin.
func readStdinSymbols() []string {
	var symbols []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		for _, field := range strings.Fields(scanner.Text()) {
			symbols = append(symbols, strings.ToUpper(field))
		}
	}
	return symbols
}
